package assets

import "context"

// ServiceInterface - Asset upload, variant derivation, and deletion
type ServiceInterface interface {
	UploadImage(ctx context.Context, data []byte) (*UploadImageResponse, error)
	UploadFile(ctx context.Context, filename string, data []byte, contentType string) (*UploadFileResponse, error)
	Delete(ctx context.Context, key string) error
}
