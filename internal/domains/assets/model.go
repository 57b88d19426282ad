package assets

import "errors"

var ErrInvalidAsset = errors.New("invalid asset upload")

// UploadImageResponse - Stored image key plus resolved variant URLs
type UploadImageResponse struct {
	Key  string            `json:"key"`
	URLs map[string]string `json:"urls"`
}

// UploadFileResponse - Stored file key plus its public URL
type UploadFileResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
