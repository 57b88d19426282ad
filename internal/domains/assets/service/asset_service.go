package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"portfolio-backend/internal/domains/assets"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

// assetService uploads studio assets into object storage. Images are
// stored with their derived variants under one prefix so deleting the key
// removes everything at once.
type assetService struct {
	store     *storage.MinIOStorage
	processor *storage.ImageProcessor
	urls      *storage.URLBuilder
}

// NewAssetService - Constructor
func NewAssetService(store *storage.MinIOStorage, processor *storage.ImageProcessor, urls *storage.URLBuilder) assets.ServiceInterface {
	return &assetService{
		store:     store,
		processor: processor,
		urls:      urls,
	}
}

func (s *assetService) UploadImage(ctx context.Context, data []byte) (*assets.UploadImageResponse, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrInvalidAsset, err)
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrInvalidAsset, err)
	}

	key := "images/" + uuid.New().String()

	if err := s.store.Upload(ctx, key+"/original.jpg", data, "image/jpeg"); err != nil {
		return nil, err
	}
	for name, body := range variants {
		if err := s.store.Upload(ctx, fmt.Sprintf("%s/%s.jpg", key, name), body, "image/jpeg"); err != nil {
			return nil, err
		}
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"key":      key,
		"variants": len(variants),
	})

	return &assets.UploadImageResponse{
		Key: key,
		URLs: map[string]string{
			"original":  s.urls.ImageURL(key, nil),
			"thumbnail": s.urls.ImageURL(key, &storage.Transform{Width: 300}),
			"medium":    s.urls.ImageURL(key, &storage.Transform{Width: 600}),
			"large":     s.urls.ImageURL(key, &storage.Transform{Width: 1200}),
		},
	}, nil
}

func (s *assetService) UploadFile(ctx context.Context, filename string, data []byte, contentType string) (*assets.UploadFileResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", assets.ErrInvalidAsset)
	}

	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return nil, fmt.Errorf("%w: bad filename", assets.ErrInvalidAsset)
	}

	key := fmt.Sprintf("files/%s/%s", uuid.New().String(), name)
	if err := s.store.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	return &assets.UploadFileResponse{
		Key: key,
		URL: s.urls.FileURL(key),
	}, nil
}

// Delete removes an asset and every derived variant below its prefix.
func (s *assetService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", assets.ErrInvalidAsset)
	}
	return s.store.DeleteByPrefix(ctx, key)
}
