package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Variant sizes derived on upload. URL resolution picks the smallest variant
// that covers the requested transform width.
var variantSizes = map[string]int{
	"thumbnail": 300,
	"medium":    600,
	"large":     1200,
}

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024}
}

// ValidateImage accepts JPEG/PNG up to MaxSize.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessImage returns map[variant][]byte: each size resized to fit, plus a
// center-cropped square "<name>_sq" for crop transforms, re-encoded as
// JPEG q90.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	variants := map[string][]byte{}
	for name, size := range variantSizes {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		body, err := encodeJPEG(resized)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s variant: %w", name, err)
		}
		variants[name] = body

		cropped := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
		body, err = encodeJPEG(cropped)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s_sq variant: %w", name, err)
		}
		variants[name+"_sq"] = body
	}

	return variants, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
