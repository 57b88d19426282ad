package storage

import (
	"fmt"
	"strings"
)

// Transform are the optional parameters accepted when resolving an image
// reference to a URL. Resolution is pure: the same key + transform always
// yields the same URL, so resolved URLs are cacheable.
type Transform struct {
	Width  int
	Height int
	Crop   bool
}

// URLBuilder resolves asset keys stored inside documents to public URLs.
type URLBuilder struct {
	baseURL string
	bucket  string
}

func NewURLBuilder(publicURL, bucket string) *URLBuilder {
	return &URLBuilder{
		baseURL: strings.TrimRight(publicURL, "/"),
		bucket:  bucket,
	}
}

// ImageURL maps a transform to the smallest uploaded variant that covers the
// requested dimensions. A nil transform resolves to the original upload.
func (b *URLBuilder) ImageURL(key string, t *Transform) string {
	if key == "" {
		return ""
	}

	variant := "original"
	if t != nil {
		size := t.Width
		if t.Height > size {
			size = t.Height
		}
		switch {
		case size <= 0:
			variant = "original"
		case size <= variantSizes["thumbnail"]:
			variant = "thumbnail"
		case size <= variantSizes["medium"]:
			variant = "medium"
		case size <= variantSizes["large"]:
			variant = "large"
		default:
			variant = "original"
		}
		if t.Crop {
			// No square crop of the original is stored; cap at the
			// largest derived size.
			if variant == "original" {
				variant = "large"
			}
			variant = variant + "_sq"
		}
	}

	return fmt.Sprintf("%s/%s/%s/%s.jpg", b.baseURL, b.bucket, key, variant)
}

// FileURL resolves a file reference (resume PDF, certificate document).
func (b *URLBuilder) FileURL(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.bucket, key)
}
