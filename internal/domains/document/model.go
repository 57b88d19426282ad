package document

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrSingletonExists = errors.New("a document of this singleton type already exists")
	ErrInvalidDocument = errors.New("document failed schema validation")
)

// Document is one stored content item. Data holds the authored fields as a
// schemaless JSON object; the schema registry constrains what goes in at
// authoring time, never what comes out.
type Document struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// CreateDocumentRequest - Studio payload for authoring a new document
type CreateDocumentRequest struct {
	Data map[string]interface{} `json:"data"`
}

// UpdateDocumentRequest - Studio payload replacing a document's fields
type UpdateDocumentRequest struct {
	Data map[string]interface{} `json:"data"`
}

// TypeInfo - Descriptor summary exposed to the studio UI
type TypeInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Singleton bool   `json:"singleton"`
	Count     int    `json:"count"`
}
