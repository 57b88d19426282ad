package document

import "context"

// RepositoryInterface - Data access methods for stored documents
type RepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*Document, error)
	GetSingleton(ctx context.Context, docType string) (*Document, error)
	ListByType(ctx context.Context, docType string) ([]Document, error)
	ListByIDs(ctx context.Context, ids []string) ([]Document, error)
	CountByType(ctx context.Context, docType string) (int, error)
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
}

// ServiceInterface - Business logic for studio authoring
type ServiceInterface interface {
	ListTypes(ctx context.Context) ([]TypeInfo, error)
	ListDocuments(ctx context.Context, docType string) ([]Document, error)
	GetDocument(ctx context.Context, id string) (*Document, error)
	CreateDocument(ctx context.Context, docType string, req CreateDocumentRequest) (*Document, error)
	UpdateDocument(ctx context.Context, id string, req UpdateDocumentRequest) (*Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
