package service

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/schema"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

type documentService struct {
	repo     document.RepositoryInterface
	registry *schema.Registry
	cache    cache.Cache
}

// NewDocumentService - Constructor
func NewDocumentService(repo document.RepositoryInterface, registry *schema.Registry, cache cache.Cache) document.ServiceInterface {
	return &documentService{
		repo:     repo,
		registry: registry,
		cache:    cache,
	}
}

func (s *documentService) ListTypes(ctx context.Context) ([]document.TypeInfo, error) {
	names := s.registry.Names()
	infos := make([]document.TypeInfo, 0, len(names))

	for _, name := range names {
		dt, err := s.registry.Get(name)
		if err != nil {
			return nil, err
		}
		count, err := s.repo.CountByType(ctx, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, document.TypeInfo{
			Name:      dt.Name,
			Title:     dt.Title,
			Singleton: dt.Singleton,
			Count:     count,
		})
	}

	return infos, nil
}

func (s *documentService) ListDocuments(ctx context.Context, docType string) ([]document.Document, error) {
	if _, err := s.registry.Get(docType); err != nil {
		return nil, err
	}
	return s.repo.ListByType(ctx, docType)
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*document.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *documentService) CreateDocument(ctx context.Context, docType string, req document.CreateDocumentRequest) (*document.Document, error) {
	dt, err := s.registry.Get(docType)
	if err != nil {
		return nil, err
	}

	if err := schema.ValidateDocument(dt, req.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", document.ErrInvalidDocument, err)
	}

	// At most one published document per singleton type.
	if dt.Singleton {
		count, err := s.repo.CountByType(ctx, docType)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, document.ErrSingletonExists
		}
	}

	now := time.Now().UTC()
	doc := &document.Document{
		ID:        uuid.New().String(),
		Type:      docType,
		Data:      req.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.invalidatePages(ctx)
	logger.Info("Document created", map[string]interface{}{
		"id":   doc.ID,
		"type": doc.Type,
	})

	return doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, req document.UpdateDocumentRequest) (*document.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dt, err := s.registry.Get(doc.Type)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateDocument(dt, req.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", document.ErrInvalidDocument, err)
	}

	doc.Data = req.Data
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.invalidatePages(ctx)
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePages(ctx)
	return nil
}

// invalidatePages drops every cached page projection so the next request
// re-renders from fresh content. Failures only shorten staleness, so they
// are logged and swallowed.
func (s *documentService) invalidatePages(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "page:*"); err != nil {
		logger.Warn("Failed to invalidate page cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
