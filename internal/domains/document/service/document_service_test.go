package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo - In-memory RepositoryInterface for service tests
type fakeRepo struct {
	docs map[string]document.Document
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[string]document.Document)}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*document.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, document.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeRepo) GetSingleton(_ context.Context, docType string) (*document.Document, error) {
	docs := f.byType(docType)
	if len(docs) == 0 {
		return nil, document.ErrNotFound
	}
	return &docs[0], nil
}

func (f *fakeRepo) ListByType(_ context.Context, docType string) ([]document.Document, error) {
	return f.byType(docType), nil
}

func (f *fakeRepo) ListByIDs(_ context.Context, ids []string) ([]document.Document, error) {
	out := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountByType(_ context.Context, docType string) (int, error) {
	return len(f.byType(docType)), nil
}

func (f *fakeRepo) Create(_ context.Context, doc *document.Document) error {
	f.docs[doc.ID] = *doc
	return nil
}

func (f *fakeRepo) Update(_ context.Context, doc *document.Document) error {
	if _, ok := f.docs[doc.ID]; !ok {
		return document.ErrNotFound
	}
	f.docs[doc.ID] = *doc
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return document.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeRepo) byType(docType string) []document.Document {
	out := make([]document.Document, 0)
	for _, doc := range f.docs {
		if doc.Type == docType {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// fakeCache - Records pattern invalidations
type fakeCache struct {
	deletedPatterns []string
}

func (f *fakeCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) { return false, nil }
func (f *fakeCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (f *fakeCache) Delete(_ context.Context, _ ...string) error { return nil }
func (f *fakeCache) DeletePattern(_ context.Context, pattern string) error {
	f.deletedPatterns = append(f.deletedPatterns, pattern)
	return nil
}
func (f *fakeCache) Exists(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *fakeCache) Ping(_ context.Context) error                    { return nil }

func newTestService() (document.ServiceInterface, *fakeRepo, *fakeCache) {
	repo := newFakeRepo()
	cache := &fakeCache{}
	return NewDocumentService(repo, schema.NewRegistry(), cache), repo, cache
}

func TestCreateDocumentValidatesSchema(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateDocument(context.Background(), schema.TypePublication, document.CreateDocumentRequest{
		Data: map[string]interface{}{"title": "Missing category"},
	})
	assert.ErrorIs(t, err, document.ErrInvalidDocument)

	doc, err := svc.CreateDocument(context.Background(), schema.TypePublication, document.CreateDocumentRequest{
		Data: map[string]interface{}{
			"title":    "Deep Learning for Crop Yield",
			"category": "Journal Article",
			"year":     float64(2023),
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, schema.TypePublication, doc.Type)
}

func TestCreateDocumentUnknownType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateDocument(context.Background(), "blogPost", document.CreateDocumentRequest{
		Data: map[string]interface{}{},
	})
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestCreateSingletonTwiceFails(t *testing.T) {
	svc, _, _ := newTestService()

	contact := map[string]interface{}{"email": "jane@example.com"}

	_, err := svc.CreateDocument(context.Background(), schema.TypeContact, document.CreateDocumentRequest{Data: contact})
	require.NoError(t, err)

	_, err = svc.CreateDocument(context.Background(), schema.TypeContact, document.CreateDocumentRequest{Data: contact})
	assert.ErrorIs(t, err, document.ErrSingletonExists)
}

func TestMutationsInvalidatePageCache(t *testing.T) {
	svc, _, cache := newTestService()

	doc, err := svc.CreateDocument(context.Background(), schema.TypeSkill, document.CreateDocumentRequest{
		Data: map[string]interface{}{"categoryTitle": "Programming"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateDocument(context.Background(), doc.ID, document.UpdateDocumentRequest{
		Data: map[string]interface{}{"categoryTitle": "Programming Languages"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(context.Background(), doc.ID))

	assert.Equal(t, []string{"page:*", "page:*", "page:*"}, cache.deletedPatterns)
}

func TestUpdateRevalidatesAgainstSchema(t *testing.T) {
	svc, _, _ := newTestService()

	doc, err := svc.CreateDocument(context.Background(), schema.TypeOrganization, document.CreateDocumentRequest{
		Data: map[string]interface{}{"name": "IEEE Student Branch"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateDocument(context.Background(), doc.ID, document.UpdateDocumentRequest{
		Data: map[string]interface{}{"role": "Member"},
	})
	assert.ErrorIs(t, err, document.ErrInvalidDocument)
}
