package service

import (
	"bytes"
	"context"
	"testing"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// recordingDocuments captures created documents without a real store.
type recordingDocuments struct {
	created []map[string]interface{}
}

func (r *recordingDocuments) ListTypes(_ context.Context) ([]document.TypeInfo, error) {
	return nil, nil
}
func (r *recordingDocuments) ListDocuments(_ context.Context, _ string) ([]document.Document, error) {
	return nil, nil
}
func (r *recordingDocuments) GetDocument(_ context.Context, _ string) (*document.Document, error) {
	return nil, document.ErrNotFound
}
func (r *recordingDocuments) CreateDocument(_ context.Context, docType string, req document.CreateDocumentRequest) (*document.Document, error) {
	dt, err := schema.NewRegistry().Get(docType)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateDocument(dt, req.Data); err != nil {
		return nil, err
	}
	r.created = append(r.created, req.Data)
	return &document.Document{ID: "new", Type: docType, Data: req.Data}, nil
}
func (r *recordingDocuments) UpdateDocument(_ context.Context, _ string, _ document.UpdateDocumentRequest) (*document.Document, error) {
	return nil, document.ErrNotFound
}
func (r *recordingDocuments) DeleteDocument(_ context.Context, _ string) error { return nil }

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{"Title", "Category", "Authors", "Journal", "Year", "DOI", "Manual Citations", "Abstract"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportCreatesPublications(t *testing.T) {
	docs := &recordingDocuments{}
	svc := NewBulkImportService(docs)

	buf := workbook(t, [][]interface{}{
		{"Crop Yield Prediction", "Journal Article", "J. Doe; A. Smith", "Nature Food", 2023, "10.1000/xyz1", 5, "We predict yields."},
		{"Soil Sensing Review", "Review", "", "", "", "", "", ""},
	})

	result, err := svc.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)

	first := docs.created[0]
	assert.Equal(t, "Crop Yield Prediction", first["title"])
	assert.Equal(t, []interface{}{"J. Doe", "A. Smith"}, first["authors"])
	assert.Equal(t, float64(2023), first["year"])
	assert.Equal(t, float64(5), first["manualCitationCount"])
}

func TestImportSkipsBadRowsAndContinues(t *testing.T) {
	docs := &recordingDocuments{}
	svc := NewBulkImportService(docs)

	buf := workbook(t, [][]interface{}{
		{"", "Journal Article"},                       // no title
		{"Valid Paper", ""},                           // no category
		{"Bad Year", "Journal Article", "", "", "x"},  // year not numeric
		{"Good Paper", "Journal Article", "", "", ""}, // fine
	})

	result, err := svc.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Equal(t, 4, result.Errors[2].Row)
}

func TestImportRejectsGarbageWorkbook(t *testing.T) {
	svc := NewBulkImportService(&recordingDocuments{})

	_, err := svc.Import(context.Background(), bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
