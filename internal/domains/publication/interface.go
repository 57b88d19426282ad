package publication

import (
	"context"
	"io"
)

// BulkImportServiceInterface - Spreadsheet import of publication documents
type BulkImportServiceInterface interface {
	Import(ctx context.Context, workbook io.Reader) (*BulkImportResult, error)
}
