package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/publication"
	"portfolio-backend/internal/domains/schema"
	"portfolio-backend/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// Expected column order on the first sheet. Row 1 is the header.
//
//	Title | Category | Authors | Journal | Year | DOI | Manual Citations | Abstract
const (
	colTitle = iota
	colCategory
	colAuthors
	colJournal
	colYear
	colDOI
	colManualCitations
	colAbstract
)

type bulkImportService struct {
	documents document.ServiceInterface
}

// NewBulkImportService - Constructor
func NewBulkImportService(documents document.ServiceInterface) publication.BulkImportServiceInterface {
	return &bulkImportService{documents: documents}
}

// Import reads rows top to bottom and creates one publication document per
// valid row. Bad rows are reported with their row number and skipped; they
// never abort the rows after them.
func (s *bulkImportService) Import(ctx context.Context, workbook io.Reader) (*publication.BulkImportResult, error) {
	f, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", publication.ErrBadWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", publication.ErrBadWorkbook)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", publication.ErrBadWorkbook, err)
	}

	result := &publication.BulkImportResult{Errors: []publication.RowError{}}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		data, err := rowToDocument(row)
		if err != nil {
			result.Errors = append(result.Errors, publication.RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		if _, err := s.documents.CreateDocument(ctx, schema.TypePublication, document.CreateDocumentRequest{Data: data}); err != nil {
			result.Errors = append(result.Errors, publication.RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		result.Created++
	}

	logger.Info("Publication import finished", map[string]interface{}{
		"created": result.Created,
		"errors":  len(result.Errors),
	})
	return result, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowToDocument(row []string) (map[string]interface{}, error) {
	title := cell(row, colTitle)
	category := cell(row, colCategory)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}

	data := map[string]interface{}{
		"title":    title,
		"category": category,
	}

	if authors := cell(row, colAuthors); authors != "" {
		list := make([]interface{}, 0)
		for _, a := range strings.Split(authors, ";") {
			if a = strings.TrimSpace(a); a != "" {
				list = append(list, a)
			}
		}
		data["authors"] = list
	}

	if journal := cell(row, colJournal); journal != "" {
		data["journalName"] = journal
	}

	if year := cell(row, colYear); year != "" {
		n, err := strconv.Atoi(year)
		if err != nil {
			return nil, fmt.Errorf("year %q is not a number", year)
		}
		data["year"] = float64(n)
	}

	if doi := cell(row, colDOI); doi != "" {
		data["doi"] = doi
	}

	if manual := cell(row, colManualCitations); manual != "" {
		n, err := strconv.Atoi(manual)
		if err != nil {
			return nil, fmt.Errorf("manual citation count %q is not a number", manual)
		}
		data["manualCitationCount"] = float64(n)
	}

	if abstract := cell(row, colAbstract); abstract != "" {
		data["abstract"] = abstract
	}

	return data, nil
}
