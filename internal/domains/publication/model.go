package publication

import "errors"

var ErrBadWorkbook = errors.New("workbook could not be read")

// RowError - One rejected spreadsheet row
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// BulkImportResult - Outcome of one spreadsheet import
type BulkImportResult struct {
	Created int        `json:"created"`
	Errors  []RowError `json:"errors"`
}
