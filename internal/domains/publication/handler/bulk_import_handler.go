package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domains/publication"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// BulkImportHandler - Spreadsheet import endpoint for publications
type BulkImportHandler struct {
	service publication.BulkImportServiceInterface
}

// NewBulkImportHandler - Constructor with DI
func NewBulkImportHandler(service publication.BulkImportServiceInterface) *BulkImportHandler {
	return &BulkImportHandler{service: service}
}

// Import - POST /api/v1/studio/publications/import
func (h *BulkImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer f.Close()

	result, err := h.service.Import(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, publication.ErrBadWorkbook) {
			response.UnprocessableEntity(c, "Workbook could not be read", err.Error())
			return
		}
		response.InternalServerError(c, "Import failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}
