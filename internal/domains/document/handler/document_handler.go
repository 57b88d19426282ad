package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/schema"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler - Studio authoring API over stored documents
type Handler struct {
	service document.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service document.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListTypes - GET /api/v1/studio/types
func (h *Handler) ListTypes(c *gin.Context) {
	infos, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list document types")
		return
	}
	response.Success(c, http.StatusOK, infos)
}

// ListDocuments - GET /api/v1/studio/types/:type/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	docType := c.Param("type")

	docs, err := h.service.ListDocuments(c.Request.Context(), docType)
	if err != nil {
		if errors.Is(err, schema.ErrUnknownType) {
			response.NotFound(c, "Unknown document type")
			return
		}
		response.InternalServerError(c, "Failed to list documents")
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// GetDocument - GET /api/v1/studio/documents/:id
func (h *Handler) GetDocument(c *gin.Context) {
	doc, err := h.service.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			response.NotFound(c, "Document not found")
			return
		}
		response.InternalServerError(c, "Failed to load document")
		return
	}
	response.Success(c, http.StatusOK, doc)
}

// CreateDocument - POST /api/v1/studio/types/:type/documents
func (h *Handler) CreateDocument(c *gin.Context) {
	var req document.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.service.CreateDocument(c.Request.Context(), c.Param("type"), req)
	if err != nil {
		switch {
		case errors.Is(err, schema.ErrUnknownType):
			response.NotFound(c, "Unknown document type")
		case errors.Is(err, document.ErrSingletonExists):
			response.Conflict(c, "A document of this singleton type already exists")
		case errors.Is(err, document.ErrInvalidDocument):
			response.UnprocessableEntity(c, "Document failed validation", err.Error())
		default:
			response.InternalServerError(c, "Failed to create document")
		}
		return
	}
	response.Success(c, http.StatusCreated, doc)
}

// UpdateDocument - PUT /api/v1/studio/documents/:id
func (h *Handler) UpdateDocument(c *gin.Context) {
	var req document.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.service.UpdateDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrNotFound):
			response.NotFound(c, "Document not found")
		case errors.Is(err, document.ErrInvalidDocument):
			response.UnprocessableEntity(c, "Document failed validation", err.Error())
		default:
			response.InternalServerError(c, "Failed to update document")
		}
		return
	}
	response.Success(c, http.StatusOK, doc)
}

// DeleteDocument - DELETE /api/v1/studio/documents/:id
func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.service.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			response.NotFound(c, "Document not found")
			return
		}
		response.InternalServerError(c, "Failed to delete document")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
