package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"portfolio-backend/internal/domains/assets"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler - Studio asset endpoints
type Handler struct {
	service assets.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service assets.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func readUpload(c *gin.Context) (string, string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return "", "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return "", "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return "", "", nil, false
	}

	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, true
}

// UploadImage - POST /api/v1/studio/assets/images
func (h *Handler) UploadImage(c *gin.Context) {
	_, _, data, ok := readUpload(c)
	if !ok {
		return
	}

	resp, err := h.service.UploadImage(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidAsset) {
			response.UnprocessableEntity(c, "Invalid image", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to store image")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// UploadFile - POST /api/v1/studio/assets/files
func (h *Handler) UploadFile(c *gin.Context) {
	filename, contentType, data, ok := readUpload(c)
	if !ok {
		return
	}

	resp, err := h.service.UploadFile(c.Request.Context(), filename, data, contentType)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidAsset) {
			response.UnprocessableEntity(c, "Invalid file", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to store file")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// DeleteAsset - DELETE /api/v1/studio/assets/*key
func (h *Handler) DeleteAsset(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	if err := h.service.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, assets.ErrInvalidAsset) {
			response.BadRequest(c, "Invalid asset key")
			return
		}
		response.InternalServerError(c, "Failed to delete asset")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
