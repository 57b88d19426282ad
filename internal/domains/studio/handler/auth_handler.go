package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domains/studio"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler - Studio login endpoint
type Handler struct {
	service studio.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service studio.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login - POST /api/v1/studio/login
func (h *Handler) Login(c *gin.Context) {
	var req studio.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, studio.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.InternalServerError(c, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, resp)
}
