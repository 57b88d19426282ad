package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domains/contactform"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler - Contact form submission endpoint
type Handler struct {
	service contactform.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service contactform.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Submit - POST /contact
// Accepts JSON or classic form posts; responds with the submission state
// the page's form widget renders.
func (h *Handler) Submit(c *gin.Context) {
	var req contactform.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.service.Submit(c.Request.Context(), req)
	if err == nil {
		response.Success(c, http.StatusOK, gin.H{"state": contactform.StateSucceeded})
		return
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
			"Submission failed validation", gin.H{
				"state":  contactform.StateErrors,
				"fields": fieldErrs,
			})
		return
	}

	if errors.Is(err, contactform.ErrRelayFailed) {
		response.BadGateway(c, "Form provider is unavailable")
		return
	}

	response.InternalServerError(c, "Failed to submit form")
}
