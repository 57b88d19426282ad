package handler

import (
	"net/http"

	"portfolio-backend/internal/domains/pages"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler renders the public site. Each route is isolated: a failing page
// renders its own error view and never takes a sibling route down with it.
type Handler struct {
	service pages.ServiceInterface
	formID  string
}

// NewHandler - Constructor with DI
func NewHandler(service pages.ServiceInterface, formID string) *Handler {
	return &Handler{service: service, formID: formID}
}

// templates maps page names to their template files.
var templates = map[string]string{
	pages.PageHome:         "home.tmpl",
	pages.PageSkills:       "skills.tmpl",
	pages.PageEducation:    "education.tmpl",
	pages.PageExperience:   "experience.tmpl",
	pages.PagePublication:  "publication.tmpl",
	pages.PageAchievement:  "achievement.tmpl",
	pages.PageOrganization: "organization.tmpl",
	pages.PageNextGen:      "nextgen.tmpl",
	pages.PageContact:      "contact.tmpl",
}

// Page returns the gin handler for one named page.
func (h *Handler) Page(name string) gin.HandlerFunc {
	tmpl := templates[name]

	return func(c *gin.Context) {
		view, err := h.service.GetPage(c.Request.Context(), name)
		if err != nil {
			logger.Error("Page render failed", err)
			c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
				"Active": name,
			})
			return
		}

		if view.NotPublished {
			c.HTML(http.StatusOK, "unpublished.tmpl", gin.H{
				"Active": name,
			})
			return
		}

		c.HTML(http.StatusOK, tmpl, gin.H{
			"Active": name,
			"Data":   view.Data,
			"FormID": h.formID,
		})
	}
}

// NotFound - Fallback for unknown routes
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
		"Active": "",
	})
}
