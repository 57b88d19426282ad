package main

import (
	"html/template"
	"net/http"

	"portfolio-backend/internal/domains/pages"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

// assetKey digs the stored key out of a projected image or file object.
func assetKey(v interface{}) string {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	key, _ := obj["assetKey"].(string)
	return key
}

func templateFuncs(urls *storage.URLBuilder) template.FuncMap {
	return template.FuncMap{
		"imageURL": func(v interface{}, width int) string {
			key := assetKey(v)
			if key == "" {
				return ""
			}
			if width <= 0 {
				return urls.ImageURL(key, nil)
			}
			return urls.ImageURL(key, &storage.Transform{Width: width})
		},
		"fileURL": func(v interface{}) string {
			return urls.FileURL(assetKey(v))
		},
		"alt": func(v interface{}) string {
			obj, ok := v.(map[string]interface{})
			if !ok {
				return ""
			}
			alt, _ := obj["alt"].(string)
			return alt
		},
	}
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.SetFuncMap(templateFuncs(c.URLs))
	router.LoadHTMLGlob("web/templates/*.tmpl")
	router.Static("/static", "web/static")

	// Public site: one static route per page, no dynamic segments.
	router.GET("/", c.PageHandler.Page(pages.PageHome))
	router.GET("/skills", c.PageHandler.Page(pages.PageSkills))
	router.GET("/education", c.PageHandler.Page(pages.PageEducation))
	router.GET("/experience", c.PageHandler.Page(pages.PageExperience))
	router.GET("/publication", c.PageHandler.Page(pages.PagePublication))
	router.GET("/achievement", c.PageHandler.Page(pages.PageAchievement))
	router.GET("/organization", c.PageHandler.Page(pages.PageOrganization))
	router.GET("/nextgen", c.PageHandler.Page(pages.PageNextGen))
	router.GET("/contact", c.PageHandler.Page(pages.PageContact))
	router.NoRoute(c.PageHandler.NotFound)

	// Contact form relay.
	router.POST("/contact", c.ContactHandler.Submit)

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(ctx *gin.Context) {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"version": c.Config.App.Version,
			})
		})

		studio := api.Group("/studio")
		{
			studio.POST("/login", c.StudioHandler.Login)

			authed := studio.Group("")
			authed.Use(middleware.StudioAuth(c.JWTManager))
			{
				authed.GET("/types", c.DocumentHandler.ListTypes)
				authed.GET("/types/:type/documents", c.DocumentHandler.ListDocuments)
				authed.POST("/types/:type/documents", c.DocumentHandler.CreateDocument)
				authed.GET("/documents/:id", c.DocumentHandler.GetDocument)
				authed.PUT("/documents/:id", c.DocumentHandler.UpdateDocument)
				authed.DELETE("/documents/:id", c.DocumentHandler.DeleteDocument)

				authed.POST("/assets/images", c.AssetHandler.UploadImage)
				authed.POST("/assets/files", c.AssetHandler.UploadFile)
				authed.DELETE("/assets/*key", c.AssetHandler.DeleteAsset)

				authed.POST("/publications/import", c.BulkImportHandler.Import)
			}
		}
	}

	return router
}
