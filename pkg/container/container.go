package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	assetsHandler "portfolio-backend/internal/domains/assets/handler"
	assetsService "portfolio-backend/internal/domains/assets/service"
	contactHandler "portfolio-backend/internal/domains/contactform/handler"
	contactService "portfolio-backend/internal/domains/contactform/service"
	"portfolio-backend/internal/domains/document"
	documentHandler "portfolio-backend/internal/domains/document/handler"
	documentRepo "portfolio-backend/internal/domains/document/repository"
	documentService "portfolio-backend/internal/domains/document/service"
	"portfolio-backend/internal/domains/pages"
	pagesHandler "portfolio-backend/internal/domains/pages/handler"
	pagesService "portfolio-backend/internal/domains/pages/service"
	"portfolio-backend/internal/domains/projection"
	"portfolio-backend/internal/domains/publication"
	"portfolio-backend/internal/domains/publication/citation"
	publicationHandler "portfolio-backend/internal/domains/publication/handler"
	publicationService "portfolio-backend/internal/domains/publication/service"
	"portfolio-backend/internal/domains/schema"
	studioHandler "portfolio-backend/internal/domains/studio/handler"
	studioService "portfolio-backend/internal/domains/studio/service"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	URLs       *storage.URLBuilder
	Tasks      queue.Enqueuer
	JWTManager *jwt.Manager

	Registry      *schema.Registry
	DocumentRepo  document.RepositoryInterface
	Engine        *projection.Engine
	CitationStore citation.StoreInterface
	Crossref      *citation.Client

	DocumentService   document.ServiceInterface
	PageService       pages.ServiceInterface
	BulkImportService publication.BulkImportServiceInterface

	DocumentHandler   *documentHandler.Handler
	PageHandler       *pagesHandler.Handler
	ContactHandler    *contactHandler.Handler
	StudioHandler     *studioHandler.Handler
	AssetHandler      *assetsHandler.Handler
	BulkImportHandler *publicationHandler.BulkImportHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to connect minio: %w", err)
	}
	c.URLs = storage.NewURLBuilder(cfg.MinIO.PublicURL, cfg.MinIO.Bucket)

	c.Tasks = queue.NewEnqueuer(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(cfg.Studio.JWTSecret, cfg.Studio.TokenExpiry)

	// Content layer
	c.Registry = schema.NewRegistry()
	if err := documentRepo.EnsureSchema(ctx, c.DB.Pool); err != nil {
		return nil, err
	}
	c.DocumentRepo = documentRepo.NewPostgresRepository(c.DB.Pool)
	c.Engine = projection.NewEngine(c.DocumentRepo)
	c.CitationStore = citation.NewStore(c.Cache)
	c.Crossref = citation.NewClient(cfg.Crossref.BaseURL, cfg.Crossref.Mailto, cfg.Crossref.Timeout)

	// Services
	c.DocumentService = documentService.NewDocumentService(c.DocumentRepo, c.Registry, c.Cache)
	c.PageService = pagesService.NewPageService(c.Engine, c.Cache, c.CitationStore, c.Tasks, cfg.Content.RevalidateInterval)
	c.BulkImportService = publicationService.NewBulkImportService(c.DocumentService)

	relay := contactService.NewRelayService(cfg.FormRelay.Endpoint, cfg.FormRelay.FormID, cfg.FormRelay.Timeout)
	auth := studioService.NewAuthService(c.JWTManager, cfg.Studio.AdminUser, cfg.Studio.AdminPasswordHash, cfg.Studio.TokenExpiry)
	assetSvc := assetsService.NewAssetService(c.Storage, storage.NewImageProcessor(), c.URLs)

	// Handlers
	c.DocumentHandler = documentHandler.NewHandler(c.DocumentService)
	c.PageHandler = pagesHandler.NewHandler(c.PageService, cfg.FormRelay.FormID)
	c.ContactHandler = contactHandler.NewHandler(relay)
	c.StudioHandler = studioHandler.NewHandler(auth)
	c.AssetHandler = assetsHandler.NewHandler(assetSvc)
	c.BulkImportHandler = publicationHandler.NewBulkImportHandler(c.BulkImportService)

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup closes infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.Tasks != nil {
		if err := c.Tasks.Close(); err != nil {
			logger.Error("Failed to close task client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close redis", err)
		}
	}
}
