package job

import (
	"context"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/publication/citation"
	"portfolio-backend/internal/domains/schema"
	"portfolio-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// TaskCitationRefresh re-fetches citation counts for every publication
// that carries a DOI.
const TaskCitationRefresh = "citation:refresh"

// ================================================
// CITATION REFRESH JOB HANDLER
// ================================================

type RefreshCitationsHandler struct {
	repo   document.RepositoryInterface
	client *citation.Client
	store  citation.StoreInterface
}

func NewRefreshCitationsHandler(repo document.RepositoryInterface, client *citation.Client, store citation.StoreInterface) *RefreshCitationsHandler {
	return &RefreshCitationsHandler{
		repo:   repo,
		client: client,
		store:  store,
	}
}

// ProcessTask walks the publications one by one. A failing DOI is logged
// and skipped; its previously stored count keeps serving until the next
// successful refresh.
func (h *RefreshCitationsHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	logger.Info("Starting RefreshCitations job", nil)

	docs, err := h.repo.ListByType(ctx, schema.TypePublication)
	if err != nil {
		return err
	}

	var refreshed, failed, skipped int
	for _, doc := range docs {
		doi, _ := doc.Data["doi"].(string)
		if citation.NormalizeDOI(doi) == "" {
			skipped++
			continue
		}

		count, err := h.client.FetchCount(ctx, doi)
		if err != nil {
			logger.Warn("Citation fetch failed", map[string]interface{}{
				"doi":   doi,
				"error": err.Error(),
			})
			failed++
			continue
		}

		if err := h.store.Set(ctx, doi, count); err != nil {
			logger.Error("Citation store failed", err)
			failed++
			continue
		}
		refreshed++
	}

	logger.Info("Completed RefreshCitations job", map[string]interface{}{
		"refreshed": refreshed,
		"failed":    failed,
		"skipped":   skipped,
	})
	return nil
}
