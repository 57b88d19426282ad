package job

import (
	"context"

	"portfolio-backend/internal/domains/pages"
	"portfolio-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// TaskPagesWarm rebuilds every page view so visitors after a cache expiry
// rarely pay the assembly cost themselves.
const TaskPagesWarm = "pages:warm"

// ================================================
// PAGE WARM JOB HANDLER
// ================================================

type WarmPagesHandler struct {
	service pages.ServiceInterface
}

func NewWarmPagesHandler(service pages.ServiceInterface) *WarmPagesHandler {
	return &WarmPagesHandler{service: service}
}

func (h *WarmPagesHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	logger.Info("Starting WarmPages job", nil)

	var warmed, failed int
	for _, name := range h.service.Names() {
		if _, err := h.service.GetPage(ctx, name); err != nil {
			logger.Warn("Page warm failed", map[string]interface{}{
				"page":  name,
				"error": err.Error(),
			})
			failed++
			continue
		}
		warmed++
	}

	logger.Info("Completed WarmPages job", map[string]interface{}{
		"warmed": warmed,
		"failed": failed,
	})
	return nil
}
