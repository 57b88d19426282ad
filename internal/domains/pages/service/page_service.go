package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/domains/pages"
	"portfolio-backend/internal/domains/projection"
	"portfolio-backend/internal/domains/publication/citation"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

type builder func(ctx context.Context) (*pages.PageView, error)

// pageService assembles page views from projections and caches each one
// for a fixed revalidation window. Within the window every request serves
// the cached copy; after expiry the next request rebuilds, and only a
// successful rebuild replaces the cached view.
type pageService struct {
	builders  map[string]builder
	cache     cache.Cache
	ttl       time.Duration
	citations citation.StoreInterface
	engine    projectionEngine
	tasks     queue.Enqueuer
}

// projectionEngine is what the service needs from the projection layer.
type projectionEngine interface {
	ProjectSingleton(ctx context.Context, q projection.Query) (map[string]interface{}, error)
	ProjectList(ctx context.Context, q projection.Query) ([]map[string]interface{}, error)
}

// NewPageService - Constructor. tasks may be nil; citation refreshes are
// then left entirely to the scheduler.
func NewPageService(engine projectionEngine, cache cache.Cache, citations citation.StoreInterface, tasks queue.Enqueuer, ttl time.Duration) pages.ServiceInterface {
	s := &pageService{
		cache:     cache,
		ttl:       ttl,
		citations: citations,
		engine:    engine,
		tasks:     tasks,
	}
	s.builders = map[string]builder{
		pages.PageHome:         s.buildHome,
		pages.PageSkills:       s.buildSkills,
		pages.PageEducation:    s.buildEducation,
		pages.PageExperience:   s.buildExperience,
		pages.PagePublication:  s.buildPublication,
		pages.PageAchievement:  s.buildAchievement,
		pages.PageOrganization: s.buildOrganization,
		pages.PageNextGen:      s.buildNextGen,
		pages.PageContact:      s.buildContact,
	}
	return s
}

func (s *pageService) Names() []string {
	return []string{
		pages.PageHome, pages.PageSkills, pages.PageEducation,
		pages.PageExperience, pages.PagePublication, pages.PageAchievement,
		pages.PageOrganization, pages.PageNextGen, pages.PageContact,
	}
}

func (s *pageService) GetPage(ctx context.Context, name string) (*pages.PageView, error) {
	build, ok := s.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pages.ErrUnknownPage, name)
	}

	cacheKey := "page:" + name

	var cached pages.PageView
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("Page cache read failed", map[string]interface{}{
			"page":  name,
			"error": err.Error(),
		})
	}
	if found {
		return &cached, nil
	}

	built, err := build(ctx)
	if err != nil {
		return nil, err
	}
	built.Name = name
	built.FetchedAt = time.Now().UTC()

	// Round-trip through JSON so a freshly built view and a cache hit have
	// the same shape; templates see plain maps and slices either way.
	view, err := normalizeView(built)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, view, s.ttl); err != nil {
		logger.Warn("Page cache write failed", map[string]interface{}{
			"page":  name,
			"error": err.Error(),
		})
	}

	return view, nil
}

func normalizeView(v *pages.PageView) (*pages.PageView, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode page view: %w", err)
	}
	var out pages.PageView
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode page view: %w", err)
	}
	return &out, nil
}
