package citation

import (
	"context"
	"time"

	"portfolio-backend/pkg/cache"
)

// StoreInterface - Read/write access to cached citation counts
type StoreInterface interface {
	Get(ctx context.Context, doi string) (int, bool, error)
	Set(ctx context.Context, doi string, count int) error
}

// redisStore keeps counts in Redis under citation:doi:<doi>. Counts live
// well past the refresh cadence so a Crossref outage serves the last
// known value instead of nothing.
type redisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(cache cache.Cache) StoreInterface {
	return &redisStore{cache: cache, ttl: 7 * 24 * time.Hour}
}

func key(doi string) string {
	return "citation:doi:" + NormalizeDOI(doi)
}

func (s *redisStore) Get(ctx context.Context, doi string) (int, bool, error) {
	var count int
	found, err := s.cache.Get(ctx, key(doi), &count)
	if err != nil || !found {
		return 0, false, err
	}
	return count, true, nil
}

func (s *redisStore) Set(ctx context.Context, doi string, count int) error {
	return s.cache.Set(ctx, key(doi), count, s.ttl)
}
