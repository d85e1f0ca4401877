// Package plansync keeps a local copy of the carrier's plan catalog. The
// catalog changes rarely, so reads are served cache-first and a periodic
// batch job refreshes the cached copy through the carrier client.
package plansync

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mexared/carrier-gateway/internal/infrastructure/cache"
)

// CatalogKey is the cache key holding the JSON plan list.
const CatalogKey = "addinteli:plan_catalog"

// CatalogClient is the slice of the carrier client the sync needs. An empty
// pageURL fetches the first page; subsequent pages are addressed by the
// next_url of the previous response.
type CatalogClient interface {
	PlanCatalogPage(ctx context.Context, pageURL string) (map[string]interface{}, error)
}

// Service fetches and caches the distributor plan catalog.
type Service struct {
	client CatalogClient
	cache  cache.Cache
	logger *zap.Logger
	ttl    time.Duration
}

// New creates a plan-catalog sync service.
func New(client CatalogClient, c cache.Cache, logger *zap.Logger, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &Service{
		client: client,
		cache:  c,
		logger: logger.Named("plansync"),
		ttl:    ttl,
	}
}

// Sync walks every catalog page, following next_url until the carrier stops
// returning one, and replaces the cached copy with the merged plan list.
func (s *Service) Sync(ctx context.Context) ([]interface{}, error) {
	// Non-nil so an empty catalog caches as [] rather than null.
	plans := make([]interface{}, 0)
	pageURL := ""
	pages := 0

	for {
		page, err := s.client.PlanCatalogPage(ctx, pageURL)
		if err != nil {
			s.logger.Error("plan catalog fetch failed",
				zap.Int("page", pages+1), zap.Error(err))
			return nil, err
		}
		pages++

		if result, ok := page["result"].([]interface{}); ok {
			plans = append(plans, result...)
		}

		next, _ := page["next_url"].(string)
		if next == "" {
			break
		}
		pageURL = next
	}

	if err := s.cache.SetJSON(ctx, CatalogKey, plans, s.ttl); err != nil {
		s.logger.Error("plan catalog cache write failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("plan catalog synchronized",
		zap.Int("plans", len(plans)),
		zap.Int("pages", pages),
		zap.Duration("ttl", s.ttl))
	return plans, nil
}

// Plans returns the plan list, serving the cached copy when present and
// falling back to a full sync on a miss. A cache hit never touches the
// carrier.
func (s *Service) Plans(ctx context.Context) ([]interface{}, error) {
	var cached []interface{}
	err := s.cache.GetJSON(ctx, CatalogKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !cache.IsMiss(err) {
		s.logger.Warn("plan catalog cache read failed, refetching", zap.Error(err))
	}
	return s.Sync(ctx)
}
