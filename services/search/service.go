package search

import (
	"context"
	"encoding/json"
	"time"

	"pawfect/models"

	"go.uber.org/zap"
)

// Search filters the catalogue, preserving dataset order. It never fails:
// cache problems are logged and the result is computed directly.
func (s *DefaultSearchService) Search(ctx context.Context, q models.SearchQuery) models.SearchResponse {
	if s.Cache == nil {
		return s.run(q)
	}

	key := cacheKey(q)
	if data, found, err := s.cacheGet(ctx, key); err != nil {
		s.logger().Warn("Search: cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		var cached models.SearchResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached
		}
		s.logger().Warn("Search: discarding undecodable cache entry", zap.String("key", key))
	}

	resp := s.run(q)
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger().Error("Search: failed to encode response for cache", zap.Error(err))
		return resp
	}
	if err := s.cacheSet(ctx, key, data); err != nil {
		s.logger().Warn("Search: cache write failed", zap.String("key", key), zap.Error(err))
	}
	return resp
}

// cacheGet and cacheSet give every cache call its own deadline so a stalled
// Redis delays a search by at most two timeouts.
func (s *DefaultSearchService) cacheGet(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout())
	defer cancel()
	return s.Cache.Get(ctx, key)
}

func (s *DefaultSearchService) cacheSet(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout())
	defer cancel()
	return s.Cache.Set(ctx, key, data, s.CacheTTL)
}

func (s *DefaultSearchService) cacheTimeout() time.Duration {
	if s.CacheTimeout <= 0 {
		return DefaultCacheTimeout
	}
	return s.CacheTimeout
}

func (s *DefaultSearchService) run(q models.SearchQuery) models.SearchResponse {
	results := make([]models.Listing, 0, s.Catalogue.Len())
	s.Catalogue.Each(func(l models.Listing) {
		if Matches(q, l) {
			results = append(results, l)
		}
	})
	return models.SearchResponse{
		Filters: q,
		Count:   len(results),
		Results: results,
	}
}

// Options returns the dropdown vocabulary for the search page.
func (s *DefaultSearchService) Options() models.SearchOptions {
	return DefaultOptions()
}

func (s *DefaultSearchService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
