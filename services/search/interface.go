package search

import (
	"context"
	"time"

	"pawfect/models"

	"go.uber.org/zap"
)

// SearchService answers listing searches.
type SearchService interface {
	Search(ctx context.Context, q models.SearchQuery) models.SearchResponse
	Options() models.SearchOptions
}

// DefaultCacheTimeout bounds each cache call when CacheTimeout is unset.
const DefaultCacheTimeout = 250 * time.Millisecond

// DefaultSearchService implements SearchService over an in-memory Catalogue.
// Cache is optional; a nil Cache disables result caching.
type DefaultSearchService struct {
	Catalogue    *Catalogue
	Cache        ResultCache
	CacheTTL     time.Duration
	CacheTimeout time.Duration
	Logger       *zap.Logger
}

// NewDefaultSearchService wires a search service without a cache.
func NewDefaultSearchService(catalogue *Catalogue, logger *zap.Logger) *DefaultSearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultSearchService{
		Catalogue: catalogue,
		Logger:    logger,
	}
}
