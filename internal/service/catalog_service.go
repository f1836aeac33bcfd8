package service

import (
	"context"
	"time"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/model"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// manualRefreshTimeout bounds a refresh that outlives its HTTP request.
	manualRefreshTimeout = 2 * time.Minute
)

// catalogService implements CatalogService.
type catalogService struct {
	store  CatalogStore
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store CatalogStore, logger zerolog.Logger) CatalogService {
	return &catalogService{
		store:  store,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// GetAll retrieves catalog products with pagination.
func (s *catalogService) GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	snapshot := s.store.Snapshot()
	if snapshot.Err != nil && len(snapshot.Products) == 0 {
		s.logger.Warn().Err(snapshot.Err).Msg("catalog unavailable")
		return nil, model.ErrCatalogUnavailable
	}

	products := make([]model.Product, 0, limit)
	matched := 0
	for _, p := range snapshot.Products {
		if category != "" && p.Category != category {
			continue
		}
		if matched >= offset && len(products) < limit {
			products = append(products, p)
		}
		matched++
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("offset", offset).
		Str("category", category).
		Msg("retrieved products")

	return products, nil
}

// Refresh reloads the catalog and returns the product count of the snapshot it stored.
// The refresh is detached from ctx so a caller hanging up does not abort it halfway.
func (s *catalogService) Refresh(ctx context.Context) (int, error) {
	refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), manualRefreshTimeout)
	defer cancel()

	snapshot, err := s.store.Refresh(refreshCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("manual catalog refresh failed")
		return 0, model.ErrCatalogUnavailable
	}

	s.logger.Debug().Int("count", len(snapshot.Products)).Msg("manual catalog refresh completed")

	return len(snapshot.Products), nil
}

// Status reports the current snapshot.
func (s *catalogService) Status() catalog.Snapshot {
	return s.store.Snapshot()
}
