package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"catering-suggest/internal/model"

	"github.com/rs/zerolog"
)

// Snapshot is an immutable view of the catalog. Callers must not modify Products.
type Snapshot struct {
	Products  []model.Product
	FetchedAt time.Time
	// Err is the most recent refresh failure, or nil if the last refresh succeeded.
	Err error
}

// Warning returns the user-facing warning for a failed refresh, or "".
func (s Snapshot) Warning() string {
	if s.Err != nil {
		return model.CatalogWarning
	}
	return ""
}

// Store holds the latest catalog snapshot. Reads never block on a refresh.
type Store struct {
	source  Source
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serialises refreshes
	logger  zerolog.Logger
}

// NewStore creates a store with an empty snapshot.
func NewStore(source Source, logger zerolog.Logger) *Store {
	s := &Store{
		source: source,
		logger: logger.With().Str("component", "catalog-store").Str("source", source.Name()).Logger(),
	}
	s.current.Store(&Snapshot{Products: []model.Product{}})
	return s
}

// Snapshot returns the current catalog snapshot.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Refresh fetches the catalog and returns the snapshot now current. On
// failure the previous products are kept and the error is recorded on the
// snapshot. A refresh abandoned by its caller (ctx cancelled or past its
// deadline) leaves the snapshot untouched.
func (s *Store) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()

	if err := ctx.Err(); err != nil {
		return *prev, fmt.Errorf("catalog refresh abandoned: %w", err)
	}

	products, err := s.source.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Debug().Err(err).Msg("catalog refresh abandoned by caller, keeping snapshot")
			return *prev, fmt.Errorf("catalog refresh abandoned: %w", ctxErr)
		}

		s.logger.Warn().
			Err(err).
			Int("kept_products", len(prev.Products)).
			Msg("catalog refresh failed, keeping previous snapshot")

		failed := &Snapshot{
			Products:  prev.Products,
			FetchedAt: prev.FetchedAt,
			Err:       err,
		}
		s.current.Store(failed)
		return *failed, fmt.Errorf("failed to refresh catalog: %w", err)
	}

	owned := make([]model.Product, len(products))
	copy(owned, products)

	next := &Snapshot{
		Products:  owned,
		FetchedAt: time.Now(),
	}
	s.current.Store(next)

	s.logger.Info().Int("products", len(owned)).Msg("catalog refreshed")

	return *next, nil
}

// Run refreshes the catalog every interval until ctx is done. A non-positive
// interval disables periodic refresh.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Failures are already logged and recorded on the snapshot.
			_, _ = s.Refresh(ctx)
		}
	}
}
