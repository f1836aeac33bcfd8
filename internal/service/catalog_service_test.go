package service

import (
	"context"
	"errors"
	"testing"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func productIDs(products []model.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCatalogService_GetAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		limit    int
		offset   int
		category string
		wantIDs  []string
	}{
		{
			name:    "Default limit returns everything in catalog order",
			limit:   0,
			offset:  0,
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "Limit and offset",
			limit:   2,
			offset:  1,
			wantIDs: []string{"2", "3"},
		},
		{
			name:    "Negative offset treated as zero",
			limit:   1,
			offset:  -4,
			wantIDs: []string{"1"},
		},
		{
			name:    "Offset beyond catalog",
			limit:   10,
			offset:  50,
			wantIDs: []string{},
		},
		{
			name:     "Category filter applies before pagination",
			limit:    2,
			offset:   1,
			category: "מתוקים",
			wantIDs:  []string{"3", "5"},
		},
		{
			name:     "Unknown category",
			limit:    10,
			category: "sweets",
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCatalogStore)
			store.On("Snapshot").Return(catalog.Snapshot{Products: testCatalog()})

			svc := NewCatalogService(store, zerolog.Nop())
			products, err := svc.GetAll(ctx, tt.limit, tt.offset, tt.category)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, productIDs(products))
			store.AssertExpectations(t)
		})
	}
}

func TestCatalogService_GetAll_MaxLimit(t *testing.T) {
	products := make([]model.Product, 150)
	for i := range products {
		products[i] = model.Product{Name: "x", Category: "מלוחים"}
	}

	store := new(MockCatalogStore)
	store.On("Snapshot").Return(catalog.Snapshot{Products: products})

	svc := NewCatalogService(store, zerolog.Nop())
	got, err := svc.GetAll(context.Background(), 500, 0, "")

	require.NoError(t, err)
	assert.Len(t, got, 100)
}

func TestCatalogService_GetAll_Unavailable(t *testing.T) {
	store := new(MockCatalogStore)
	store.On("Snapshot").Return(catalog.Snapshot{Products: []model.Product{}, Err: errors.New("boom")})

	svc := NewCatalogService(store, zerolog.Nop())
	products, err := svc.GetAll(context.Background(), 10, 0, "")

	require.Error(t, err)
	assert.Equal(t, model.ErrCatalogUnavailable, err)
	assert.Nil(t, products)
}

func TestCatalogService_GetAll_StaleSnapshotStillServed(t *testing.T) {
	store := new(MockCatalogStore)
	store.On("Snapshot").Return(catalog.Snapshot{Products: testCatalog(), Err: errors.New("boom")})

	svc := NewCatalogService(store, zerolog.Nop())
	products, err := svc.GetAll(context.Background(), 1, 0, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, productIDs(products))
}

func TestCatalogService_Refresh(t *testing.T) {
	t.Run("Success reports the refreshed snapshot", func(t *testing.T) {
		store := new(MockCatalogStore)
		store.On("Refresh", mock.Anything).Return(catalog.Snapshot{Products: testCatalog()}, nil)

		svc := NewCatalogService(store, zerolog.Nop())
		count, err := svc.Refresh(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 6, count)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "Snapshot")
	})

	t.Run("Failure", func(t *testing.T) {
		store := new(MockCatalogStore)
		store.On("Refresh", mock.Anything).Return(catalog.Snapshot{}, errors.New("upstream down"))

		svc := NewCatalogService(store, zerolog.Nop())
		count, err := svc.Refresh(context.Background())

		require.Error(t, err)
		assert.Equal(t, model.ErrCatalogUnavailable, err)
		assert.Zero(t, count)
	})

	t.Run("Caller cancellation does not reach the store", func(t *testing.T) {
		store := new(MockCatalogStore)
		store.On("Refresh", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return ctx.Err() == nil && hasDeadline
		})).Return(catalog.Snapshot{Products: testCatalog()[:2]}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := NewCatalogService(store, zerolog.Nop())
		count, err := svc.Refresh(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		store.AssertExpectations(t)
	})
}

func TestCatalogService_Refresh_RealStoreSurvivesHangUp(t *testing.T) {
	source := &cancellableSource{products: testCatalog()}
	store := catalog.NewStore(source, zerolog.Nop())
	_, err := store.Refresh(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewCatalogService(store, zerolog.Nop())
	count, err := svc.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Empty(t, store.Snapshot().Warning())
}

// cancellableSource fails like a real client when its context is done.
type cancellableSource struct {
	products []model.Product
}

func (s *cancellableSource) Name() string { return "cancellable" }

func (s *cancellableSource) Fetch(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.products, nil
}
