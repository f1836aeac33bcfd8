package service

import (
	"context"

	"catering-suggest/internal/catalog"

	"github.com/stretchr/testify/mock"
)

// MockCatalogStore is a mock implementation of CatalogStore.
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) Snapshot() catalog.Snapshot {
	args := m.Called()
	return args.Get(0).(catalog.Snapshot)
}

func (m *MockCatalogStore) Refresh(ctx context.Context) (catalog.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Snapshot), args.Error(1)
}
