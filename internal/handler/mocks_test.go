package handler

import (
	"context"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockSuggestionService is a mock implementation of SuggestionService.
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Generate(ctx context.Context, text string) (*model.SuggestionResponse, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SuggestionResponse), args.Error(1)
}

func (m *MockSuggestionService) Menus() model.MenuResponse {
	args := m.Called()
	return args.Get(0).(model.MenuResponse)
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) Status() catalog.Snapshot {
	args := m.Called()
	return args.Get(0).(catalog.Snapshot)
}
