package service

import (
	"context"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/model"
)

// SuggestionService turns free-form event descriptions into catering suggestions.
type SuggestionService interface {
	// Generate classifies the text, extracts the headcount and estimates against the current catalog.
	Generate(ctx context.Context, text string) (*model.SuggestionResponse, error)

	// Menus lists the keyword table in priority order.
	Menus() model.MenuResponse
}

// CatalogService exposes the product catalog snapshot.
type CatalogService interface {
	// GetAll retrieves catalog products with pagination and an optional exact category filter.
	GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error)

	// Refresh reloads the catalog from its source.
	Refresh(ctx context.Context) (int, error)

	// Status reports the current snapshot state.
	Status() catalog.Snapshot
}

// CatalogStore is the subset of catalog.Store the services depend on.
type CatalogStore interface {
	Snapshot() catalog.Snapshot
	Refresh(ctx context.Context) (catalog.Snapshot, error)
}
