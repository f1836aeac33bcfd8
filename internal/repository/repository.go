package repository

import (
	"context"

	"catering-suggest/internal/model"
)

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// ListAll retrieves every product in catalog order.
	ListAll(ctx context.Context) ([]model.Product, error)

	// ReplaceAll swaps the whole catalog for products in one transaction.
	// Catalog order follows the order of products.
	ReplaceAll(ctx context.Context, products []model.Product) error
}

// Schema creates the products table used by the PostgreSQL catalog source.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_products_position ON products(position, id);
`
