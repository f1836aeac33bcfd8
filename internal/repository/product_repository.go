package repository

import (
	"context"
	"fmt"

	"catering-suggest/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListAll retrieves every product in catalog order.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, category, price, position
		FROM products
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Position); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// ReplaceAll swaps the whole catalog for products in one transaction.
// Products without an ID get a generated one.
func (r *productRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear products")
		return fmt.Errorf("failed to clear products: %w", err)
	}

	query := `
		INSERT INTO products (id, name, category, price, position)
		VALUES ($1, $2, $3, $4, $5)
	`

	if len(products) > 0 {
		batch := &pgx.Batch{}
		for i, p := range products {
			id := p.ID
			if id == "" {
				id = uuid.NewString()
			}
			batch.Queue(query, id, p.Name, p.Category, p.Price, i)
		}

		results := tx.SendBatch(ctx, batch)
		for range products {
			if _, err := results.Exec(); err != nil {
				results.Close()
				r.logger.Error().Err(err).Msg("failed to insert product")
				return fmt.Errorf("failed to insert product: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit catalog")
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("catalog replaced")

	return nil
}
