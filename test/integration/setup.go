package integration

import (
	"context"
	"testing"
	"time"

	"catering-suggest/internal/model"
	"catering-suggest/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the catalog schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catering"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if _, err := pool.Exec(ctx, repository.Schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// TestCatalog is a small catalog in source order.
func TestCatalog() []model.Product {
	return []model.Product{
		{ID: "S1", Name: "עוגת שוקולד", Category: "מתוקים", Price: 12.5},
		{ID: "V1", Name: "בורקס גבינה", Category: "מלוחים", Price: 6},
		{ID: "S2", Name: "רוגלך", Category: "מתוקים", Price: 4},
		{ID: "D1", Name: "מיץ תפוזים", Category: "שתייה", Price: 9},
		{ID: "V2", Name: "קיש בטטה", Category: "מלוחים", Price: 8},
		{ID: "S3", Name: "מקרון", Category: "מתוקים", Price: 7},
		{ID: "S4", Name: "טארט לימון", Category: "מתוקים", Price: 11},
	}
}

// SeedProducts replaces the catalog table contents with products.
func SeedProducts(t *testing.T, pool *pgxpool.Pool, products []model.Product) {
	t.Helper()

	repo := repository.NewProductRepository(pool, zerolog.Nop())
	if err := repo.ReplaceAll(context.Background(), products); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
}
