package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/config"
	"catering-suggest/internal/database"
	"catering-suggest/internal/model"
	"catering-suggest/internal/repository"
)

// Seeds the postgres catalog table from the HTTP catalog, or from a JSON file
// given as the first argument. Connection settings come from DB_* variables.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var products []model.Product
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return fmt.Errorf("failed to read catalog file: %w", err)
		}
		var skipped int
		products, skipped, err = catalog.DecodeProducts(data)
		if err != nil {
			return err
		}
		logger.Info().Int("skipped", skipped).Str("file", os.Args[1]).Msg("decoded catalog file")
	} else {
		products, err = catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Timeout(), logger).Fetch(ctx)
		if err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, repository.Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := repository.NewProductRepository(pool, logger).ReplaceAll(ctx, products); err != nil {
		return err
	}

	fmt.Printf("Seeded %d products into %s\n", len(products), cfg.Database.Database)
	return nil
}
