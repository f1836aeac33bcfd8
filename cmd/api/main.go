package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/config"
	"catering-suggest/internal/database"
	"catering-suggest/internal/estimator"
	"catering-suggest/internal/handler"
	"catering-suggest/internal/menu"
	"catering-suggest/internal/repository"
	"catering-suggest/internal/router"
	"catering-suggest/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting catering suggestion server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table, err := loadMenuTable(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load menu table: %w", err)
	}

	source, cleanup, err := newCatalogSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog source: %w", err)
	}
	defer cleanup()

	// The first load may fail; the store then serves an empty catalog with a warning.
	store := catalog.NewStore(source, logger)
	if _, err := store.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial catalog load failed")
	}
	go store.Run(ctx, cfg.Catalog.RefreshInterval())

	// Initialize services
	suggestionService := service.NewSuggestionService(
		store,
		menu.NewClassifier(table),
		estimator.New(estimator.DefaultConfig()),
		logger,
	)
	catalogService := service.NewCatalogService(store, logger)

	// Initialize HTTP handlers
	suggestionHandler := handler.NewSuggestionHandler(suggestionService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)

	mux := router.New(suggestionHandler, catalogHandler, cfg.Auth.APIKey, logger)
	if cfg.Auth.APIKey == "" {
		logger.Warn().Msg("API_KEY not set, authentication disabled")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.Catalog.Timeout(),
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Stop the periodic refresh before draining requests
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadMenuTable returns the built-in table unless MENU_FILE is set.
func loadMenuTable(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (menu.KeywordTable, error) {
	if cfg.Menu.File == "" {
		logger.Info().Msg("using built-in menu table")
		return menu.DefaultTable(), nil
	}

	fileLoader := menu.NewFileLoader(logger)
	var s3Loader menu.Loader

	s3Enabled := cfg.S3.Enabled
	if s3Enabled {
		l, err := menu.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Enabled = false
		} else {
			s3Loader = l
		}
	}

	loader := menu.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, s3Enabled, logger)
	return loader.Load(ctx, cfg.Menu.File)
}

// newCatalogSource builds the configured catalog source and a cleanup func for its resources.
func newCatalogSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger, database.ReadOnly())
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewProductRepository(pool, logger)
		return catalog.NewRepositorySource(repo), pool.Close, nil
	default:
		return catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Timeout(), logger), func() {}, nil
	}
}
