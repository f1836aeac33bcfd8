package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"catering-suggest/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ApplicationName identifies catalog connections in pg_stat_activity.
const ApplicationName = "catering-suggest"

// defaultStatementTimeout bounds a single catalog query.
const defaultStatementTimeout = 30 * time.Second

// Option adjusts the pool configuration.
type Option func(*options)

type options struct {
	readOnly         bool
	statementTimeout time.Duration
	role             string
}

// ReadOnly makes every transaction on the pool read-only. Used by the catalog reader.
func ReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
		o.role = "catalog-reader"
	}
}

// WithStatementTimeout overrides the per-statement timeout. Zero disables it.
func WithStatementTimeout(d time.Duration) Option {
	return func(o *options) {
		o.statementTimeout = d
	}
}

// NewPool creates a PostgreSQL connection pool for the product catalog.
// The catalog is read once per refresh, so idle connections are released quickly.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger, opts ...Option) (*pgxpool.Pool, error) {
	o := options{statementTimeout: defaultStatementTimeout, role: "catalog-writer"}
	for _, opt := range opts {
		opt(&o)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	params := poolConfig.ConnConfig.RuntimeParams
	params["application_name"] = ApplicationName + "/" + o.role
	if o.readOnly {
		params["default_transaction_read_only"] = "on"
	}
	if o.statementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(o.statementTimeout.Milliseconds(), 10)
	}

	logger = logger.With().Str("component", "database").Str("role", o.role).Logger()

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Bool("read_only", o.readOnly).
		Dur("statement_timeout", o.statementTimeout).
		Msg("creating catalog connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug().Msg("catalog connection pool ready")

	return pool, nil
}
