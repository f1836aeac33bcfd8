package menu

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader loads a keyword table from some storage location.
type Loader interface {
	// Load reads the YAML table at path and parses it.
	Load(ctx context.Context, path string) (KeywordTable, error)
}

// fileLoader implements Loader for tables on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based keyword table loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a YAML keyword table from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) (KeywordTable, error) {
	if err := ctx.Err(); err != nil {
		return KeywordTable{}, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading keyword table")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read keyword table")
		return KeywordTable{}, fmt.Errorf("failed to read keyword table %s: %w", filePath, err)
	}

	table, err := ParseTable(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("invalid keyword table")
		return KeywordTable{}, fmt.Errorf("invalid keyword table %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("menus", len(table.Entries)).
		Msg("keyword table loaded successfully")

	return table, nil
}
