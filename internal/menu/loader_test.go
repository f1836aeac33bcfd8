package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestTableFile writes a keyword table to a temporary file.
func createTestTableFile(t *testing.T, content string) string {
	filePath := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	return filePath
}

func TestFileLoader_Load_Success(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestTableFile(t, `
menus:
  - label: ארוחת בוקר
    keywords: [בוקר, breakfast]
`)

	table, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, Label("ארוחת בוקר"), table.Entries[0].Label)
	assert.Equal(t, []string{"בוקר", "breakfast"}, table.Entries[0].Keywords)
	assert.Equal(t, FallbackLabel, table.Fallback)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), "/nonexistent/menus.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read keyword table")
}

func TestFileLoader_Load_InvalidTable(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestTableFile(t, "menus: []\n")

	_, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestFileLoader_Load_ContextCancelled(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, createTestTableFile(t, "menus: []\n"))

	assert.ErrorIs(t, err, context.Canceled)
}
