package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-doc.md"), []byte("# A\nhello"), 0644))

	logger := zerolog.Nop()
	app, err := New("1.2.3", "abc123", "2026-01-02", "test",
		WithConfig(&Config{
			SourceDir:  dir,
			OutputFile: filepath.Join(t.TempDir(), "AGENTS.md"),
			IndexFile:  "index.md",
		}),
		WithLogger(&logger),
	)
	require.NoError(t, err)
	return app
}

func TestNew(t *testing.T) {
	app, err := New("1.2.3", "abc123", "2026-01-02", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-02", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Config())
	assert.NotNil(t, app.Logger())
}

func TestAggregatorCaching(t *testing.T) {
	app := newTestApp(t)

	first, err := app.Aggregator()
	require.NoError(t, err)
	second, err := app.Aggregator()
	require.NoError(t, err)

	// The default instance is created once and reused.
	assert.Same(t, first, second)
}

func TestAggregatorGenerate(t *testing.T) {
	app := newTestApp(t)

	client, err := app.Aggregator()
	require.NoError(t, err)

	result, err := client.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Documents)

	got, err := os.ReadFile(app.Config().OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "## A Doc\n\n## A\nhello\n\n", string(got))
}

func TestOutputFormat(t *testing.T) {
	app := newTestApp(t)
	app.Config().Format = "yaml"
	assert.Equal(t, "yaml", app.OutputFormat())
}

func TestShutdown(t *testing.T) {
	app := newTestApp(t)
	assert.NoError(t, app.Shutdown(context.Background()))
}
