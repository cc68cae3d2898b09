package list

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/agentsmd"
	"github.com/agentstation/agentsmd/cmd/application"
	"github.com/agentstation/agentsmd/pkg/docs"
)

func newTestApp(t *testing.T) *application.Mock {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "remote-setup.md"),
		[]byte("---\ntitle: Remote Setup\nparent: Guides\nnav_order: 2\n---\n# Setup\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-doc.md"), []byte("# A\nhello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("landing page"), 0644))

	return &application.Mock{
		AggregatorFunc: func(opts ...agentsmd.Option) (agentsmd.Client, error) {
			return agentsmd.New(append([]agentsmd.Option{agentsmd.WithSourceDir(dir)}, opts...)...)
		},
		OutputFormatFunc: func() string { return "json" },
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(newTestApp(t))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "Found 2 documents")

	// The mock app configures JSON output.
	var documents []docs.Document
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &documents))
	require.Len(t, documents, 2)
	assert.Equal(t, "a-doc.md", documents[0].Name)
	assert.Equal(t, "remote-setup.md", documents[1].Name)
	require.NotNil(t, documents[1].Meta)
	assert.Equal(t, "Guides", documents[1].Meta.Parent)
}

func TestNewCommandSearch(t *testing.T) {
	cmd := NewCommand(newTestApp(t))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--search", "setup"})

	require.NoError(t, cmd.Execute())

	var documents []docs.Document
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &documents))
	require.Len(t, documents, 1)
	assert.Equal(t, "remote-setup.md", documents[0].Name)
}

func TestNewCommandLimit(t *testing.T) {
	cmd := NewCommand(newTestApp(t))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--limit", "1"})

	require.NoError(t, cmd.Execute())

	var documents []docs.Document
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &documents))
	require.Len(t, documents, 1)
	assert.Equal(t, "a-doc.md", documents[0].Name)
}

func TestFilterDocuments(t *testing.T) {
	documents := []docs.Document{
		{Name: "a-doc.md", Title: "A Doc"},
		{Name: "remote-setup.md", Title: "Remote Setup"},
	}

	assert.Len(t, filterDocuments(documents, ""), 2)
	assert.Len(t, filterDocuments(documents, "SETUP"), 1)
	assert.Len(t, filterDocuments(documents, "doc"), 1)
	assert.Empty(t, filterDocuments(documents, "missing"))
}
