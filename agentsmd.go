// Package agentsmd aggregates a directory of markdown documentation files
// into a single AGENTS.md file so coding agents can consume a repository's
// docs as one flat file.
//
// Each source file becomes one section of the aggregate: its frontmatter is
// stripped, its headings are demoted one level, and a section title is
// derived from the filename. Sections appear in ascending lexicographic
// filename order, and the reserved index file is never included. Rerunning
// over unchanged inputs produces byte-identical output.
//
// Example usage:
//
//	// Create a client with default settings
//	client, err := agentsmd.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Aggregate into the configured output file
//	result, err := client.Generate(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
//	// Or configure with custom options
//	client, err = agentsmd.New(
//	    agentsmd.WithSourceDir("docs/code-howtos"),
//	    agentsmd.WithOutputFile("AGENTS.md"),
//	    agentsmd.WithTOC(true),
//	)
package agentsmd

import (
	"context"
	"io"

	"github.com/agentstation/agentsmd/pkg/docs"
)

// Client aggregates markdown documents into a single output file.
type Client interface {

	// Generate runs the aggregation against the configured output file,
	// truncating any previous content.
	Generate(ctx context.Context) (*docs.Result, error)

	// Documents lists the source documents that would be aggregated, in
	// output order, without writing anything.
	Documents(ctx context.Context) ([]docs.Document, error)

	// Write aggregates to an arbitrary writer instead of the output file.
	Write(ctx context.Context, w io.Writer) (*docs.Result, error)
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	return newClient(opts...)
}
