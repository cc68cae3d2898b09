package agentsmd

import (
	"context"
	"io"

	"github.com/agentstation/agentsmd/internal/aggregate"
	"github.com/agentstation/agentsmd/pkg/docs"
	"github.com/agentstation/agentsmd/pkg/errors"
	"github.com/agentstation/agentsmd/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// aggregator performs the scan and write work
	aggregator *aggregate.Aggregator
}

// newClient creates the internal client from the given options.
func newClient(opts ...Option) (*client, error) {
	o := defaults().apply(opts...)

	if o.sourceDir == "" {
		return nil, errors.NewValidationError("source dir", o.sourceDir, "must not be empty")
	}
	if o.outputFile == "" {
		return nil, errors.NewValidationError("output file", o.outputFile, "must not be empty")
	}

	logging.Debug().
		Str("source_dir", o.sourceDir).
		Str("output_file", o.outputFile).
		Str("index_file", o.indexFile).
		Bool("toc", o.toc).
		Msg("Creating aggregation client")

	return &client{
		options: o,
		aggregator: aggregate.New(
			aggregate.WithSourceDir(o.sourceDir),
			aggregate.WithOutputFile(o.outputFile),
			aggregate.WithIndexFile(o.indexFile),
			aggregate.WithTOC(o.toc),
		),
	}, nil
}

// Generate runs the aggregation against the configured output file.
func (c *client) Generate(ctx context.Context) (*docs.Result, error) {
	return c.aggregator.Run(ctx)
}

// Documents lists the source documents that would be aggregated.
func (c *client) Documents(ctx context.Context) ([]docs.Document, error) {
	return c.aggregator.Scan(ctx)
}

// Write aggregates to w instead of the configured output file.
func (c *client) Write(ctx context.Context, w io.Writer) (*docs.Result, error) {
	return c.aggregator.Write(ctx, w)
}
