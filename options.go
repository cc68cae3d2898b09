package agentsmd

import "github.com/agentstation/agentsmd/pkg/constants"

// options are the configured options for a client.
type options struct {
	sourceDir  string
	outputFile string
	indexFile  string
	toc        bool
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		sourceDir:  constants.DefaultSourceDir,
		outputFile: constants.DefaultOutputFile,
		indexFile:  constants.IndexFileName,
	}
}

// apply applies the given options and returns the result.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a function that configures a client instance.
type Option func(*options)

// WithSourceDir sets the directory scanned for markdown documents.
func WithSourceDir(dir string) Option {
	return func(o *options) {
		o.sourceDir = dir
	}
}

// WithOutputFile sets the aggregate file written by Generate.
func WithOutputFile(path string) Option {
	return func(o *options) {
		o.outputFile = path
	}
}

// WithIndexFile sets the reserved filename excluded from aggregation.
func WithIndexFile(name string) Option {
	return func(o *options) {
		o.indexFile = name
	}
}

// WithTOC enables a table of contents ahead of the first section.
func WithTOC(enabled bool) Option {
	return func(o *options) {
		o.toc = enabled
	}
}
