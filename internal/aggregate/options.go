package aggregate

// Option is a functional option for configuring the Aggregator.
type Option func(*Aggregator)

// WithSourceDir sets the directory scanned for markdown documents.
func WithSourceDir(dir string) Option {
	return func(a *Aggregator) {
		a.sourceDir = dir
	}
}

// WithOutputFile sets the aggregate file written by Run.
func WithOutputFile(path string) Option {
	return func(a *Aggregator) {
		a.outputFile = path
	}
}

// WithIndexFile sets the reserved filename excluded from aggregation.
func WithIndexFile(name string) Option {
	return func(a *Aggregator) {
		a.indexFile = name
	}
}

// WithExtension sets the file extension selecting source documents.
func WithExtension(ext string) Option {
	return func(a *Aggregator) {
		a.extension = ext
	}
}

// WithTOC enables a table of contents ahead of the first section.
func WithTOC(enabled bool) Option {
	return func(a *Aggregator) {
		a.toc = enabled
	}
}
