// Package constants provides shared constants used throughout the agentsmd codebase.
// This includes default paths, file permissions, timeouts, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Default path constants define where the aggregator reads from and writes to
// when no configuration overrides them.
const (
	// DefaultSourceDir is the directory scanned for markdown documents
	DefaultSourceDir = "docs/code-howtos"

	// DefaultOutputFile is the aggregate file written by a run
	DefaultOutputFile = "AGENTS.md"

	// IndexFileName is the reserved filename excluded from aggregation
	IndexFileName = "index.md"

	// MarkdownExtension is the file extension selecting source documents
	MarkdownExtension = ".md"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout is how long graceful shutdown may take before exit
	ShutdownTimeout = 5 * time.Second
)

// Buffer and limit constants
const (
	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// MaxTitleLength is the maximum rendered length for document titles in
	// tabular output before truncation
	MaxTitleLength = 60
)
