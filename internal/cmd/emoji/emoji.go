// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: completed aggregation runs, passing checks.
	Success = "✓"

	// Error represents failures or missing required input.
	// Used for: failed operations, unreadable files, missing directories.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: deprecation notices, optional warnings.
	Warning = "!"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
