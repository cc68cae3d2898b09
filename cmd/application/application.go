// Package application provides the application interface for agentsmd
// commands.
//
// The Application interface defines the contract between the application
// layer and command implementations, enabling dependency injection and
// testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/agentstation/agentsmd/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Aggregator()
//	            if err != nil {
//	                return err
//	            }
//	            result, err := client.Generate(cmd.Context())
//	            // ... use result
//	            return err
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    AggregatorFunc: func(opts ...agentsmd.Option) (agentsmd.Client, error) {
//	        return agentsmd.New(opts...)
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/agentsmd"
)

// Application provides the application interface that commands need.
// The App struct from cmd/agentsmd/app automatically implements this
// interface, providing dependency injection for commands while maintaining
// testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Aggregator returns an aggregation client.
	// When called without options, returns the default instance built from
	// the application configuration (lazy-initialized, thread-safe, cached).
	// When called with options, the options are applied on top of the
	// configuration and a new instance is returned (no caching).
	//
	// Examples:
	//   client, err := app.Aggregator()              // default instance (cached)
	//   client, err := app.Aggregator(opt1, opt2)    // custom instance (new)
	Aggregator(opts ...agentsmd.Option) (agentsmd.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
