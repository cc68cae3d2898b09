package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/agentsmd/cmd/agentsmd/cmd/generate"
	"github.com/agentstation/agentsmd/cmd/agentsmd/cmd/list"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(generate.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the agentsmd CLI.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("agentsmd version %s\n", a.version)
			cmd.Printf("commit: %s\n", a.commit)
			cmd.Printf("built: %s\n", a.date)
			cmd.Printf("built by: %s\n", a.builtBy)
			cmd.Printf("go version: %s\n", runtime.Version())
			cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
