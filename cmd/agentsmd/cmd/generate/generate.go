// Package generate provides the command that writes the aggregate file.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/agentsmd"
	"github.com/agentstation/agentsmd/cmd/application"
	"github.com/agentstation/agentsmd/internal/cmd/emoji"
	"github.com/agentstation/agentsmd/internal/cmd/globals"
)

// NewCommand creates the generate command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		sourceDir  string
		outputFile string
		indexFile  string
		toc        bool
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Aggregate markdown documents into the output file",
		Long: `Generate scans the source directory for markdown files, strips their
frontmatter, demotes their headings one level, and concatenates them into a
single aggregate file in sorted filename order. The reserved index file is
excluded, and any previous output is overwritten.

This is the explicit form of the bare "agentsmd" invocation.`,
		Example: `  agentsmd generate
  agentsmd generate --source docs/code-howtos --output AGENTS.md
  agentsmd generate --toc
  agentsmd generate --stdout > combined.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []agentsmd.Option
			if sourceDir != "" {
				opts = append(opts, agentsmd.WithSourceDir(sourceDir))
			}
			if outputFile != "" {
				opts = append(opts, agentsmd.WithOutputFile(outputFile))
			}
			if indexFile != "" {
				opts = append(opts, agentsmd.WithIndexFile(indexFile))
			}
			if toc {
				opts = append(opts, agentsmd.WithTOC(true))
			}

			client, err := app.Aggregator(opts...)
			if err != nil {
				return err
			}

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if toStdout {
				// The aggregate goes to stdout, so the summary moves to stderr.
				result, err := client.Write(cmd.Context(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !flags.Quiet {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", emoji.Success, result.Summary())
				}
				return nil
			}

			result, err := client.Generate(cmd.Context())
			if err != nil {
				return err
			}
			if !flags.Quiet {
				cmd.Printf("%s Aggregated %d documents into %s (%d bytes)\n",
					emoji.Success, result.Documents, result.Output, result.Bytes)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceDir, "source", "s", "", "source directory to scan for markdown files")
	cmd.Flags().StringVar(&outputFile, "output", "", "aggregate file to write")
	cmd.Flags().StringVar(&indexFile, "index", "", "reserved index filename to exclude")
	cmd.Flags().BoolVar(&toc, "toc", false, "prepend a table of contents")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the aggregate to stdout instead of the output file")

	return cmd
}
