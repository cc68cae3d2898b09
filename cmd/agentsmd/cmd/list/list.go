// Package list provides the command for listing aggregation source documents.
package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/agentsmd/cmd/application"
	"github.com/agentstation/agentsmd/internal/cmd/globals"
	"github.com/agentstation/agentsmd/internal/cmd/output"
	"github.com/agentstation/agentsmd/internal/cmd/table"
	"github.com/agentstation/agentsmd/pkg/docs"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the documents that would be aggregated",
		Long: `List shows the source documents selected for aggregation, in output
order, without writing the aggregate file. The wide format adds columns
decoded from each document's frontmatter.`,
		Example: `  agentsmd list
  agentsmd list --search setup
  agentsmd list -o wide
  agentsmd list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docFlags := globals.ParseDocs(cmd)

			client, err := app.Aggregator()
			if err != nil {
				return err
			}

			documents, err := client.Documents(cmd.Context())
			if err != nil {
				return err
			}

			documents = filterDocuments(documents, docFlags.Search)
			if docFlags.Limit > 0 && len(documents) > docFlags.Limit {
				documents = documents[:docFlags.Limit]
			}

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}
			explicit := flags.Format
			if explicit == "" {
				explicit = app.OutputFormat()
			}
			format := output.DetectFormat(explicit)
			formatter := output.NewFormatter(format)

			// Transform to output format
			var outputData any
			switch format {
			case output.FormatTable, output.FormatWide:
				tableData := table.DocumentsToTableData(documents, format == output.FormatWide)
				outputData = output.Data{
					Headers:         tableData.Headers,
					Rows:            tableData.Rows,
					ColumnAlignment: tableData.ColumnAlignment,
				}
			default:
				outputData = documents
			}

			if !flags.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Found %d documents\n", len(documents))
			}

			return formatter.Format(cmd.OutOrStdout(), outputData)
		},
	}

	globals.AddDocFlags(cmd)

	return cmd
}

// filterDocuments keeps documents whose name or title contains the search
// term, case-insensitively.
func filterDocuments(documents []docs.Document, search string) []docs.Document {
	if search == "" {
		return documents
	}

	search = strings.ToLower(search)
	filtered := make([]docs.Document, 0, len(documents))
	for _, doc := range documents {
		if strings.Contains(strings.ToLower(doc.Name), search) ||
			strings.Contains(strings.ToLower(doc.Title), search) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}
