// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/agentsmd/pkg/constants"
	"github.com/agentstation/agentsmd/pkg/docs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// DocumentsToTableData converts documents to table format. The wide variant
// adds columns decoded from each document's frontmatter.
func DocumentsToTableData(documents []docs.Document, wide bool) Data {
	headers := []string{"Name", "Title", "Size", "Modified"}
	alignment := []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Parent", "Nav Order")
		alignment = append(alignment, AlignLeft, AlignRight)
	}

	rows := make([][]string, 0, len(documents))
	for _, doc := range documents {
		title := doc.Title
		if len(title) > constants.MaxTitleLength {
			title = title[:constants.MaxTitleLength-3] + "..."
		}

		row := []string{
			doc.Name,
			title,
			FormatSize(doc.Size),
			doc.ModifiedAt.Format("2006-01-02 15:04"),
		}

		if wide {
			parent := "-"
			navOrder := "-"
			if doc.Meta != nil {
				if doc.Meta.Parent != "" {
					parent = doc.Meta.Parent
				}
				if doc.Meta.NavOrder != 0 {
					navOrder = strconv.Itoa(doc.Meta.NavOrder)
				}
			}
			row = append(row, parent, navOrder)
		}

		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// FormatSize renders a byte count in a compact human-readable form.
func FormatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
