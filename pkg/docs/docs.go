// Package docs defines the document model shared by the aggregation engine
// and the CLI: the source documents selected for a run and the summary of a
// completed run.
package docs

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/agentsmd/internal/markdown"
)

// Document describes one markdown source file eligible for aggregation.
type Document struct {
	Name       string         `json:"name" yaml:"name"`
	Path       string         `json:"path" yaml:"path"`
	Title      string         `json:"title" yaml:"title"`
	Size       int64          `json:"size" yaml:"size"`
	ModifiedAt utc.Time       `json:"modified_at" yaml:"modified_at"`
	Meta       *markdown.Meta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Result summarizes a completed aggregation run.
type Result struct {
	Documents int           `json:"documents" yaml:"documents"`
	Bytes     int64         `json:"bytes" yaml:"bytes"`
	Output    string        `json:"output,omitempty" yaml:"output,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Summary returns a one-line human-readable description of the run.
func (r *Result) Summary() string {
	if r.Output != "" {
		return fmt.Sprintf("aggregated %d documents into %s (%d bytes)", r.Documents, r.Output, r.Bytes)
	}
	return fmt.Sprintf("aggregated %d documents (%d bytes)", r.Documents, r.Bytes)
}
