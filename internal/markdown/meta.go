package markdown

import (
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/agentsmd/pkg/errors"
)

// Meta holds the conventional Jekyll-style keys found in documentation
// frontmatter. Unknown keys are ignored.
type Meta struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Parent      string `json:"parent,omitempty" yaml:"parent,omitempty"`
	GrandParent string `json:"grand_parent,omitempty" yaml:"grand_parent,omitempty"`
	NavOrder    int    `json:"nav_order,omitempty" yaml:"nav_order,omitempty"`
}

// DecodeMeta parses an extracted frontmatter block into its conventional
// keys. The input is the text between the two delimiter lines, as returned
// by SplitFrontmatter. An empty or whitespace-only block yields nil without
// error.
func DecodeMeta(meta string) (*Meta, error) {
	meta = strings.TrimSpace(meta)
	if meta == "" {
		return nil, nil
	}

	var m Meta
	if err := yaml.Unmarshal([]byte(meta), &m); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return &m, nil
}
