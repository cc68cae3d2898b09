// Package markdown provides the text transformations applied to source
// documents during aggregation: frontmatter handling, heading demotion,
// filename-derived titles, and link anchors.
package markdown

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Frontmatter and heading markers
	frontmatterDelim = "---"
	headingChar      = "#"

	// String transformations
	dashChar  = "-"
	spaceChar = " "
	newline   = "\n"
)

// SplitFrontmatter separates a leading frontmatter block from the document
// body. meta is the text between the first two delimiter occurrences and is
// empty when nothing was stripped; body is what aggregation consumes.
//
// The content is split on every occurrence of the raw delimiter substring.
// Later occurrences in body text are rejoined verbatim, so a horizontal
// rule after the block survives untouched. Absent or malformed frontmatter
// is never an error: the content passes through unchanged.
func SplitFrontmatter(content string) (meta, body string) {
	if !strings.HasPrefix(content, frontmatterDelim) {
		return "", content
	}

	parts := strings.Split(content, frontmatterDelim)
	if len(parts) <= 2 {
		return "", content
	}

	meta = parts[1]
	body = strings.Join(parts[2:], frontmatterDelim)

	// Drop the newline that terminated the closing delimiter line so the
	// body starts flush.
	body = strings.TrimPrefix(body, newline)

	return meta, body
}

// StripFrontmatter returns the document body with any leading frontmatter
// block removed.
func StripFrontmatter(content string) string {
	_, body := SplitFrontmatter(content)
	return body
}

// DemoteHeadings increases the nesting level of every markdown heading by
// exactly one. Lines that do not begin with '#' are copied unchanged, and
// no trailing newline is added or removed.
func DemoteHeadings(content string) string {
	lines := strings.Split(content, newline)
	for i, line := range lines {
		if strings.HasPrefix(line, headingChar) {
			lines[i] = headingChar + line
		}
	}
	return strings.Join(lines, newline)
}

// Title derives a section title from a source filename: the extension is
// removed, hyphens become spaces, and each word's first letter is
// capitalized. "my-doc-name.md" becomes "My Doc Name".
func Title(filename string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	title = strings.ReplaceAll(title, dashChar, spaceChar)
	return cases.Title(language.English).String(title)
}

// Anchor returns the GitHub-style link fragment for a section title:
// lowercased, spaces replaced with hyphens, punctuation removed.
func Anchor(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteString(dashChar)
		case r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
