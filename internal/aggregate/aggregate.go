// Package aggregate implements the document aggregation engine. It scans a
// source directory for markdown files, strips frontmatter, demotes heading
// levels by one, and concatenates the results into a single aggregate file
// with section titles derived from filenames.
//
// The engine is fully sequential: each file is read to completion before
// the next begins, and the output handle is held for the whole run.
// Rerunning over unchanged inputs produces byte-identical output.
package aggregate

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/agentsmd/internal/markdown"
	"github.com/agentstation/agentsmd/pkg/constants"
	"github.com/agentstation/agentsmd/pkg/docs"
	"github.com/agentstation/agentsmd/pkg/errors"
	"github.com/agentstation/agentsmd/pkg/logging"
	"github.com/agentstation/utc"
)

const (
	sectionHeadingPrefix = "## "
	sectionSeparator     = "\n\n"
	tocTitle             = "Table of Contents"
)

// Aggregator concatenates markdown documents into a single aggregate file.
type Aggregator struct {
	sourceDir  string
	outputFile string
	indexFile  string
	extension  string
	toc        bool
}

// New creates a new Aggregator with the given options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		sourceDir:  constants.DefaultSourceDir,
		outputFile: constants.DefaultOutputFile,
		indexFile:  constants.IndexFileName,
		extension:  constants.MarkdownExtension,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// names returns the sorted filenames eligible for aggregation. Entries are
// filtered by name only; a directory named like a markdown file surfaces
// its read error when the file is opened.
func (a *Aggregator) names() ([]string, error) {
	entries, err := os.ReadDir(a.sourceDir)
	if err != nil {
		return nil, errors.WrapIO("read", a.sourceDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, a.extension) || name == a.indexFile {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Scan lists the documents that would be aggregated, in output order,
// together with their metadata. Frontmatter that fails to decode leaves
// Meta nil rather than erroring, because the aggregation path treats the
// same bytes as opaque pass-through content.
func (a *Aggregator) Scan(ctx context.Context) ([]docs.Document, error) {
	names, err := a.names()
	if err != nil {
		return nil, err
	}

	documents := make([]docs.Document, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(a.sourceDir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.WrapIO("stat", path, err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}

		doc := docs.Document{
			Name:       name,
			Path:       path,
			Title:      markdown.Title(name),
			Size:       info.Size(),
			ModifiedAt: utc.New(info.ModTime()),
		}
		if meta, _ := markdown.SplitFrontmatter(string(content)); meta != "" {
			if m, err := markdown.DecodeMeta(meta); err == nil {
				doc.Meta = m
			}
		}

		documents = append(documents, doc)
	}

	return documents, nil
}

// Write aggregates the source documents to w. Each file is read to
// completion before the next begins, and sections are written incrementally
// in sorted filename order. Cancellation is checked between files only, so
// a section is never torn mid-write.
func (a *Aggregator) Write(ctx context.Context, w io.Writer) (*docs.Result, error) {
	start := time.Now()

	names, err := a.names()
	if err != nil {
		return nil, err
	}

	cw := &countingWriter{w: w}

	if a.toc && len(names) > 0 {
		if err := writeTOC(cw, names); err != nil {
			return nil, errors.WrapIO("write", "", err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(a.sourceDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}

		body := markdown.StripFrontmatter(string(raw))
		section := sectionHeadingPrefix + markdown.Title(name) + sectionSeparator +
			markdown.DemoteHeadings(body) + sectionSeparator
		if _, err := io.WriteString(cw, section); err != nil {
			return nil, errors.WrapIO("write", "", err)
		}

		logging.Debug().
			Str("file", name).
			Int("bytes", len(section)).
			Msg("Aggregated document")
	}

	return &docs.Result{
		Documents: len(names),
		Bytes:     cw.n,
		Duration:  time.Since(start),
	}, nil
}

// Run aggregates into the configured output file, truncating any previous
// content. The handle is held for the whole run and closed on completion or
// failure; a close error on an otherwise successful run is reported. Parent
// directories are never created implicitly.
func (a *Aggregator) Run(ctx context.Context) (result *docs.Result, err error) {
	logging.Info().
		Str("source_dir", a.sourceDir).
		Str("output_file", a.outputFile).
		Msg("Aggregating documents")

	out, err := os.Create(a.outputFile)
	if err != nil {
		return nil, errors.WrapIO("create", a.outputFile, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			result = nil
			err = errors.WrapIO("close", a.outputFile, cerr)
		}
	}()

	result, err = a.Write(ctx, out)
	if err != nil {
		return nil, err
	}
	result.Output = a.outputFile

	logging.Info().
		Int("documents", result.Documents).
		Int64("bytes", result.Bytes).
		Dur("duration", result.Duration).
		Msg("Aggregation complete")

	return result, nil
}

// writeTOC emits a linked table of contents ahead of the first section.
func writeTOC(w io.Writer, names []string) error {
	items := make([]string, 0, len(names))
	for _, name := range names {
		title := markdown.Title(name)
		items = append(items, md.Link(title, "#"+markdown.Anchor(title)))
	}

	return md.NewMarkdown(w).
		H2(tocTitle).
		BulletList(items...).
		LF().
		Build()
}

// countingWriter tracks the number of bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
