// Package reformat normalizes whitespace in markup documents that mix
// HTML-like tags, HTML comments, and Bikeshed/Markdown-flavored prose.
//
// The transform collapses incidental line wraps inside prose and inside tag
// attribute lists into single spaces while preserving intentional structure:
// blank lines, indentation around block-level tags, raw-text elements such as
// pre and script, fenced code blocks, and subtrees marked with a no-reformat
// attribute. It is not an HTML parser: it never builds a tree, never decodes
// entities, and degrades gracefully on malformed markup instead of failing.
//
// A Transformer is immutable after New and safe for concurrent use; each
// Transform call owns all of its state.
package reformat

import (
	"github.com/zcorpan/reformahtml/pkg/reflow"
	"github.com/zcorpan/reformahtml/pkg/tagset"
)

// Transformer applies the whitespace normalization pass. The zero value is
// not usable; construct with New.
type Transformer struct {
	tables   tagset.Tables
	markdown bool
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithTables replaces the element classification tables. The transformer
// keeps a reference to the given tables; callers must not mutate them after
// handing them over.
func WithTables(tables tagset.Tables) Option {
	return func(t *Transformer) {
		t.tables = tables
	}
}

// WithMarkdown selects the prose reflow engine. When enabled (the default),
// text segments go through the Markdown-aware engine; when disabled, every
// line wrap in prose joins with a single space regardless of Markdown
// structure.
func WithMarkdown(enabled bool) Option {
	return func(t *Transformer) {
		t.markdown = enabled
	}
}

// New returns a Transformer with the default classification tables and the
// Markdown-aware reflow engine.
func New(opts ...Option) *Transformer {
	t := &Transformer{
		tables:   tagset.Default(),
		markdown: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform rewrites src and returns the normalized document. It is total:
// any byte sequence produces output covering the entire input, with
// malformed trailing constructs consumed best-effort. src is never modified.
func (t *Transformer) Transform(src []byte) []byte {
	s := &scanner{
		src:    src,
		out:    make([]byte, 0, len(src)+16),
		tables: &t.tables,
	}
	if t.markdown {
		s.reflowText = reflow.Markdown
	} else {
		s.reflowText = reflow.Plain
	}
	s.run()
	return s.out
}

// TransformString is Transform for string callers.
func (t *Transformer) TransformString(src string) string {
	return string(t.Transform([]byte(src)))
}

// Transform rewrites src using the default tables and Markdown reflow.
func Transform(src []byte) []byte {
	return New().Transform(src)
}

// TransformString is Transform for string callers.
func TransformString(src string) string {
	return New().TransformString(src)
}
