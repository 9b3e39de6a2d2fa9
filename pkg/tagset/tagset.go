// Package tagset defines the element classification tables that drive the
// reformatter's boundary decisions. These are pure data structures with no
// dependencies on the scanner; callers may derive modified tables from the
// defaults and pass them to the transformer.
package tagset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table validation.
var (
	ErrMissingSet      = errors.New("classification set is nil")
	ErrEmptyName       = errors.New("empty name")
	ErrNotLowercase    = errors.New("name must be lowercase")
	ErrInvalidAttrName = errors.New("attribute name contains markup delimiters or whitespace")
)

// Set is a collection of lowercase tag names.
type Set map[string]struct{}

// NewSet builds a Set from the given names, lowercasing each.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[strings.ToLower(n)] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. The empty name is never a member,
// so unnamed tags (comments, doctypes, malformed spans) never classify.
func (s Set) Has(name string) bool {
	if name == "" {
		return false
	}
	_, ok := s[name]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for n := range s {
		c[n] = struct{}{}
	}
	return c
}

// With returns a copy of the set with the given names added.
func (s Set) With(names ...string) Set {
	c := s.Clone()
	for _, n := range names {
		c[strings.ToLower(n)] = struct{}{}
	}
	return c
}

// Without returns a copy of the set with the given names removed.
func (s Set) Without(names ...string) Set {
	c := s.Clone()
	for _, n := range names {
		delete(c, strings.ToLower(n))
	}
	return c
}

// Names returns the member names in unspecified order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

// Tables bundles every classification table the transformer consults.
type Tables struct {
	// RawText lists elements whose content is copied verbatim until the
	// matching end tag (preformatted text, scripts, styles).
	RawText Set

	// Inline lists elements that may begin a line without forcing a new
	// block; a lone line wrap before one collapses to a space.
	Inline Set

	// StructuralStart lists start-tag names that denote a block boundary
	// and therefore preserve surrounding blank lines and indentation.
	StructuralStart Set

	// StructuralEnd lists end-tag names with the same preserving effect.
	StructuralEnd Set

	// Void lists elements that never take content; they are ineligible to
	// open a no-reformat subtree.
	Void Set

	// NoReformatAttr is the attribute whose presence on a start tag marks
	// the whole subtree as do-not-touch.
	NoReformatAttr string
}

// Default returns the built-in tables. The returned value owns fresh sets,
// so a caller may mutate it without affecting other transformers.
func Default() Tables {
	return Tables{
		RawText: NewSet(
			"pre", "textarea", "script", "style", "xmp", "wpt",
		),
		Inline: NewSet(
			"a", "abbr", "b", "bdi", "bdo", "cite", "code", "data", "del",
			"dfn", "em", "i", "ins", "kbd", "mark", "q", "ref", "s", "samp",
			"small", "span", "strong", "sub", "sup", "time", "u", "var",
		),
		StructuralStart: NewSet(
			"address", "article", "aside", "blockquote", "details", "dialog",
			"div", "dl", "dt", "dd", "fieldset", "figcaption", "figure",
			"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
			"hgroup", "hr", "main", "menu", "nav", "ol", "p", "pre", "search",
			"section", "table", "thead", "tbody", "tfoot", "tr", "td", "th",
			"caption", "colgroup", "ul", "li", "optgroup", "option", "ruby",
			"rt", "rp", "foreignobject",
		),
		StructuralEnd: NewSet(
			"dl", "ol", "ul", "table", "thead", "tbody", "tfoot", "tr", "td",
			"th", "caption", "colgroup", "ruby", "optgroup", "select", "p",
		),
		Void: NewSet(
			"area", "base", "br", "col", "embed", "hr", "img", "input",
			"link", "meta", "param", "source", "track", "wbr",
		),
		NoReformatAttr: "data-noreformat",
	}
}

// Clone returns a deep copy of the tables.
func (t Tables) Clone() Tables {
	return Tables{
		RawText:         t.RawText.Clone(),
		Inline:          t.Inline.Clone(),
		StructuralStart: t.StructuralStart.Clone(),
		StructuralEnd:   t.StructuralEnd.Clone(),
		Void:            t.Void.Clone(),
		NoReformatAttr:  t.NoReformatAttr,
	}
}

// Validate checks that the tables are usable: every set present, every name
// lowercase and non-empty, and a plausible no-reformat attribute name.
func (t Tables) Validate() error {
	sets := []struct {
		name string
		set  Set
	}{
		{"raw-text", t.RawText},
		{"inline", t.Inline},
		{"structural-start", t.StructuralStart},
		{"structural-end", t.StructuralEnd},
		{"void", t.Void},
	}

	for _, s := range sets {
		if s.set == nil {
			return fmt.Errorf("%s set: %w", s.name, ErrMissingSet)
		}
		for n := range s.set {
			if n == "" {
				return fmt.Errorf("%s set: %w", s.name, ErrEmptyName)
			}
			if n != strings.ToLower(n) {
				return fmt.Errorf("%s set: %q: %w", s.name, n, ErrNotLowercase)
			}
		}
	}

	if t.NoReformatAttr == "" {
		return fmt.Errorf("no-reformat attribute: %w", ErrEmptyName)
	}
	for _, r := range t.NoReformatAttr {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '"' || r == '\'' || r == '<' || r == '>' || r == '=' {
			return fmt.Errorf("no-reformat attribute %q: %w", t.NoReformatAttr, ErrInvalidAttrName)
		}
	}

	return nil
}
