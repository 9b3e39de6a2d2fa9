// Package markup guesses what flavor of document the reformatter was handed.
// It uses go-enry for binary sniffing and extension lookup. The guess feeds
// CLI diagnostics only; the transform itself never consults it.
package markup

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// Kind labels the detected input flavor.
type Kind string

const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
)

// IsBinary reports whether content looks binary rather than textual.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}

// Detect guesses the markup flavor of the document at path.
func Detect(path string, content []byte) Kind {
	// Strategy 1: an unambiguous extension decides.
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		if kind, ok := kindFor(lang); ok {
			return kind
		}
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return KindText
	}

	// Strategy 2: content markers.
	if isHTML(trimmed) {
		return KindHTML
	}
	if isMarkdown(trimmed) {
		return KindMarkdown
	}

	return KindText
}

// kindFor maps an enry language name onto a markup kind.
func kindFor(lang string) (Kind, bool) {
	switch lang {
	case "HTML":
		return KindHTML, true
	case "Markdown":
		return KindMarkdown, true
	default:
		return KindText, false
	}
}

// isHTML checks for document-level HTML markers, then falls back to the
// share of lines that begin with a tag.
func isHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return true
	}

	return tagLineShare(trimmed) >= 0.5
}

// tagLineShare returns the fraction of non-blank lines starting with a tag.
func tagLineShare(content []byte) float64 {
	var total, tagged int

	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		total++
		if line[0] == '<' {
			tagged++
		}
	}

	if total == 0 {
		return 0
	}

	return float64(tagged) / float64(total)
}

// isMarkdown counts prose-structuring markers (headings, bullets, fences,
// quotes). Two or more suggest Markdown-flavored prose.
func isMarkdown(trimmed []byte) bool {
	markers := 0

	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if bytes.HasPrefix(line, []byte("# ")) ||
			bytes.HasPrefix(line, []byte("## ")) ||
			bytes.HasPrefix(line, []byte("- ")) ||
			bytes.HasPrefix(line, []byte("* ")) ||
			bytes.HasPrefix(line, []byte("> ")) ||
			bytes.HasPrefix(line, []byte("```")) {
			markers++
		}
	}

	return markers >= 2
}
