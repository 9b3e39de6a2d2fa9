package reformat

import (
	"bytes"

	"github.com/zcorpan/reformahtml/pkg/tagset"
)

// scanner walks a document once, left to right, appending transformed output.
// All carried state lives here so a Transformer can serve concurrent calls.
type scanner struct {
	src        []byte
	out        []byte
	tables     *tagset.Tables
	reflowText func([]byte) []byte

	// rawText holds the names of currently open raw-text elements, and
	// noReformat the names of open elements carrying the no-reformat
	// attribute. Both are stacks to tolerate (invalid) nesting.
	rawText    []string
	noReformat []string

	// preservePending is set after a standalone comment or a br tag and
	// makes the next content text segment keep its leading whitespace.
	preservePending bool
}

// tagInfo is the parsed shape of a single <...> span.
type tagInfo struct {
	name        string
	end         bool
	selfClosing bool
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isHoriz(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == ':'
}

// isWordByte reports ASCII word characters, the boundary class for
// attribute-name matching.
func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isAllWS(b []byte) bool {
	for _, c := range b {
		if !isWS(c) {
			return false
		}
	}
	return true
}

// findTagEnd returns the index of the '>' closing the tag that opens at lt,
// skipping '>' inside single- or double-quoted attribute values. When no
// closing '>' exists the last index of src is returned so the caller always
// consumes the remainder.
func findTagEnd(src []byte, lt int) int {
	var quote byte
	for i := lt + 1; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return len(src) - 1
}

// parseTag extracts the lowercased name, end-tag flag, and self-closing flag
// from a raw tag span including its angle brackets. Tags without a
// recognizable name (doctypes, bare "<>") yield an empty name.
func parseTag(tag []byte) tagInfo {
	var info tagInfo
	i := 1
	if i < len(tag) && tag[i] == '/' {
		info.end = true
		i++
	}
	for i < len(tag) && isWS(tag[i]) {
		i++
	}
	start := i
	for i < len(tag) && isNameByte(tag[i]) {
		i++
	}
	if i > start {
		name := make([]byte, i-start)
		for k, c := range tag[start:i] {
			name[k] = lowerByte(c)
		}
		info.name = string(name)
	}
	if len(tag) >= 2 {
		inner := bytes.Trim(tag[1:len(tag)-1], " \t\r\n")
		info.selfClosing = bytes.HasSuffix(inner, []byte("/"))
	}
	return info
}

// hasAttrWord reports whether attr occurs in tag as a whole word, matched
// case-insensitively. It is a textual check: a match inside a quoted value
// still counts.
func hasAttrWord(tag []byte, attr string) bool {
	if attr == "" {
		return false
	}
	n := len(attr)
	for i := 0; i+n <= len(tag); i++ {
		if i > 0 && isWordByte(tag[i-1]) {
			continue
		}
		if i+n < len(tag) && isWordByte(tag[i+n]) {
			continue
		}
		match := true
		for k := 0; k < n; k++ {
			if lowerByte(tag[i+k]) != lowerByte(attr[k]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// lineStartBefore returns the index of the first byte of the line containing
// pos, treating pos itself as an exclusive boundary.
func lineStartBefore(src []byte, pos int) int {
	if idx := bytes.LastIndexByte(src[:pos], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

// prevLineEndsWithStructuralStart reports whether the nearest line of real
// content before boundary ends with a structural start tag. Lines that hold
// only spaces and tabs before the boundary are skipped so the check sees the
// tag that actually opened the current block.
func (s *scanner) prevLineEndsWithStructuralStart(boundary int) bool {
	for {
		lineStart := lineStartBefore(s.src, boundary)
		end := boundary
		for end > lineStart && isHoriz(s.src[end-1]) {
			end--
		}
		if end > lineStart {
			if s.src[end-1] != '>' {
				return false
			}
			lt := bytes.LastIndexByte(s.src[lineStart:end], '<')
			if lt < 0 {
				return false
			}
			info := parseTag(s.src[lineStart+lt : end])
			if info.name == "" || info.end {
				return false
			}
			return s.tables.StructuralStart.Has(info.name)
		}
		if lineStart == 0 {
			return false
		}
		boundary = lineStart - 1
	}
}

// countTrailingLFs counts the newlines in the trailing whitespace run of
// chunk, ignoring spaces and tabs after the last newline.
func countTrailingLFs(chunk []byte) int {
	i := len(chunk) - 1
	for i >= 0 && isHoriz(chunk[i]) {
		i--
	}
	n := 0
	for i >= 0 && chunk[i] == '\n' {
		n++
		i--
	}
	return n
}

// trimOneTrailingLF removes a single trailing newline plus any spaces and
// tabs after it. Without that newline the input is returned unchanged.
func trimOneTrailingLF(b []byte) []byte {
	i := len(b)
	for i > 0 && isHoriz(b[i-1]) {
		i--
	}
	if i > 0 && b[i-1] == '\n' {
		return b[:i-1]
	}
	return b
}
