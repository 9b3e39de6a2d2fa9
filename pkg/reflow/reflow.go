// Package reflow joins incidentally wrapped prose lines into single logical
// lines while leaving every structural line untouched. The Markdown engine
// understands just enough Bikeshed-flavored Markdown to know where a
// paragraph ends: blank lines, fenced code blocks, ATX and Setext headings,
// definition terms and descriptions, blockquotes, horizontal rules, and
// bullet/ordered list items (whose own wrapped continuations it absorbs).
// It never converts markup, only whitespace.
package reflow

import "bytes"

// Markdown reflows a prose segment line by line.
//
// Consecutive plain lines accumulate into a paragraph and are joined with
// single spaces: the first line keeps its leading run but loses trailing
// spaces and tabs, each later line loses its leading spaces and tabs. Blank
// lines, fences and their contents, and structural lines pass through
// verbatim and flush the pending paragraph first. A paragraph flushed at end
// of input carries no trailing newline; the caller decides what follows it.
func Markdown(text []byte) []byte {
	if len(text) == 0 {
		return text
	}

	out := make([]byte, 0, len(text))
	var para [][]byte

	flush := func(withNewline bool) {
		if len(para) == 0 {
			return
		}
		if len(para) == 1 {
			out = append(out, para[0]...)
		} else {
			out = append(out, trimTrailingHoriz(para[0])...)
			for _, part := range para[1:] {
				out = append(out, ' ')
				out = append(out, trimLeadingHoriz(part)...)
			}
		}
		if withNewline {
			out = append(out, '\n')
		}
		para = para[:0]
	}

	lines := splitLines(text)
	inFence := false
	var fenceCh byte
	fenceMin := 0
	prevParagraph := false

	for i := 0; i < len(lines); {
		raw := lines[i]
		line, hadNL := chomp(raw)
		stripped := bytes.TrimSpace(line)

		if inFence {
			if fenceClose(line, fenceCh, fenceMin) {
				flush(false)
				inFence = false
			}
			out = append(out, raw...)
			i++
			prevParagraph = false
			continue
		}

		if len(stripped) == 0 {
			flush(true)
			out = append(out, raw...)
			i++
			prevParagraph = false
			continue
		}

		if ch, n, ok := fenceOpen(line); ok {
			flush(false)
			fenceCh, fenceMin, inFence = ch, n, true
			out = append(out, raw...)
			i++
			prevParagraph = false
			continue
		}

		if isATXHeading(line) || isDefTerm(line) || isDefDesc(line) || isBlockquote(line) ||
			isRuleLine(stripped) || (isSetextUnderline(stripped) && prevParagraph) {
			flush(true)
			out = append(out, raw...)
			i++
			prevParagraph = false
			continue
		}

		if prefix, first, ok := parseListItem(line); ok {
			flush(true)
			out = append(out, prefix...)
			out = append(out, trimTrailingHoriz(first)...)

			lastHadNL := hadNL
			j := i + 1
			for j < len(lines) {
				nline, nHadNL := chomp(lines[j])
				nstripped := bytes.TrimSpace(nline)
				if len(nstripped) == 0 || stopsListContinuation(nline, nstripped) {
					break
				}
				out = append(out, ' ')
				out = append(out, trimLeadingHoriz(nline)...)
				lastHadNL = nHadNL
				j++
			}
			if lastHadNL {
				out = append(out, '\n')
			}
			i = j
			prevParagraph = false
			continue
		}

		para = append(para, line)
		prevParagraph = true
		i++
	}

	flush(false)
	return out
}

// splitLines splits text after every LF, keeping the LF with its line. A
// final unterminated line is returned as-is. Lone CRs are ordinary content.
func splitLines(text []byte) [][]byte {
	lines := make([][]byte, 0, bytes.Count(text, []byte{'\n'})+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// chomp removes one trailing LF, reporting whether the line had one.
func chomp(raw []byte) ([]byte, bool) {
	if n := len(raw); n > 0 && raw[n-1] == '\n' {
		return raw[:n-1], true
	}
	return raw, false
}

func trimLeadingHoriz(b []byte) []byte {
	return bytes.TrimLeft(b, " \t")
}

func trimTrailingHoriz(b []byte) []byte {
	return bytes.TrimRight(b, " \t")
}
