package reflow

// Line classifiers. Each predicate inspects a single line (without its
// trailing LF) and decides one Markdown line type; the engine composes them
// in a fixed priority order. They are deliberately looser than CommonMark:
// blockquotes need no space after the marker, Setext underlines may mix
// - and =, and a horizontal rule ignores interior spaces.

func isHoriz(b byte) bool {
	return b == ' ' || b == '\t'
}

// skipHoriz returns the index of the first byte at or after i that is not a
// space or tab.
func skipHoriz(line []byte, i int) int {
	for i < len(line) && isHoriz(line[i]) {
		i++
	}
	return i
}

// fenceOpen reports whether the line opens a fenced code block: optional
// indentation, then three or more backticks or tildes. It returns the fence
// character and the run length; anything may follow the run (info string).
func fenceOpen(line []byte) (ch byte, length int, ok bool) {
	i := skipHoriz(line, 0)
	if i >= len(line) || (line[i] != '`' && line[i] != '~') {
		return 0, 0, false
	}
	ch = line[i]
	j := i
	for j < len(line) && line[j] == ch {
		j++
	}
	if j-i < 3 {
		return 0, 0, false
	}
	return ch, j - i, true
}

// fenceClose reports whether the line closes an open fence: optional
// indentation, a run of at least minLen fence characters, then only spaces
// or tabs to end of line.
func fenceClose(line []byte, ch byte, minLen int) bool {
	i := skipHoriz(line, 0)
	j := i
	for j < len(line) && line[j] == ch {
		j++
	}
	if j-i < minLen {
		return false
	}
	return skipHoriz(line, j) == len(line)
}

// isATXHeading: one to six # characters after optional indentation, followed
// by at least one space or tab. Seven or more # is not a heading.
func isATXHeading(line []byte) bool {
	i := skipHoriz(line, 0)
	count := 0
	for i < len(line) && line[i] == '#' {
		i++
		count++
	}
	if count < 1 || count > 6 {
		return false
	}
	return i < len(line) && isHoriz(line[i])
}

// isDefTerm: a Bikeshed definition term line, `:` followed by whitespace.
func isDefTerm(line []byte) bool {
	i := skipHoriz(line, 0)
	if i >= len(line) || line[i] != ':' {
		return false
	}
	return i+1 < len(line) && isHoriz(line[i+1])
}

// isDefDesc: a Bikeshed definition description line, `::` followed by
// whitespace.
func isDefDesc(line []byte) bool {
	i := skipHoriz(line, 0)
	if i+1 >= len(line) || line[i] != ':' || line[i+1] != ':' {
		return false
	}
	return i+2 < len(line) && isHoriz(line[i+2])
}

// isBlockquote: the first non-indent character is >.
func isBlockquote(line []byte) bool {
	i := skipHoriz(line, 0)
	return i < len(line) && line[i] == '>'
}

// isRuleLine reports a horizontal rule: three or more of the same character
// from *, -, _ once interior spaces and tabs are ignored. Takes the line
// already trimmed of surrounding whitespace.
func isRuleLine(stripped []byte) bool {
	var ch byte
	count := 0
	for _, b := range stripped {
		if isHoriz(b) {
			continue
		}
		if count == 0 {
			if b != '*' && b != '-' && b != '_' {
				return false
			}
			ch = b
		} else if b != ch {
			return false
		}
		count++
	}
	return count >= 3
}

// isSetextUnderline reports a Setext heading underline: two or more
// characters drawn from - and = once interior spaces and tabs are ignored.
// Takes the line already trimmed of surrounding whitespace. The caller gates
// this on "previous non-blank line was paragraph text".
func isSetextUnderline(stripped []byte) bool {
	count := 0
	for _, b := range stripped {
		if isHoriz(b) {
			continue
		}
		if b != '-' && b != '=' {
			return false
		}
		count++
	}
	return count >= 2
}

// parseListItem recognizes a bullet (`*` or `-`) or ordered (`1.`) list item
// marker followed by at least one space or tab. It returns the normalized
// item prefix (indent + marker + one space) and the first-line content after
// the marker's whitespace run.
func parseListItem(line []byte) (prefix, first []byte, ok bool) {
	i := skipHoriz(line, 0)
	start := i

	if i < len(line) && (line[i] == '*' || line[i] == '-') {
		i++
	} else {
		j := i
		for j < len(line) && line[j] >= '0' && line[j] <= '9' {
			j++
		}
		if j == i || j >= len(line) || line[j] != '.' {
			return nil, nil, false
		}
		i = j + 1
	}

	if i >= len(line) || !isHoriz(line[i]) {
		return nil, nil, false
	}
	marker := line[start:i]

	j := skipHoriz(line, i)

	prefix = make([]byte, 0, start+len(marker)+1)
	prefix = append(prefix, line[:start]...)
	prefix = append(prefix, marker...)
	prefix = append(prefix, ' ')
	return prefix, line[j:], true
}

// stopsListContinuation reports whether a line terminates the absorption of
// wrapped list-item continuations: any line that is itself a list item or
// another structural line starts a new block. stripped is the trimmed form
// of line. Blank lines are handled by the caller.
func stopsListContinuation(line, stripped []byte) bool {
	if _, _, ok := fenceOpen(line); ok {
		return true
	}
	if isATXHeading(line) {
		return true
	}
	if _, _, ok := parseListItem(line); ok {
		return true
	}
	if isDefTerm(line) || isDefDesc(line) || isBlockquote(line) {
		return true
	}
	return isRuleLine(stripped) || isSetextUnderline(stripped)
}
