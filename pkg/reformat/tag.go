package reformat

import "bytes"

// appendNormalizedTag appends tag to dst with its interior whitespace
// normalized and returns the extended slice.
//
// Outside quoted attribute values every whitespace run becomes a single
// space, except that a run containing a newline vanishes entirely when its
// nearest non-whitespace neighbor on either side is '='. That keeps
// attributes wrapped around an equals sign intact:
//
//	<a href=\n"x">  ->  <a href="x">
//
// Inside quoted values only runs containing a newline collapse; plain spaces
// and tabs in a value are content and stay. Leading and trailing spaces of
// the rebuilt interior are dropped before the brackets go back on.
func appendNormalizedTag(dst, tag []byte) []byte {
	if len(tag) < 2 {
		return append(dst, tag...)
	}
	inner := tag[1 : len(tag)-1]
	buf := make([]byte, 0, len(inner))
	var quote byte

	for i := 0; i < len(inner); {
		c := inner[i]
		if quote != 0 {
			switch {
			case c == quote:
				buf = append(buf, c)
				quote = 0
				i++
			case isWS(c):
				j, sawLF := scanWSRun(inner, i)
				if sawLF {
					if len(buf) == 0 || buf[len(buf)-1] != ' ' {
						buf = append(buf, ' ')
					}
				} else {
					buf = append(buf, inner[i:j]...)
				}
				i = j
			default:
				buf = append(buf, c)
				i++
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			quote = c
			buf = append(buf, c)
			i++
		case isWS(c):
			j, sawLF := scanWSRun(inner, i)
			if sawLF && wsRunTouchesEquals(inner, i, j) {
				// The wrap existed only to split around '='.
			} else if len(buf) == 0 || buf[len(buf)-1] != ' ' {
				buf = append(buf, ' ')
			}
			i = j
		default:
			buf = append(buf, c)
			i++
		}
	}

	buf = bytes.Trim(buf, " ")
	dst = append(dst, '<')
	dst = append(dst, buf...)
	return append(dst, '>')
}

// scanWSRun returns the end of the whitespace run starting at i and whether
// the run contains a newline.
func scanWSRun(b []byte, i int) (end int, sawLF bool) {
	j := i
	for j < len(b) && isWS(b[j]) {
		if b[j] == '\n' {
			sawLF = true
		}
		j++
	}
	return j, sawLF
}

// wsRunTouchesEquals reports whether the non-whitespace byte nearest to the
// run [i, j) on either side is '='.
func wsRunTouchesEquals(b []byte, i, j int) bool {
	p := i - 1
	for p >= 0 && isWS(b[p]) {
		p--
	}
	if p >= 0 && b[p] == '=' {
		return true
	}
	q := j
	for q < len(b) && isWS(b[q]) {
		q++
	}
	return q < len(b) && b[q] == '='
}
