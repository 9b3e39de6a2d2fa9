package reformat

import "bytes"

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
)

// indexCommentClose returns the index of the "-->" terminating the comment
// that opens at i, or -1 when the comment never closes. The search begins
// after the opener so "<!-->" does not terminate itself.
func indexCommentClose(src []byte, i int) int {
	j := bytes.Index(src[i+len(commentOpen):], commentClose)
	if j < 0 {
		return -1
	}
	return i + len(commentOpen) + j
}

// isStandaloneComment reports whether the comment whose "-->" starts at
// closing sits alone on its line: nothing but spaces and tabs before it, and
// a newline immediately after it. Standalone comments often act as
// directives (Bikeshed boilerplate markers and the like), so the whitespace
// around them is load-bearing.
func isStandaloneComment(src []byte, start, closing int) bool {
	for k := lineStartBefore(src, start); k < start; k++ {
		if !isHoriz(src[k]) {
			return false
		}
	}
	after := closing + len(commentClose)
	return after < len(src) && src[after] == '\n'
}

// appendInlineComment appends the comment with every interior whitespace run
// that contains a newline collapsed to a single space. Runs without a
// newline are untouched so deliberate alignment inside one-line comments
// survives.
func appendInlineComment(dst, comment []byte) []byte {
	inner := comment[len(commentOpen) : len(comment)-len(commentClose)]
	dst = append(dst, commentOpen...)
	for i := 0; i < len(inner); {
		if !isWS(inner[i]) {
			dst = append(dst, inner[i])
			i++
			continue
		}
		j, sawLF := scanWSRun(inner, i)
		if sawLF {
			dst = append(dst, ' ')
		} else {
			dst = append(dst, inner[i:j]...)
		}
		i = j
	}
	return append(dst, commentClose...)
}

// scanComment handles the comment opening at i and returns the new cursor.
func (s *scanner) scanComment(i int) int {
	closing := indexCommentClose(s.src, i)
	if closing < 0 {
		// Unterminated comment: the rest of the document is its body.
		s.out = append(s.out, s.src[i:]...)
		return len(s.src)
	}
	segment := s.src[i : closing+len(commentClose)]
	switch {
	case len(s.noReformat) > 0:
		s.out = append(s.out, segment...)
	case isStandaloneComment(s.src, i, closing):
		s.out = append(s.out, segment...)
		s.preservePending = true
	default:
		s.out = appendInlineComment(s.out, segment)
		s.preservePending = false
	}
	return closing + len(commentClose)
}
