package reformat

import (
	"bytes"

	"github.com/zcorpan/reformahtml/pkg/tagset"
)

// run walks the document once. Each iteration consumes exactly one construct:
// raw-text content, a comment, a tag, or a text segment up to the next '<'.
func (s *scanner) run() {
	i := 0
	for i < len(s.src) {
		if n := len(s.rawText); n > 0 {
			next, closed := s.appendRawText(i, s.rawText[n-1])
			if closed {
				s.rawText = s.rawText[:n-1]
			}
			s.preservePending = false
			i = next
			continue
		}
		switch {
		case bytes.HasPrefix(s.src[i:], commentOpen):
			i = s.scanComment(i)
		case s.src[i] == '<':
			i = s.scanTag(i)
		default:
			i = s.scanText(i)
		}
	}
}

// scanTag handles the tag opening at i and returns the new cursor.
//
// The tag is emitted before the stacks update, so the element opening a
// no-reformat subtree is itself normalized while its closing tag, emitted
// with the subtree still active, is not.
func (s *scanner) scanTag(i int) int {
	end := findTagEnd(s.src, i)
	tag := s.src[i : end+1]
	info := parseTag(tag)

	if len(s.noReformat) > 0 {
		s.out = append(s.out, tag...)
	} else {
		s.out = appendNormalizedTag(s.out, tag)
	}

	if s.tables.RawText.Has(info.name) {
		if info.end {
			s.popRawText(info.name)
		} else if !info.selfClosing {
			s.rawText = append(s.rawText, info.name)
		}
	}

	if info.end {
		if n := len(s.noReformat); n > 0 && s.noReformat[n-1] == info.name {
			s.noReformat = s.noReformat[:n-1]
		}
	} else if info.name != "" && !info.selfClosing && !s.tables.Void.Has(info.name) &&
		hasAttrWord(tag, s.tables.NoReformatAttr) {
		s.noReformat = append(s.noReformat, info.name)
	}

	if !info.end && info.name == "br" {
		// A br is an intentional break: preserve what follows it, and keep
		// its own trailing newline rather than letting the next text
		// segment absorb it.
		s.preservePending = true
		if end+1 < len(s.src) && s.src[end+1] == '\n' {
			s.out = append(s.out, '\n')
			return end + 2
		}
		return end + 1
	}

	s.preservePending = false
	return end + 1
}

// popRawText removes the topmost entry named name and everything above it.
func (s *scanner) popRawText(name string) {
	for k := len(s.rawText) - 1; k >= 0; k-- {
		if s.rawText[k] == name {
			s.rawText = s.rawText[:k]
			return
		}
	}
}

// aheadInfo classifies the construct immediately after a text segment.
type aheadInfo struct {
	standaloneComment bool
	hasTag            bool
	tag               tagInfo
}

func (a aheadInfo) structural(tables *tagset.Tables) bool {
	if !a.hasTag || a.tag.name == "" {
		return false
	}
	if a.tag.end {
		return tables.StructuralEnd.Has(a.tag.name)
	}
	return tables.StructuralStart.Has(a.tag.name)
}

func (a aheadInfo) inlineStart(tables *tagset.Tables) bool {
	return a.hasTag && !a.tag.end && tables.Inline.Has(a.tag.name)
}

// classifyAhead inspects the construct starting at next, the boundary that
// ended the current text segment. Comments classify as standalone or nothing;
// they never count as tags.
func (s *scanner) classifyAhead(next int) aheadInfo {
	var a aheadInfo
	if next >= len(s.src) {
		return a
	}
	if bytes.HasPrefix(s.src[next:], commentOpen) {
		if closing := indexCommentClose(s.src, next); closing >= 0 && isStandaloneComment(s.src, next, closing) {
			a.standaloneComment = true
		}
		return a
	}
	end := findTagEnd(s.src, next)
	a.hasTag = true
	a.tag = parseTag(s.src[next : end+1])
	return a
}

// scanText handles the text segment from i to the next '<' (or end of input)
// and returns the new cursor.
func (s *scanner) scanText(i int) int {
	next := len(s.src)
	if lt := bytes.IndexByte(s.src[i:], '<'); lt >= 0 {
		next = i + lt
	}
	chunk := s.src[i:next]

	if len(s.noReformat) > 0 {
		s.out = append(s.out, chunk...)
		return next
	}

	ahead := s.classifyAhead(next)

	if isAllWS(chunk) {
		s.appendWhitespaceChunk(chunk, next, ahead)
		return next
	}

	s.appendContentChunk(chunk, i, next, ahead)
	s.preservePending = false
	return next
}

// appendWhitespaceChunk applies the policy for segments made entirely of
// whitespace. Such a segment is structure (indentation, blank lines) and
// passes verbatim, with one exception: a run holding exactly one newline
// directly before an inline start tag is an incidental wrap and becomes a
// single space, unless the previous content line ended with a structural
// start tag, in which case the run is that block's indentation.
func (s *scanner) appendWhitespaceChunk(chunk []byte, next int, ahead aheadInfo) {
	if ahead.standaloneComment || ahead.structural(s.tables) || !ahead.inlineStart(s.tables) {
		s.out = append(s.out, chunk...)
		return
	}
	if bytes.Count(chunk, lf) == 1 && !s.prevLineEndsWithStructuralStart(next) {
		s.out = append(s.out, ' ')
		return
	}
	s.out = append(s.out, chunk...)
}

// appendContentChunk applies the policy for segments containing content.
// start and next are the segment's boundaries in s.src.
func (s *scanner) appendContentChunk(chunk []byte, start, next int, ahead aheadInfo) {
	preserveLeading := s.preservePending
	preserveTrailing := ahead.standaloneComment || ahead.structural(s.tables)

	if preserveLeading || preserveTrailing {
		left := 0
		if preserveLeading {
			for left < len(chunk) && isWS(chunk[left]) {
				left++
			}
			s.out = append(s.out, chunk[:left]...)
		}

		// The trailing whitespace run stays out of the reflow only when it
		// holds a newline; plain trailing spaces belong to the prose.
		suffixStart := len(chunk)
		idx := len(chunk)
		sawLF := false
		for idx > left && isWS(chunk[idx-1]) {
			if chunk[idx-1] == '\n' {
				sawLF = true
			}
			idx--
		}
		if preserveTrailing && sawLF {
			suffixStart = idx
		}

		if body := chunk[left:suffixStart]; len(body) > 0 {
			body = s.softWrapStart(body, start)
			s.out = append(s.out, s.reflowText(body)...)
		}
		s.out = append(s.out, chunk[suffixStart:]...)
		return
	}

	// Horizontal edge runs frame the segment and skip the reflow engine.
	lead := 0
	for lead < len(chunk) && isHoriz(chunk[lead]) {
		lead++
	}
	trail := len(chunk)
	for trail > lead && isHoriz(chunk[trail-1]) {
		trail--
	}

	body := s.softWrapStart(chunk[lead:trail], start)
	reflowed := s.reflowText(body)

	s.out = append(s.out, chunk[:lead]...)
	if ahead.inlineStart(s.tables) && countTrailingLFs(chunk) == 1 &&
		!s.prevLineEndsWithStructuralStart(next) {
		// The wrap before an inline start tag is incidental: glide the tag
		// onto this line with a single space.
		s.out = append(s.out, trimOneTrailingLF(reflowed)...)
		s.out = append(s.out, ' ')
	} else {
		s.out = append(s.out, reflowed...)
		s.out = append(s.out, chunk[trail:]...)
	}
}

// softWrapStart undoes a wrap at the very start of body: a single leading
// newline plus indentation becomes one space. Double newlines are paragraph
// breaks, a structural start tag on the previous line makes the wrap
// indentation, and a pending preservation keeps the prefix as-is.
func (s *scanner) softWrapStart(body []byte, start int) []byte {
	if s.preservePending || len(body) == 0 || body[0] != '\n' {
		return body
	}
	if len(body) >= 2 && body[1] == '\n' {
		return body
	}
	if s.prevLineEndsWithStructuralStart(start) {
		return body
	}
	nb := make([]byte, 0, len(body))
	nb = append(nb, ' ')
	return append(nb, trimLeadingHoriz(body[1:])...)
}

var lf = []byte{'\n'}

func trimLeadingHoriz(b []byte) []byte {
	return bytes.TrimLeft(b, " \t")
}
