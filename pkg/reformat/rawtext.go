package reformat

import "bytes"

// appendRawText copies src verbatim from i up to the end tag closing the
// raw-text element name, then appends that end tag (normalized, unless a
// no-reformat subtree is active). It returns the new cursor and whether the
// end tag was found; without one the remainder of the document is copied
// untouched.
//
// End tags are matched on their parsed name, case-insensitively, so
// "</SCRIPT >" closes a script element. Anything else inside the element,
// including other tags and comments, is content.
func (s *scanner) appendRawText(i int, name string) (int, bool) {
	src := s.src
	pos := i
	for pos < len(src) {
		lt := bytes.IndexByte(src[pos:], '<')
		if lt < 0 {
			break
		}
		pos += lt
		if pos+1 >= len(src) || src[pos+1] != '/' {
			pos++
			continue
		}
		end := findTagEnd(src, pos)
		if src[end] != '>' {
			// The candidate never closes, so no end tag exists at all.
			break
		}
		tag := src[pos : end+1]
		info := parseTag(tag)
		if info.end && info.name == name {
			s.out = append(s.out, src[i:pos]...)
			if len(s.noReformat) > 0 {
				s.out = append(s.out, tag...)
			} else {
				s.out = appendNormalizedTag(s.out, tag)
			}
			return end + 1, true
		}
		pos++
	}
	s.out = append(s.out, src[i:]...)
	return len(src), false
}
