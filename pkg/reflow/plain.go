package reflow

// Plain reflows a prose segment with no Markdown awareness: every newline
// run, together with adjacent indentation, joins the surrounding lines with
// a single space. Useful when the document's text nodes are known not to
// carry Markdown structure.
func Plain(text []byte) []byte {
	if len(text) == 0 {
		return text
	}

	out := make([]byte, 0, len(text))
	segStart := 0
	i := 0
	for i < len(text) {
		if text[i] != '\n' {
			i++
			continue
		}
		if segStart < i {
			out = append(out, text[segStart:i]...)
		}
		if len(out) == 0 || out[len(out)-1] != ' ' {
			out = append(out, ' ')
		}
		i++
		for i < len(text) && (text[i] == '\n' || text[i] == ' ' || text[i] == '\t') {
			i++
		}
		segStart = i
	}
	if segStart < len(text) {
		out = append(out, text[segStart:]...)
	}
	return out
}
