package reformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcorpan/reformahtml/pkg/reformat"
	"github.com/zcorpan/reformahtml/pkg/tagset"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain paragraph wrap collapses",
			input: "<p>\nalpha\nbeta\ngamma\n</p>",
			want:  "<p>\nalpha beta gamma\n</p>",
		},
		{
			name:  "blank lines separate paragraphs",
			input: "<p>\nalpha\nbeta\n\ngamma\ndelta\n</p>",
			want:  "<p>\nalpha beta\n\ngamma delta\n</p>",
		},
		{
			name:  "wrapped tag attributes collapse",
			input: "<a\n  href=\"x\"\n  class=y>link</a>",
			want:  "<a href=\"x\" class=y>link</a>",
		},
		{
			name:  "newline run touching equals vanishes",
			input: "<a href=\n\"x\">link</a>",
			want:  "<a href=\"x\">link</a>",
		},
		{
			name:  "inline tag glides onto previous line",
			input: "alpha\n<code>x</code>",
			want:  "alpha <code>x</code>",
		},
		{
			name:  "glide keeps indentation after structural start",
			input: "<div>\n<span>x</span>",
			want:  "<div>\n<span>x</span>",
		},
		{
			name:  "whitespace before inline tag collapses",
			input: "alpha</b>\n<i>beta</i>",
			want:  "alpha</b> <i>beta</i>",
		},
		{
			name:  "blank line before inline tag stays",
			input: "alpha</b>\n\n<i>beta</i>",
			want:  "alpha</b>\n\n<i>beta</i>",
		},
		{
			name:  "whitespace before structural tag stays",
			input: "alpha\n</p>",
			want:  "alpha\n</p>",
		},
		{
			name:  "newline before nonstructural end tag joins",
			input: "alpha\n</div>",
			want:  "alpha</div>",
		},
		{
			name:  "indentation around block tags stays",
			input: "<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>",
			want:  "<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>",
		},
		{
			name:  "space before inline tag survives reflow",
			input: "text <code>x</code>",
			want:  "text <code>x</code>",
		},
		{
			name:  "br keeps its line break",
			input: "alpha<br>\n  beta\n<div>x</div>",
			want:  "alpha<br>\n  beta\n<div>x</div>",
		},
		{
			name:  "same shape without br reflows",
			input: "alpha\n  beta\n<div>x</div>",
			want:  "alpha beta\n<div>x</div>",
		},
		{
			name:  "standalone comment preserves following indentation",
			input: "line1\n<!-- c -->\n  line2",
			want:  "line1\n<!-- c -->\n  line2",
		},
		{
			name:  "inline comment body reflows",
			input: "alpha <!-- first\n  second --> beta",
			want:  "alpha <!-- first second --> beta",
		},
		{
			name:  "raw text content untouched",
			input: "<pre>\n  two  spaces\n\n\tand a tab\n</pre>",
			want:  "<pre>\n  two  spaces\n\n\tand a tab\n</pre>",
		},
		{
			name:  "script content untouched",
			input: "<script>\nif (a) {\n    b();\n}\n</script>",
			want:  "<script>\nif (a) {\n    b();\n}\n</script>",
		},
		{
			name:  "raw text end tag matched case insensitively",
			input: "<PRE>\n  x\n</PRE>",
			want:  "<PRE>\n  x\n</PRE>",
		},
		{
			name:  "raw text end tag with attributes still closes",
			input: "<pre>\n x\n</pre\n>after\nmore",
			want:  "<pre>\n x\n</pre>after more",
		},
		{
			name:  "tags inside raw text are content",
			input: "<pre>\n<b>\n  not a tag boundary\n</b>\n</pre>",
			want:  "<pre>\n<b>\n  not a tag boundary\n</b>\n</pre>",
		},
		{
			name:  "unclosed raw text swallows remainder",
			input: "<pre>\n  kept   exactly\nno end",
			want:  "<pre>\n  kept   exactly\nno end",
		},
		{
			name:  "noreformat subtree fully verbatim",
			input: "<div data-noreformat>\n  <span\n  a = b>  x\n  </span>\n</div>",
			want:  "<div data-noreformat>\n  <span\n  a = b>  x\n  </span>\n</div>",
		},
		{
			name:  "noreformat wins over raw text end tag",
			input: "<div data-noreformat><pre>\n x\n</pre\n></div>",
			want:  "<div data-noreformat><pre>\n x\n</pre\n></div>",
		},
		{
			name:  "normalization resumes after noreformat",
			input: "<div data-noreformat>\n<b\n>x</b>\n</div>\n<p>\none\ntwo\n</p>",
			want:  "<div data-noreformat>\n<b\n>x</b>\n</div>\n<p>\none two\n</p>",
		},
		{
			name:  "noreformat attribute is word matched",
			input: "<p data-noreformatx>\na\nb\n</p>",
			want:  "<p data-noreformatx>\na b\n</p>",
		},
		{
			name:  "list item continuation joins",
			input: "<div>\n- alpha\n  beta\n    gamma\n</div>",
			want:  "<div>\n- alpha beta gamma\n</div>",
		},
		{
			name:  "fences untouched between tags",
			input: "<div>\nbefore\n\n```\n  raw   code\n\n\tmore\n```\nafter</div>",
			want:  "<div>\nbefore\n\n```\n  raw   code\n\n\tmore\n```\nafter</div>",
		},
		{
			name:  "headings stay on their own lines",
			input: "<div>\n# Title\ntext\nwraps</div>",
			want:  "<div>\n# Title\ntext wraps</div>",
		},
		{
			name:  "attribute collapse around equals",
			input: "<a\n  href = \"x\ny\"\n>",
			want:  "<a href = \"x y\">",
		},
		{
			name:  "doctype normalized like a tag",
			input: "<!DOCTYPE\nhtml>\n<p>\nx\n</p>",
			want:  "<!DOCTYPE html>\n<p>\nx\n</p>",
		},
		{
			name:  "whitespace only document unchanged",
			input: "\n\n   \n\t\n",
			want:  "\n\n   \n\t\n",
		},
		{
			name:  "unterminated comment copied",
			input: "a\n\n<!-- never closed",
			want:  "a\n\n<!-- never closed",
		},
		{
			name:  "unterminated tag best effort",
			input: "text <div class",
			want:  "text <div clas>",
		},
		{
			name:  "final paragraph newline dropped",
			input: "hello\n",
			want:  "hello",
		},
		{
			name:  "bare text with no markup reflows",
			input: "one\ntwo\nthree",
			want:  "one two three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reformat.TransformString(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Transforming a second time must not change anything: every collapse the
// first pass makes leaves the document in a shape every rule accepts.
func TestTransformIdempotent(t *testing.T) {
	inputs := []string{
		"<p>\nalpha\nbeta\n\ngamma\n</p>",
		"alpha\n<code>x</code> and\nmore text",
		"<div>\n- item one\n  wraps\n- item two\n</div>",
		"<pre>\n  raw\n</pre>\n<p>\ntext\n</p>",
		"<div data-noreformat>\n  <b\n  >x</b>\n</div>",
		"line1\n<!-- c -->\n  line2",
		"<a\n  href = \"x\ny\"\n>linked\ntext</a>",
		"alpha<br>\n  beta",
	}

	for _, input := range inputs {
		once := reformat.TransformString(input)
		twice := reformat.TransformString(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestTransformRawTextInviolability(t *testing.T) {
	const body = "\n  two  spaces\tand\n\n   odd\nwrapping\n"
	input := "<p>\nintro\ntext\n</p>\n<pre>" + body + "</pre>"

	got := reformat.TransformString(input)
	assert.Contains(t, got, "<pre>"+body+"</pre>")
}

func TestTransformBytesOnlyWhitespaceChange(t *testing.T) {
	inputs := []string{
		"<p>\nalpha\nbeta\n</p>",
		"a\n<em>b</em>",
		"<a\n href=\n'x'>y</a>",
		"<div>\n- one\n  two\n</div>",
	}

	strip := func(s string) string {
		out := make([]byte, 0, len(s))
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case ' ', '\t', '\r', '\n':
			default:
				out = append(out, s[i])
			}
		}
		return string(out)
	}

	for _, input := range inputs {
		got := reformat.TransformString(input)
		require.Equal(t, strip(input), strip(got), "input %q", input)
	}
}

func TestTransformerWithTables(t *testing.T) {
	tables := tagset.Default()
	tables.Inline = tables.Inline.With("tt")

	tr := reformat.New(reformat.WithTables(tables))

	const input = "alpha</b>\n<tt>x</tt>"
	assert.Equal(t, "alpha</b> <tt>x</tt>", tr.TransformString(input))

	// The default tables do not know tt, so the wrap stays.
	assert.Equal(t, input, reformat.TransformString(input))
}

func TestTransformerWithCustomAttr(t *testing.T) {
	tables := tagset.Default()
	tables.NoReformatAttr = "data-keep"

	tr := reformat.New(reformat.WithTables(tables))

	input := "<div data-keep>\na\nb\n</div>"
	assert.Equal(t, input, tr.TransformString(input))
	assert.Equal(t, "<div data-keep>\na b</div>", reformat.TransformString(input))
}

func TestTransformerWithMarkdownDisabled(t *testing.T) {
	tr := reformat.New(reformat.WithMarkdown(false))

	// The plain engine joins every wrap, even ones the Markdown engine
	// treats as structural.
	const input = "# one\ntwo"
	assert.Equal(t, "# one two", tr.TransformString(input))
	assert.Equal(t, "# one\ntwo", reformat.TransformString(input))
}

func TestTransformInputNotAliased(t *testing.T) {
	src := []byte("<p>\nalpha\nbeta\n</p>")
	orig := string(src)

	out := reformat.Transform(src)
	require.Equal(t, orig, string(src))

	for i := range out {
		out[i] = '#'
	}
	assert.Equal(t, orig, string(src))
}
