package markup_test

import (
	"testing"

	"github.com/zcorpan/reformahtml/pkg/markup"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected markup.Kind
	}{
		{
			name:     "html extension",
			path:     "spec.html",
			content:  "anything",
			expected: markup.KindHTML,
		},
		{
			name:     "doctype marker",
			path:     "input",
			content:  "<!DOCTYPE html>\n<title>Test</title>\n",
			expected: markup.KindHTML,
		},
		{
			name:     "tag-dominant document",
			path:     "spec.bs",
			content:  "<pre class=metadata>\nTitle: Demo\n</pre>\n<p>\nprose\n</p>\n",
			expected: markup.KindHTML,
		},
		{
			name:     "markdown markers",
			path:     "readme.md",
			content:  "# Title\n\nsome prose\n\n- one\n- two\n",
			expected: markup.KindMarkdown,
		},
		{
			name:     "fenced blocks count as markers",
			path:     "notes",
			content:  "prose\n\n```\ncode\n```\n",
			expected: markup.KindMarkdown,
		},
		{
			name:     "plain prose fallback",
			path:     "notes.txt",
			content:  "just some prose without any markers\nsecond line of it",
			expected: markup.KindText,
		},
		{
			name:     "empty content fallback",
			path:     "empty",
			content:  "",
			expected: markup.KindText,
		},
		{
			name:     "whitespace only fallback",
			path:     "blank",
			content:  "  \n\t\n",
			expected: markup.KindText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := markup.Detect(tt.path, []byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	if markup.IsBinary([]byte("plain text content\n")) {
		t.Error("text content reported as binary")
	}

	if !markup.IsBinary([]byte{0x00, 0x01, 0x02, 0x03}) {
		t.Error("null bytes not reported as binary")
	}
}
