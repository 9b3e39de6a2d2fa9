package markup

import (
	"testing"
)

func BenchmarkDetectHTML(b *testing.B) {
	doc := []byte(`<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<p>
prose content here
</p>
</body>
</html>`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect("spec.html", doc)
	}
}

func BenchmarkDetectMarkdown(b *testing.B) {
	doc := []byte(`# Title

- one item
- another item

` + "```" + `
code
` + "```")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect("readme", doc)
	}
}

func BenchmarkDetectEmpty(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect("empty", nil)
	}
}
