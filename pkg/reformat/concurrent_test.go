package reformat_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zcorpan/reformahtml/pkg/reformat"
)

// A single Transformer must serve overlapping calls: it carries no state
// between transforms.
func TestTransformerConcurrent(t *testing.T) {
	tr := reformat.New()

	docs := []string{
		"<p>\nalpha\nbeta\n</p>",
		"text\n<code>x</code> tail",
		"<pre>\n  raw  block\n</pre>",
		"<div data-noreformat>\n <b\n >x</b>\n</div>",
		"<div>\n- one\n  two\n- three\n</div>",
		"<a\n href = \"v\nw\"\n>link</a>",
	}
	want := make([]string, len(docs))
	for i, doc := range docs {
		want[i] = tr.TransformString(doc)
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for n := 0; n < 50; n++ {
				for i, doc := range docs {
					if got := tr.TransformString(doc); got != want[i] {
						return fmt.Errorf("transform of %q = %q, want %q", doc, got, want[i])
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
