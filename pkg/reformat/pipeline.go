package reformat

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/zcorpan/reformahtml/pkg/fsutil"
)

// ErrModifiedSinceRead indicates the input file changed on disk between the
// read and the write-back, so the rewrite was refused.
var ErrModifiedSinceRead = errors.New("file modified since read")

// FileResult describes one file's trip through the rewrite pipeline.
type FileResult struct {
	// Path is the input file that was processed.
	Path string

	// InBytes and OutBytes are the input and output sizes.
	InBytes  int
	OutBytes int

	// Changed is true if the transformed output differs from the input.
	Changed bool

	// Written is true if a file was written to disk.
	Written bool
}

// Summary returns a short human-readable description of the outcome.
func (r *FileResult) Summary() string {
	if !r.Written {
		return "unchanged"
	}
	if r.Changed {
		return "rewritten"
	}
	return "written unchanged"
}

// ReformatFile rewrites path in place.
//
// The pipeline performs the following steps:
//  1. Read and hash the file.
//  2. Transform the content.
//  3. If the output equals the input, skip the write.
//  4. Re-check the file on disk and refuse to clobber a concurrent
//     modification (ErrModifiedSinceRead).
//  5. Write atomically, preserving the original permission bits.
func (t *Transformer) ReformatFile(ctx context.Context, path string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("reformat cancelled: %w", ctx.Err())
	default:
	}

	out := t.Transform(content)

	result := &FileResult{
		Path:     path,
		InBytes:  len(content),
		OutBytes: len(out),
		Changed:  !bytes.Equal(out, content),
	}

	if !result.Changed {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, err
	}
	if modified {
		return nil, fmt.Errorf("%w: %s", ErrModifiedSinceRead, path)
	}

	if err := fsutil.WriteAtomic(ctx, path, out, info.Mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true

	return result, nil
}

// ReformatFileTo transforms inPath and writes the result to outPath, leaving
// the input untouched. The output file is written even when the transform
// changes nothing, with fsutil.DefaultFileMode for new files.
func (t *Transformer) ReformatFileTo(ctx context.Context, inPath, outPath string) (*FileResult, error) {
	content, _, err := fsutil.ReadFile(ctx, inPath)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("reformat cancelled: %w", ctx.Err())
	default:
	}

	out := t.Transform(content)

	result := &FileResult{
		Path:     inPath,
		InBytes:  len(content),
		OutBytes: len(out),
		Changed:  !bytes.Equal(out, content),
	}

	if err := fsutil.WriteAtomic(ctx, outPath, out, 0); err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	result.Written = true

	return result, nil
}
