package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/zcorpan/reformahtml/pkg/fsutil"
	"github.com/zcorpan/reformahtml/pkg/reformat"
)

// ErrUsage marks command-line usage errors so main can map them to an
// exit code and print the usage text.
var ErrUsage = errors.New("invalid usage")

// Exit codes for reformahtml.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error from command execution to a process
// exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) {
		return ExitInvalidUsage
	}

	if errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrNotRegularFile) ||
		errors.Is(err, reformat.ErrModifiedSinceRead) {
		return ExitIOError
	}

	// Unwrapped filesystem failures, such as an unwritable output path.
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) {
		return ExitIOError
	}

	return ExitInternalError
}
