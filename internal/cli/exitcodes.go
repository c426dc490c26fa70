package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for discolog.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRenderError indicates the render or extract failed.
	ExitRenderError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates a malformed guild metadata file.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrBadGuildData wraps guild metadata parse failures so main can map
// them to ExitDataError.
var ErrBadGuildData = errors.New("invalid guild data")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrBadGuildData):
		return ExitDataError
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}
	return ExitRenderError
}
