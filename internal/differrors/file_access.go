package differrors

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError reports an input file that could not be opened or read.
// It aborts the whole comparison.
type FileAccessError struct {
	Path  string
	Op    string
	cause error
}

func NewFileAccessError(op, path string, cause error) error {
	return &FileAccessError{Path: path, Op: op, cause: cause}
}

// Error implements error.
func (e *FileAccessError) Error() string {
	cause := e.cause
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) && pathErr.Path == e.Path {
		cause = pathErr.Err
	}
	return fmt.Sprintf("cannot %s file %q: %v", e.Op, e.Path, cause)
}

func (e *FileAccessError) Unwrap() error {
	return e.cause
}

var _ error = (*FileAccessError)(nil)
var _ unwrapInterface = (*FileAccessError)(nil)
