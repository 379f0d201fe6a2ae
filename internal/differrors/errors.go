package differrors

import (
	"errors"
	"fmt"
)

var (
	ErrUsage              = errors.New("usage: floatdiff [flags] file1 file2")
	ErrUsageInteractive   = errors.New("usage: floatdiff --interactive takes no file arguments")
	ErrMalformedTolerance = errors.New("tolerance is not a number")
	ErrNegativeTolerance  = errors.New("tolerances must be non-negative")
)

func ErrUsageArgCount(got int) error {
	return fmt.Errorf("%w: expected 2 file arguments, got %d", ErrUsage, got)
}

func NewToleranceError(value string, cause error) error {
	return &ToleranceError{value: value, cause: cause}
}

// ToleranceError describes a tolerance value that cannot be used.
type ToleranceError struct {
	value string
	cause error
}

// Error implements error.
func (e *ToleranceError) Error() string {
	return fmt.Sprintf("invalid tolerance %q: %v", e.value, e.cause)
}

func (e *ToleranceError) Unwrap() error {
	return e.cause
}

var _ error = (*ToleranceError)(nil)
var _ unwrapInterface = (*ToleranceError)(nil)

// unwrapInterface is asserted by the error types so errors.Is and errors.As
// keep reaching their causes.
type unwrapInterface interface {
	Unwrap() error
}
