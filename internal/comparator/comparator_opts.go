package comparator

import (
	"io"
	"log/slog"

	"github.com/leonardinius/floatdiff/internal/tolerance"
)

type comparatorOpts struct {
	tolerance tolerance.Tolerance
	logger    *slog.Logger
}

var defaultComparatorOpts = comparatorOpts{
	tolerance: tolerance.New(tolerance.Default),
}

type ComparatorOption func(*comparatorOpts)

// WithTolerance sets tol as both the relative and the absolute bound.
func WithTolerance(tol float64) ComparatorOption {
	return func(opts *comparatorOpts) {
		opts.tolerance = tolerance.New(tol)
	}
}

func WithBounds(t tolerance.Tolerance) ComparatorOption {
	return func(opts *comparatorOpts) {
		opts.tolerance = t
	}
}

func WithLogger(logger *slog.Logger) ComparatorOption {
	return func(opts *comparatorOpts) {
		opts.logger = logger
	}
}

func newComparatorOpts(options ...ComparatorOption) *comparatorOpts {
	opts := defaultComparatorOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &opts
}
