package cmd

import (
	"io"
	"os"

	"github.com/leonardinius/floatdiff/internal/differrors"
)

type appOpts struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	reporter  differrors.ErrReporter
	getenv    func(string) string
	newPrompt func(stdout, stderr io.Writer) (lineReader, error)
}

var defaultAppOpts = appOpts{
	stdin:     os.Stdin,
	stdout:    os.Stdout,
	stderr:    os.Stderr,
	getenv:    os.Getenv,
	newPrompt: newReadlinePrompt,
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r differrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

// WithGetenv replaces the environment lookup, os.Getenv by default.
func WithGetenv(getenv func(string) string) AppOption {
	return func(opts *appOpts) {
		opts.getenv = getenv
	}
}

func withPrompt(newPrompt func(stdout, stderr io.Writer) (lineReader, error)) AppOption {
	return func(opts *appOpts) {
		opts.newPrompt = newPrompt
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = differrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
