package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/leonardinius/floatdiff/internal/comparator"
)

const (
	refPrompt = "ref> "
	outPrompt = "out> "
)

type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

func newReadlinePrompt(stdout, stderr io.Writer) (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt: refPrompt,
		Stdout: stdout,
		Stderr: stderr,
	})
}

func (app *FloatDiffApp) runPrompt(c *comparator.Comparator) error {
	rl, err := app.opts.newPrompt(app.opts.stdout, app.opts.stderr)
	if err != nil {
		return err
	}
	defer rl.Close()

	return app.prompt(rl, c)
}

// prompt reads reference and output lines in turn and reports each pair as
// its own numbered line, until EOF or interrupt.
func (app *FloatDiffApp) prompt(rl lineReader, c *comparator.Comparator) error {
	for pair := 1; ; pair++ {
		rl.SetPrompt(refPrompt)
		ref, err := rl.Readline()
		if err != nil {
			return endOfInput(err)
		}

		rl.SetPrompt(outPrompt)
		out, err := rl.Readline()
		if err != nil {
			return endOfInput(err)
		}

		mismatches := c.CompareLine(pair, ref, out)
		if len(mismatches) == 0 {
			fmt.Fprintf(app.opts.stdout, "No differences within tolerance %s\n", c.Tolerance())
			continue
		}

		app.diffFound = true
		for _, m := range mismatches {
			fmt.Fprintln(app.opts.stdout, m)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}
