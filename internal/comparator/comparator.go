// Package comparator compares two texts line by line and token by token,
// treating numeric tokens as floats under a tolerance and everything else
// as exact strings.
package comparator

import (
	"log/slog"
	"os"

	"golang.org/x/exp/slices"

	"github.com/leonardinius/floatdiff/internal/differrors"
	"github.com/leonardinius/floatdiff/internal/scanner"
	"github.com/leonardinius/floatdiff/internal/token"
	"github.com/leonardinius/floatdiff/internal/tolerance"
)

type Comparator struct {
	tolerance tolerance.Tolerance
	logger    *slog.Logger
}

// NewComparator returns a Comparator, or an error when the tolerance is
// negative or NaN.
func NewComparator(options ...ComparatorOption) (*Comparator, error) {
	opts := newComparatorOpts(options...)
	if err := opts.tolerance.Validate(); err != nil {
		return nil, err
	}
	return &Comparator{tolerance: opts.tolerance, logger: opts.logger}, nil
}

// Tolerance returns the bounds used for numeric tokens.
func (c *Comparator) Tolerance() tolerance.Tolerance {
	return c.tolerance
}

// CompareFiles reads both files completely and compares them. Failing to
// open or read either file yields a *differrors.FileAccessError and no
// result.
func (c *Comparator) CompareFiles(pathA, pathB string) (*Result, error) {
	fa, err := os.Open(pathA)
	if err != nil {
		return nil, differrors.NewFileAccessError("open", pathA, err)
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		return nil, differrors.NewFileAccessError("open", pathB, err)
	}
	defer fb.Close()

	linesA, err := scanner.ReadLines(fa)
	if err != nil {
		return nil, differrors.NewFileAccessError("read", pathA, err)
	}
	linesB, err := scanner.ReadLines(fb)
	if err != nil {
		return nil, differrors.NewFileAccessError("read", pathB, err)
	}

	c.logger.Debug("read input files", "file1", pathA, "lines1", len(linesA), "file2", pathB, "lines2", len(linesB))

	result := c.CompareLines(linesA, linesB)

	c.logger.Debug("comparison done", "mismatches", len(result.Mismatches), "tol", c.tolerance.String())
	return result, nil
}

// CompareLines compares two sequences of raw lines. Every line index up to
// the longer sequence is evaluated; comparison never stops early.
func (c *Comparator) CompareLines(linesA, linesB []string) *Result {
	result := &Result{Tolerance: c.tolerance}

	maxlen := max(len(linesA), len(linesB))
	for i := 0; i < maxlen; i++ {
		lineno := i + 1
		if i >= len(linesA) || i >= len(linesB) {
			result.add(Mismatch{Kind: LengthMismatch, Line: lineno, Tolerance: c.tolerance})
			continue
		}
		for _, m := range c.CompareLine(lineno, linesA[i], linesB[i]) {
			result.add(m)
		}
	}

	return result
}

// CompareLine compares a single pair of lines, reporting them as line lineno.
// Differing token counts yield exactly one mismatch and no per-token
// comparison.
func (c *Comparator) CompareLine(lineno int, a, b string) []Mismatch {
	if a == b {
		return nil
	}

	tokensA := scanner.NewScanner(a).Scan()
	tokensB := scanner.NewScanner(b).Scan()

	if len(tokensA) != len(tokensB) {
		return []Mismatch{{
			Kind:      TokenCountMismatch,
			Line:      lineno,
			CountA:    len(tokensA),
			CountB:    len(tokensB),
			Tolerance: c.tolerance,
		}}
	}
	if slices.EqualFunc(tokensA, tokensB, sameText) {
		return nil
	}

	var mismatches []Mismatch
	for j := range tokensA {
		if kind, ok := c.compareTokens(tokensA[j], tokensB[j]); !ok {
			mismatches = append(mismatches, Mismatch{
				Kind:      kind,
				Line:      lineno,
				A:         tokensA[j],
				B:         tokensB[j],
				Tolerance: c.tolerance,
			})
		}
	}
	return mismatches
}

// compareTokens compares numerically only when both sides are numbers.
// Identical text always matches, so "nan" equals "nan".
func (c *Comparator) compareTokens(a, b token.Token) (Kind, bool) {
	if sameText(a, b) {
		return 0, true
	}
	if a.IsNumber() && b.IsNumber() {
		return NumericMismatch, c.tolerance.Close(a.Value, b.Value)
	}
	return LiteralMismatch, false
}

func sameText(a, b token.Token) bool {
	return a.Text == b.Text
}
