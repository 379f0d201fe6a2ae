package comparator

import (
	"io"
)

// Compare compares the files at pathA and pathB with tol as both relative
// and absolute tolerance. It returns whether any difference was found and
// the mismatch report lines, without the summary.
func Compare(pathA, pathB string, tol float64) (bool, []string, error) {
	c, err := NewComparator(WithTolerance(tol))
	if err != nil {
		return false, nil, err
	}
	result, err := c.CompareFiles(pathA, pathB)
	if err != nil {
		return false, nil, err
	}
	return result.DiffFound(), result.Messages(), nil
}

// Report compares like Compare and also writes the full report, summary
// included, to w.
func Report(w io.Writer, pathA, pathB string, options ...ComparatorOption) (bool, error) {
	c, err := NewComparator(options...)
	if err != nil {
		return false, err
	}
	result, err := c.CompareFiles(pathA, pathB)
	if err != nil {
		return false, err
	}
	if _, err := result.WriteTo(w); err != nil {
		return result.DiffFound(), err
	}
	return result.DiffFound(), nil
}
