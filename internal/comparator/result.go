package comparator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leonardinius/floatdiff/internal/tolerance"
)

const summaryDiffers = "Differences found."

// Result holds every mismatch in discovery order.
type Result struct {
	Tolerance  tolerance.Tolerance
	Mismatches []Mismatch
}

// DiffFound reports whether any mismatch was recorded.
func (r *Result) DiffFound() bool {
	return len(r.Mismatches) > 0
}

// Messages returns the report line of each mismatch.
func (r *Result) Messages() []string {
	messages := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		messages[i] = m.String()
	}
	return messages
}

// Summary returns the final report line.
func (r *Result) Summary() string {
	if r.DiffFound() {
		return summaryDiffers
	}
	return fmt.Sprintf("No differences within tolerance %s", r.Tolerance)
}

// WriteTo writes one line per mismatch followed by the summary line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range append(r.Messages(), r.Summary()) {
		written, err := fmt.Fprintln(bw, line)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

func (r *Result) add(m Mismatch) {
	r.Mismatches = append(r.Mismatches, m)
}

var _ io.WriterTo = (*Result)(nil)
