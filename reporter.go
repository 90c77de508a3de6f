package pew

import (
	"fmt"
	"io"
)

// Header is the first line of the benchmark wire format.
const Header = "Name,Time (ns)"

// Reporter streams benchmark results as CSV rows in the order they are
// produced. The header is written once, before the first row, so a run that
// aborts partway still leaves the completed rows behind.
type Reporter struct {
	w             io.Writer
	headerWritten bool
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Row emits one result row, writing the header first if needed.
func (r *Reporter) Row(qualifiedName string, meanNs uint64) error {
	if !r.headerWritten {
		if _, err := fmt.Fprintln(r.w, Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		r.headerWritten = true
	}
	if _, err := fmt.Fprintf(r.w, "%s,%d\n", qualifiedName, meanNs); err != nil {
		return fmt.Errorf("failed to write result row: %w", err)
	}
	return nil
}
