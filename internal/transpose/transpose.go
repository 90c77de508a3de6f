// Package transpose pivots benchmark result rows so that rows sharing a
// trailing input size line up, one column per benchmark family. The output
// of a suite run:
//
//	Name,Time (ns)
//	range_bench/pop/1024,102541
//	range_bench/pop/4096,423289
//	gen_bench/pop/1024,102316
//	gen_bench/pop/4096,416523
//
// becomes:
//
//	Size,range_bench/pop,gen_bench/pop
//	1024,102541,102316
//	4096,423289,416523
package transpose

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"pew/internal/wire"
)

// Table is a pivoted result set. Families appear in first-seen order, sizes
// in ascending numeric order.
type Table struct {
	Families []string
	Sizes    []uint64
	cells    map[uint64]map[string]uint64
}

// Pivot builds a Table from parsed result rows.
func Pivot(rows []wire.Row) *Table {
	t := &Table{cells: make(map[uint64]map[string]uint64)}
	seen := make(map[string]bool)

	for _, row := range rows {
		if !seen[row.Family] {
			seen[row.Family] = true
			t.Families = append(t.Families, row.Family)
		}
		byFamily, ok := t.cells[row.Size]
		if !ok {
			byFamily = make(map[string]uint64)
			t.cells[row.Size] = byFamily
			t.Sizes = append(t.Sizes, row.Size)
		}
		byFamily[row.Family] = row.TimeNs
	}

	sort.Slice(t.Sizes, func(i, j int) bool { return t.Sizes[i] < t.Sizes[j] })
	return t
}

// Cell returns the mean for a (family, size) combination and whether it was
// present in the input.
func (t *Table) Cell(family string, size uint64) (uint64, bool) {
	v, ok := t.cells[size][family]
	return v, ok
}

// Write emits the pivoted table as CSV. A (family, size) combination
// missing from the input yields an empty cell.
func (t *Table) Write(w io.Writer) error {
	line := make([]string, 0, len(t.Families)+1)

	line = append(line, "Size")
	line = append(line, t.Families...)
	if err := writeLine(w, line); err != nil {
		return err
	}

	for _, size := range t.Sizes {
		line = line[:0]
		line = append(line, strconv.FormatUint(size, 10))
		for _, family := range t.Families {
			if v, ok := t.cells[size][family]; ok {
				line = append(line, strconv.FormatUint(v, 10))
			} else {
				line = append(line, "")
			}
		}
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return fmt.Errorf("failed to write table: %w", err)
			}
		}
		if _, err := io.WriteString(w, f); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
