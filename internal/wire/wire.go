// Package wire implements the benchmark CSV wire format: a `Name,Time (ns)`
// header followed by `<entry>/<body>/<size>,<nanoseconds>` rows. The
// downstream tools consume exactly this grammar and nothing else.
package wire

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Header is the first line of the wire format.
const Header = "Name,Time (ns)"

var rowPattern = regexp.MustCompile(`^[^,]+/[^,]+/[0-9]+,[0-9]+$`)

// Row is one parsed result row. Family is the qualified name minus the
// trailing size segment, i.e. `<entry>/<body>`.
type Row struct {
	Family string
	Size   uint64
	TimeNs uint64
}

// Name returns the full qualified name, `<family>/<size>`.
func (r Row) Name() string {
	return fmt.Sprintf("%s/%d", r.Family, r.Size)
}

// ParseRow parses a single result row. The grammar permits no commas inside
// names and requires a numeric trailing size segment.
func ParseRow(line string) (Row, error) {
	if !rowPattern.MatchString(line) {
		return Row{}, fmt.Errorf("malformed benchmark row %q", line)
	}

	comma := strings.LastIndex(line, ",")
	name := line[:comma]
	slash := strings.LastIndex(name, "/")

	size, err := strconv.ParseUint(name[slash+1:], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid size in row %q: %w", line, err)
	}
	timeNs, err := strconv.ParseUint(line[comma+1:], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("invalid time in row %q: %w", line, err)
	}

	return Row{
		Family: name[:slash],
		Size:   size,
		TimeNs: timeNs,
	}, nil
}

// Read parses a whole result stream. The header line is optional but, when
// present, must come first. A malformed row is a parse error carrying its
// line number; rows are never silently dropped.
func Read(r io.Reader) ([]Row, error) {
	var rows []Row
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if lineNo == 1 && line == Header {
			continue
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read benchmark stream: %w", err)
	}
	return rows, nil
}
