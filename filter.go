package pew

import "strings"

// Filter is a case-sensitive substring predicate over qualified benchmark
// names. The empty filter matches everything. Filtering happens before a
// benchmark executes, so filtered-out benchmarks cost nothing.
type Filter string

// Matches reports whether the qualified name passes the filter.
func (f Filter) Matches(qualifiedName string) bool {
	if f == "" {
		return true
	}
	return strings.Contains(qualifiedName, string(f))
}
