package pew

import "errors"

var (
	// ErrEmptySuite is returned when Run is called on a suite with no entries.
	ErrEmptySuite = errors.New("cannot run an empty suite")
	// ErrNoBodies is returned when an entry has no benchmark bodies.
	ErrNoBodies = errors.New("benchmark entry has no bodies")
)

// Body is a single named callable under measurement.
type Body[T any] struct {
	Name string
	Fn   func(*State[T])
}

// Entry is a named group of one or more benchmark bodies sharing one input
// range. Entries are immutable once constructed.
type Entry interface {
	Name() string

	run(cfg RunConfig, rep *Reporter) error
}

type entry[T any] struct {
	name   string
	rng    Range
	gen    func(uint64) T
	clone  func(T) T
	bodies []Body[T]
}

// NewEntry builds an entry whose input state is produced by gen, invoked once
// per distinct size. The generator's output is cloned for every repeated run
// at that size; clone must return a value safe to mutate without affecting
// the original. A nil clone falls back to plain value assignment, which is
// only correct for types without shared references.
func NewEntry[T any](name string, rng Range, gen func(uint64) T, clone func(T) T, bodies ...Body[T]) Entry {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &entry[T]{
		name:   name,
		rng:    rng,
		gen:    gen,
		clone:  clone,
		bodies: bodies,
	}
}

// NewRangeEntry builds an entry whose input is the raw size itself.
func NewRangeEntry(name string, rng Range, bodies ...Body[uint64]) Entry {
	return NewEntry(name, rng, func(n uint64) uint64 { return n }, nil, bodies...)
}

func (e *entry[T]) Name() string {
	return e.name
}

// Suite is an ordered collection of benchmark entries. Execution order is
// registration order, and the reporter's output order follows it.
type Suite struct {
	entries []Entry
}

// NewSuite creates an empty suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Add appends an entry and returns the suite for chaining.
func (s *Suite) Add(e Entry) *Suite {
	s.entries = append(s.entries, e)
	return s
}
