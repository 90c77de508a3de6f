package pew

import (
	"time"

	"pew/internal/clock"
)

// State is the handle a benchmark body receives for one run. It carries the
// run's input value and its timer. The timer starts running the moment the
// State is created; bodies can bracket setup or teardown work with Pause and
// Resume to keep it out of the measured interval.
type State[T any] struct {
	clk   *clock.Clock
	input T
}

func newState[T any](input T) *State[T] {
	return &State[T]{
		clk:   clock.New(),
		input: input,
	}
}

// Pause stops the timer. Pausing an already paused timer is a no-op.
func (s *State[T]) Pause() {
	s.clk.Pause()
}

// Resume restarts the timer after a Pause. Resuming a running timer is a
// no-op.
func (s *State[T]) Resume() {
	s.clk.Resume()
}

// Input returns this run's input value: the raw size when the entry has no
// generator, or the generator's (cloned) output otherwise. The timer is
// paused around the access so it does not count toward the measurement.
func (s *State[T]) Input() T {
	wasRunning := s.clk.Running()
	s.clk.Pause()
	v := s.input
	if wasRunning {
		s.clk.Resume()
	}
	return v
}

// finish reads the run's total active time.
func (s *State[T]) finish() time.Duration {
	return s.clk.Elapsed()
}
