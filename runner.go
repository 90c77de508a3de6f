package pew

import (
	"fmt"
	"log/slog"
	"time"
)

// Run executes every entry in registration order and streams results through
// rep. Benchmarks run strictly sequentially; only one body at one input size
// executes at any instant. The first configuration error or body failure
// aborts the invocation; rows already written stand.
func (s *Suite) Run(cfg RunConfig, rep *Reporter) error {
	if len(s.entries) == 0 {
		return ErrEmptySuite
	}
	for _, e := range s.entries {
		if err := e.run(cfg, rep); err != nil {
			return fmt.Errorf("entry %q: %w", e.Name(), err)
		}
	}
	return nil
}

func (e *entry[T]) run(cfg RunConfig, rep *Reporter) error {
	if len(e.bodies) == 0 {
		return ErrNoBodies
	}

	sizes, err := e.rng.Sizes()
	if err != nil {
		return err
	}

	// The generator runs once per distinct size, shared across bodies, and
	// only once some body at that size survives the filter.
	inputs := make([]T, len(sizes))
	have := make([]bool, len(sizes))

	filter := Filter(cfg.Filter)
	for _, b := range e.bodies {
		for i, size := range sizes {
			name := fmt.Sprintf("%s/%s/%d", e.name, b.Name, size)
			if !filter.Matches(name) {
				slog.Debug("benchmark filtered out", "name", name)
				continue
			}
			if !have[i] {
				inputs[i] = e.gen(size)
				have[i] = true
			}

			mean, runs, err := e.measure(b, inputs[i], cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("benchmark complete", "name", name, "runs", runs, "mean_ns", mean)

			if err := rep.Row(name, mean); err != nil {
				return err
			}
		}
	}
	return nil
}

// measure runs one body against one input until both stopping criteria hold:
// at least MinRuns runs and at least MinDuration of accumulated active time.
// The mean is total/runs with integer floor division.
func (e *entry[T]) measure(b Body[T], input T, cfg RunConfig) (mean, runs uint64, err error) {
	minRuns := cfg.MinRuns
	if minRuns < 1 {
		minRuns = 1
	}

	var total time.Duration
	for runs < minRuns || total < cfg.MinDuration {
		elapsed, err := e.runOnce(b, input)
		if err != nil {
			// A failed run contributes nothing to the mean.
			return 0, runs, err
		}
		total += elapsed
		runs++
	}
	return uint64(total.Nanoseconds()) / runs, runs, nil
}

// runOnce executes the body once against a fresh clone of the input with a
// freshly started timer. Cloning happens before the timer starts, so its
// cost is excluded from the measurement.
func (e *entry[T]) runOnce(b Body[T], input T) (elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("benchmark body panicked: %v", r)
		}
	}()

	st := newState(e.clone(input))
	b.Fn(st)
	return st.finish(), nil
}
