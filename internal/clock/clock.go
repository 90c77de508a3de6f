// Package clock provides the monotonic pause/resume stopwatch that backs a
// single benchmark run.
package clock

import "time"

// Clock is a wall-clock stopwatch that accumulates active time and can be
// paused around work that should not be measured. A Clock starts running the
// moment it is created and is discarded after the run's elapsed time is read.
//
// Pause and Resume are deliberately idempotent: pausing a paused clock or
// resuming a running one is a no-op, so benchmark bodies do not have to keep
// their pause/resume calls strictly paired.
type Clock struct {
	running    bool
	lastResume time.Time
	elapsed    time.Duration
}

// New creates a Clock that is already running.
func New() *Clock {
	return &Clock{
		running:    true,
		lastResume: time.Now(),
	}
}

// Pause commits the open interval into the accumulator and stops the clock.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.elapsed += time.Since(c.lastResume)
	c.running = false
}

// Resume re-arms the clock after a Pause.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.running = true
	c.lastResume = time.Now()
}

// Elapsed returns the accumulated active time. It is safe to call while the
// clock is running; the open interval is included without being committed.
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.elapsed + time.Since(c.lastResume)
	}
	return c.elapsed
}

// Running reports whether the clock is currently accumulating time.
func (c *Clock) Running() bool {
	return c.running
}
