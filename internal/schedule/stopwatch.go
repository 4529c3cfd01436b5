package schedule

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Stopwatch is the game clock: elapsed time since the schedule started
// running, minus paused spans.
//
// Start is idempotent while running (no duplicate timers to leak), Pause
// freezes elapsed time without resetting it, and Reset zeroes elapsed time
// and stops the clock. The clock is injected so tests can advance a fake
// clock instead of sleeping.
type Stopwatch struct {
	clock       clockwork.Clock
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

// NewStopwatch creates a stopped stopwatch at zero. A nil clock means the
// real wall clock.
func NewStopwatch(clock clockwork.Clock) *Stopwatch {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Stopwatch{clock: clock}
}

// Start begins (or resumes) the clock. Calling Start while already running
// is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.clock.Now()
}

// Pause stops the clock without losing elapsed time.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.accumulated += s.clock.Since(s.startedAt)
	s.running = false
}

// Toggle pauses a running clock and starts a stopped one.
func (s *Stopwatch) Toggle() {
	if s.running {
		s.Pause()
	} else {
		s.Start()
	}
}

// Reset stops the clock and zeroes elapsed time.
func (s *Stopwatch) Reset() {
	s.running = false
	s.accumulated = 0
}

// Running reports whether the clock is advancing.
func (s *Stopwatch) Running() bool { return s.running }

// Elapsed returns total run time, paused spans excluded.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.accumulated + s.clock.Since(s.startedAt)
	}
	return s.accumulated
}

// ElapsedSeconds returns Elapsed as the floating-point seconds value the
// projector consumes.
func (s *Stopwatch) ElapsedSeconds() float64 {
	return s.Elapsed().Seconds()
}
