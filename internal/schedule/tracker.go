package schedule

import "math"

// BoundaryTracker turns end-boundary crossings into one-shot completion
// signals for audio/visual cues. Each step fires at most once per session:
// a boundary fires on the first tick where elapsed reaches or passes it, is
// never re-fired when the same elapsed value is re-evaluated, and boundaries
// already in the past when a document is (re)loaded never fire at all.
//
// The tracker is the only stateful piece of the engine; Project itself stays
// pure. It is used from a single goroutine (the TUI update loop).
type BoundaryTracker struct {
	last float64
}

// NewBoundaryTracker returns a tracker baselined at the given elapsed time.
// Boundaries at or before the baseline are treated as already crossed.
func NewBoundaryTracker(elapsedSeconds float64) *BoundaryTracker {
	return &BoundaryTracker{last: elapsedSeconds}
}

// Rebaseline resets the tracker to the given elapsed time, swallowing any
// boundaries between the old position and the new one. Called when a new
// document replaces the current one or the clock is reset.
func (t *BoundaryTracker) Rebaseline(elapsedSeconds float64) {
	t.last = elapsedSeconds
}

// Advance moves the tracker to elapsedSeconds and returns the indices of
// steps whose end boundary was crossed since the previous position, in step
// order. Time moving backwards (a reset) rebaselines without firing.
func (t *BoundaryTracker) Advance(windows []Window, elapsedSeconds float64) []int {
	if elapsedSeconds < t.last {
		t.last = elapsedSeconds
		return nil
	}
	prev := t.last
	t.last = elapsedSeconds

	var crossed []int
	for i, w := range windows {
		if math.IsInf(w.End, 1) {
			continue
		}
		if prev < w.End && elapsedSeconds >= w.End {
			crossed = append(crossed, i)
		}
	}
	return crossed
}
