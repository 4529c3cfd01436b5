package schedule

import (
	"math"

	"github.com/mkellett/spawnclock/internal/build"
)

// StepState classifies a step relative to the current elapsed time.
type StepState int

const (
	// StateUpcoming means the step's window has not opened yet.
	StateUpcoming StepState = iota
	// StateActive means elapsed time is inside the step's [start, end) window.
	StateActive
	// StateDone means the step's window has closed.
	StateDone
)

// Window is the half-open interval [Start, End) during which a step is
// current, in elapsed seconds. The last step's End is +Inf.
type Window struct {
	Start float64
	End   float64
}

// Entry is one step in the render-ready display sequence.
type Entry struct {
	Index  int // position in the document's step list
	Step   build.BuildStep
	Window Window
	State  StepState
}

// ViewModel is the render-ready projection of a document at a point in time.
// Entries holds the display sequence: the last two completed steps (original
// order) followed by every active and upcoming step in original order, so
// visible history stays bounded while the full remaining schedule is always
// shown.
type ViewModel struct {
	Elapsed float64
	Clock   string // FormatElapsed(Elapsed)
	Entries []Entry
}

// DisplayHistory is how many completed steps stay visible above the active
// step.
const DisplayHistory = 2

// Windows derives each step's active window from the document's ordered
// timestamps: a step starts at its own parsed time and ends at the next
// step's, except the last step, which never ends.
//
// Non-monotonic timestamps are not corrected; a later step with an earlier
// time produces a degenerate (zero- or negative-length) window that simply
// never classifies as active.
func Windows(doc *build.BuildDocument) []Window {
	if doc == nil || len(doc.Steps) == 0 {
		return nil
	}
	ws := make([]Window, len(doc.Steps))
	for i, step := range doc.Steps {
		ws[i].Start = ParseTime(step.Time)
		if i+1 < len(doc.Steps) {
			ws[i].End = ParseTime(doc.Steps[i+1].Time)
		} else {
			ws[i].End = math.Inf(1)
		}
	}
	return ws
}

// Project computes the view model for a document at the given elapsed time.
// It is pure and idempotent: identical inputs yield identical view models.
func Project(doc *build.BuildDocument, elapsedSeconds float64) ViewModel {
	vm := ViewModel{
		Elapsed: elapsedSeconds,
		Clock:   FormatElapsed(elapsedSeconds),
	}
	if doc == nil || len(doc.Steps) == 0 {
		return vm
	}

	ws := Windows(doc)
	var done, rest []Entry
	for i, step := range doc.Steps {
		e := Entry{Index: i, Step: step, Window: ws[i], State: classify(ws[i], elapsedSeconds)}
		if e.State == StateDone {
			done = append(done, e)
		} else {
			rest = append(rest, e)
		}
	}

	if len(done) > DisplayHistory {
		done = done[len(done)-DisplayHistory:]
	}
	vm.Entries = append(done, rest...)
	return vm
}

// classify orders its checks done-first so a degenerate window (end <=
// start) flips straight from upcoming to done without ever being active.
func classify(w Window, elapsed float64) StepState {
	switch {
	case elapsed >= w.End:
		return StateDone
	case elapsed >= w.Start:
		return StateActive
	default:
		return StateUpcoming
	}
}
