package schedule

import (
	"math"
	"reflect"
	"testing"

	"github.com/mkellett/spawnclock/internal/build"
)

// threeStepDoc is the canonical fixture: windows [18,38), [38,65), [65,+Inf).
func threeStepDoc() *build.BuildDocument {
	return &build.BuildDocument{
		Name: "Test Build",
		Race: "Terran",
		Steps: []build.BuildStep{
			{Time: "0:18", Supply: 14, Action: "Supply Depot"},
			{Time: "0:38", Supply: 16, Action: "Barracks"},
			{Time: "1:05", Supply: 19, Action: "Orbital Command"},
		},
	}
}

func TestWindows(t *testing.T) {
	t.Parallel()
	ws := Windows(threeStepDoc())
	if len(ws) != 3 {
		t.Fatalf("Windows returned %d windows, want 3", len(ws))
	}
	if ws[0].Start != 18 || ws[0].End != 38 {
		t.Errorf("window 0 = [%v, %v), want [18, 38)", ws[0].Start, ws[0].End)
	}
	if ws[1].Start != 38 || ws[1].End != 65 {
		t.Errorf("window 1 = [%v, %v), want [38, 65)", ws[1].Start, ws[1].End)
	}
	if ws[2].Start != 65 || !math.IsInf(ws[2].End, 1) {
		t.Errorf("window 2 = [%v, %v), want [65, +Inf)", ws[2].Start, ws[2].End)
	}
}

func TestWindows_Empty(t *testing.T) {
	t.Parallel()
	if ws := Windows(&build.BuildDocument{Name: "n", Race: "r"}); ws != nil {
		t.Errorf("Windows on empty steps = %v, want nil", ws)
	}
	if ws := Windows(nil); ws != nil {
		t.Errorf("Windows(nil) = %v, want nil", ws)
	}
}

// states extracts index→state pairs from a view model for easy comparison.
func states(vm ViewModel) map[int]StepState {
	m := make(map[int]StepState, len(vm.Entries))
	for _, e := range vm.Entries {
		m[e.Index] = e.State
	}
	return m
}

func TestProject_Classification(t *testing.T) {
	t.Parallel()
	doc := threeStepDoc()

	tests := []struct {
		name    string
		elapsed float64
		want    map[int]StepState
	}{
		{
			name:    "before the first window opens",
			elapsed: 0,
			want:    map[int]StepState{0: StateUpcoming, 1: StateUpcoming, 2: StateUpcoming},
		},
		{
			name:    "inside first window",
			elapsed: 20,
			want:    map[int]StepState{0: StateActive, 1: StateUpcoming, 2: StateUpcoming},
		},
		{
			name:    "boundary is half open",
			elapsed: 38,
			want:    map[int]StepState{0: StateDone, 1: StateActive, 2: StateUpcoming},
		},
		{
			name:    "last step never ends",
			elapsed: 9999,
			want:    map[int]StepState{0: StateDone, 1: StateDone, 2: StateActive},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := Project(doc, tt.elapsed)
			if got := states(vm); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Project(doc, %v) states = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestProject_FullSessionSequence(t *testing.T) {
	t.Parallel()
	doc := threeStepDoc()

	vm := Project(doc, 0)
	if len(vm.Entries) != 3 {
		t.Fatalf("at t=0 got %d entries, want 3", len(vm.Entries))
	}

	vm = Project(doc, 20)
	if vm.Entries[0].Index != 0 || vm.Entries[0].State != StateActive {
		t.Errorf("at t=20 first entry = step %d state %v, want step 0 active",
			vm.Entries[0].Index, vm.Entries[0].State)
	}

	vm = Project(doc, 9999)
	// Steps 0 and 1 are done and shown (last two); step 2 is active.
	wantOrder := []int{0, 1, 2}
	var gotOrder []int
	for _, e := range vm.Entries {
		gotOrder = append(gotOrder, e.Index)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("at t=9999 entry order = %v, want %v", gotOrder, wantOrder)
	}
	if vm.Entries[2].State != StateActive {
		t.Errorf("at t=9999 step 2 state = %v, want active", vm.Entries[2].State)
	}
}

func TestProject_HistoryWindow(t *testing.T) {
	t.Parallel()
	doc := &build.BuildDocument{Name: "long", Race: "Zerg"}
	for i := 0; i < 10; i++ {
		doc.Steps = append(doc.Steps, build.BuildStep{
			Time: FormatElapsed(float64(i * 10)), Supply: float64(10 + i), Action: "step",
		})
	}

	for _, elapsed := range []float64{0, 25, 55, 95, 10000} {
		vm := Project(doc, elapsed)
		doneCount := 0
		for _, e := range vm.Entries {
			if e.State == StateDone {
				doneCount++
			}
		}
		if doneCount > DisplayHistory {
			t.Errorf("at t=%v display sequence has %d done entries, want <= %d",
				elapsed, doneCount, DisplayHistory)
		}
	}

	// Done entries keep their original order and are the most recent ones.
	vm := Project(doc, 55)
	if vm.Entries[0].Index != 3 || vm.Entries[1].Index != 4 {
		t.Errorf("at t=55 history = steps %d,%d, want 3,4",
			vm.Entries[0].Index, vm.Entries[1].Index)
	}
}

func TestProject_EmptySteps(t *testing.T) {
	t.Parallel()
	vm := Project(&build.BuildDocument{Name: "n", Race: "r"}, 42)
	if len(vm.Entries) != 0 {
		t.Errorf("empty steps produced %d entries, want 0", len(vm.Entries))
	}
	if vm.Clock != "0:42" {
		t.Errorf("Clock = %q, want 0:42", vm.Clock)
	}
}

func TestProject_DegenerateWindowNeverActive(t *testing.T) {
	t.Parallel()
	// Step 1's window is [50, 30): negative length. It must never be active.
	doc := &build.BuildDocument{
		Name: "bad order",
		Race: "Protoss",
		Steps: []build.BuildStep{
			{Time: "0:10", Supply: 1, Action: "a"},
			{Time: "0:50", Supply: 2, Action: "b"},
			{Time: "0:30", Supply: 3, Action: "c"},
		},
	}
	for elapsed := float64(0); elapsed <= 120; elapsed++ {
		vm := Project(doc, elapsed)
		for _, e := range vm.Entries {
			if e.Index == 1 && e.State == StateActive {
				t.Fatalf("degenerate window active at t=%v", elapsed)
			}
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	t.Parallel()
	doc := threeStepDoc()
	a := Project(doc, 40)
	b := Project(doc, 40)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Project not idempotent:\n%+v\n%+v", a, b)
	}
}
