package tui

import (
	"strings"
	"testing"

	"github.com/mkellett/spawnclock/internal/build"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/schedule"
)

func TestStatusBarView(t *testing.T) {
	t.Parallel()
	bar := StatusBar{
		Name:  "Test Rush",
		Race:  "Zerg",
		Clock: "1:23",
		Width: 80,
	}
	bar.SetSupply(16)

	out := bar.View()
	for _, want := range []string{"Test Rush", "Zerg", "1:23", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("PAUSED shown while running")
	}

	bar.Paused = true
	if !strings.Contains(bar.View(), "PAUSED") {
		t.Error("PAUSED not shown while paused")
	}
}

func TestStatusBarCompactDropsRaceAndSupply(t *testing.T) {
	t.Parallel()
	bar := StatusBar{
		Name:   "Test Rush",
		Race:   "Zerg",
		Supply: "16",
		Clock:  "1:23",
		Width:  40,
	}
	out := bar.View()
	if strings.Contains(out, "Zerg") {
		t.Error("compact status bar still shows race")
	}
	if !strings.Contains(out, "1:23") {
		t.Error("compact status bar dropped the clock")
	}
}

func TestStepsViewStates(t *testing.T) {
	t.Parallel()
	v := StepsView{Width: 80}
	v.SetViewModel(schedule.ViewModel{
		Entries: []schedule.Entry{
			{Step: stepFor("0:05", 13, "Overlord"), State: schedule.StateDone},
			{Step: stepFor("0:10", 16, "Hatchery"), State: schedule.StateActive},
			{Step: stepFor("0:20", 17, "Spawning Pool"), State: schedule.StateUpcoming},
		},
	})

	out := v.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], iconDone) || !strings.Contains(lines[0], "Overlord") {
		t.Errorf("done row wrong: %q", lines[0])
	}
	if !strings.Contains(lines[1], iconActive) || !strings.Contains(lines[1], selectionIndicator) {
		t.Errorf("active row wrong: %q", lines[1])
	}
	if !strings.Contains(lines[2], iconUpcoming) {
		t.Errorf("upcoming row wrong: %q", lines[2])
	}
}

func TestStepsViewEmpty(t *testing.T) {
	t.Parallel()
	v := StepsView{Width: 80}
	if !strings.Contains(v.View(), "no steps") {
		t.Errorf("empty view = %q", v.View())
	}
}

func TestStepsViewHeightClip(t *testing.T) {
	t.Parallel()
	v := StepsView{Width: 80, Height: 2}
	v.SetViewModel(schedule.ViewModel{
		Entries: []schedule.Entry{
			{Step: stepFor("0:05", 13, "a")},
			{Step: stepFor("0:10", 14, "b")},
			{Step: stepFor("0:15", 15, "c")},
		},
	})
	if got := strings.Count(v.View(), "\n") + 1; got != 2 {
		t.Fatalf("got %d rows, want 2", got)
	}
}

func TestLibraryPickerNavigation(t *testing.T) {
	t.Parallel()
	p := NewLibraryPicker([]library.IndexEntry{
		{ID: "a", Name: "First", Race: "Terran"},
		{ID: "b", Name: "Second", Race: "Zerg"},
	})

	p.MoveUp()
	if p.Cursor != 0 {
		t.Fatalf("cursor = %d after MoveUp at top, want 0", p.Cursor)
	}
	p.MoveDown()
	if got := p.Selected(); got == nil || got.ID != "b" {
		t.Fatalf("selected = %v, want b", got)
	}
	p.MoveDown()
	if p.Cursor != 1 {
		t.Fatalf("cursor = %d after MoveDown at bottom, want 1", p.Cursor)
	}

	out := p.View()
	if !strings.Contains(out, "First") || !strings.Contains(out, "Second") {
		t.Errorf("picker missing entries:\n%s", out)
	}
}

func TestLibraryPickerEmpty(t *testing.T) {
	t.Parallel()
	p := NewLibraryPicker(nil)
	if p.Selected() != nil {
		t.Fatal("empty picker returned a selection")
	}
	if !strings.Contains(p.View(), "empty") {
		t.Errorf("empty picker view = %q", p.View())
	}
}

func TestFooterBindings(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{Width: 100, Bindings: TimerFooterBindings(km)}

	out := f.View()
	for _, want := range []string{"space", "start/pause", "reset", "library", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q:\n%s", want, out)
		}
	}
}

func TestFooterCompactDropsDescriptions(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{Width: 30, Bindings: TimerFooterBindings(km)}

	out := f.View()
	if strings.Contains(out, "start/pause") {
		t.Errorf("compact footer still shows descriptions:\n%s", out)
	}
	if !strings.Contains(out, "space") {
		t.Errorf("compact footer missing key hint:\n%s", out)
	}
}

func stepFor(time string, supply float64, action string) build.BuildStep {
	return build.BuildStep{Time: time, Supply: supply, Action: action}
}
