package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkellett/spawnclock/internal/schedule"
)

// StepsView renders the projected display sequence: the last two completed
// steps for context, the active step highlighted, and everything still to
// come. It is a pure view over the projector's output; all timing decisions
// happen in the schedule package.
type StepsView struct {
	Entries []schedule.Entry
	Width   int
	Height  int // rows available; 0 means unbounded
}

// SetViewModel replaces the display sequence.
func (v *StepsView) SetViewModel(vm schedule.ViewModel) {
	v.Entries = vm.Entries
}

// View renders the step rows.
func (v StepsView) View() string {
	if len(v.Entries) == 0 {
		return styleMessage.Render("  (no steps — load a build with 'l')")
	}

	rows := v.Entries
	if v.Height > 0 && len(rows) > v.Height {
		rows = rows[:v.Height]
	}

	var b strings.Builder
	for i, e := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.renderRow(e))
	}
	return b.String()
}

func (v StepsView) renderRow(e schedule.Entry) string {
	var icon, indicator string
	var style lipgloss.Style

	switch e.State {
	case schedule.StateDone:
		icon = iconDone
		indicator = " "
		style = styleStepDone
	case schedule.StateActive:
		icon = iconActive
		indicator = styleSelectionIndicator.Render(selectionIndicator)
		style = styleStepActive
	default:
		icon = iconUpcoming
		indicator = " "
		style = styleStepUpcoming
	}

	time := styleStepTime.Render(fmt.Sprintf("%5s", e.Step.Time))
	supply := styleStepSupply.Render(fmt.Sprintf("%4g", e.Step.Supply))
	action := style.Render(e.Step.Action)

	row := fmt.Sprintf("%s %s %s  %s  %s", indicator, style.Render(icon), time, supply, action)
	if v.Width > 0 && lipgloss.Width(row) > v.Width {
		row = truncateToWidth(row, v.Width)
	}
	return row
}

// truncateToWidth hard-clips a styled line to the given display width.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// lipgloss styles end with a reset sequence; clipping by rune risks
	// cutting an escape code, so fall back to the plain text when clipping.
	plain := stripToWidth(s, width)
	return plain
}

func stripToWidth(s string, width int) string {
	var b strings.Builder
	w := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			b.WriteRune(r)
			continue
		}
		if r == '\x1b' {
			inEscape = true
			b.WriteRune(r)
			continue
		}
		if w >= width-1 {
			b.WriteString("…")
			break
		}
		b.WriteRune(r)
		w++
	}
	return b.String() + "\x1b[0m"
}
