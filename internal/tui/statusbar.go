package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CompactWidth is the terminal width below which views drop low-priority
// segments.
const CompactWidth = 60

// StatusBar renders the persistent top bar with build name, race, the
// active supply target, and the game clock.
type StatusBar struct {
	Name   string
	Race   string
	Supply string // active step's supply target, empty when none
	Clock  string // formatted elapsed game time
	Paused bool
	Flash  string // one-shot step-completion cue text
	Width  int
}

// View renders the status bar as a single line. Narrow terminals drop the
// race and supply segments before touching the name and clock.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	left := styleStatusLabel.Render("⏱ ") + styleStatusValue.Render(s.Name)
	if !compact && s.Race != "" {
		left += styleStatusValue.Render(" ") + styleStatusLabel.Render(s.Race)
	}
	if s.Paused {
		left += styleStatusPaused.Render("  ⏸ PAUSED")
	}
	if s.Flash != "" {
		left += styleStatusBar.Render("  ") + styleFlash.Background(colorSurface).Render("✓ "+s.Flash)
	}

	var right string
	if !compact && s.Supply != "" {
		right += styleStatusLabel.Render("supply ") + styleStatusValue.Render(s.Supply) + styleStatusValue.Render("  ")
	}
	right += styleStatusClock.Render(s.Clock)

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + styleStatusValue.Render(strings.Repeat(" ", gap)) + right
	return styleStatusBar.Width(s.Width).Render(line)
}

// SetSupply formats a numeric supply target for display.
func (s *StatusBar) SetSupply(supply float64) {
	s.Supply = fmt.Sprintf("%g", supply)
}
