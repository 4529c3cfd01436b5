package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — flash/cue
	colorSuccess     = lipgloss.Color("#00E676") // Green — completed
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
	colorBlue        = lipgloss.Color("#5B8DEF") // Blue — active step
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status icons for step states.
const (
	iconDone     = "✓"
	iconActive   = "▶"
	iconUpcoming = "·"
)

// Status bar styles — visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)

	styleStatusClock = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorAccent).
				Bold(true)

	styleStatusPaused = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorDanger).
				Bold(true)
)

// Step row styles.
var (
	styleStepDone = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleStepActive = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleStepUpcoming = lipgloss.NewStyle().
				Foreground(colorMutedLight)

	styleStepTime = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleStepSupply = lipgloss.NewStyle().
			Foreground(colorBlue)

	// styleSelectionIndicator styles the left-edge indicator for the
	// active row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Flash styles for one-shot step-completion cues.
var styleFlash = lipgloss.NewStyle().
	Foreground(colorAccent).
	Bold(true)

// Message log style.
var styleMessage = lipgloss.NewStyle().
	Foreground(colorMuted)

// Picker overlay styles.
var (
	stylePickerBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	stylePickerTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	stylePickerSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	stylePickerNormal = lipgloss.NewStyle().
				Foreground(colorMutedLight)
)

// Footer styles — top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
