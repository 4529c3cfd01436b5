package tui

import (
	"fmt"
	"strings"

	"github.com/mkellett/spawnclock/internal/library"
)

// LibraryPicker is the overlay for choosing a build from the local registry.
// It exists only while open; selecting an entry issues an asynchronous load
// and the picker closes when the load message arrives.
type LibraryPicker struct {
	Entries []library.IndexEntry
	Cursor  int
	Width   int
}

// NewLibraryPicker creates a picker over the given registry entries.
func NewLibraryPicker(entries []library.IndexEntry) *LibraryPicker {
	return &LibraryPicker{Entries: entries}
}

// MoveUp moves the cursor up, clamping at the top.
func (p *LibraryPicker) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves the cursor down, clamping at the bottom.
func (p *LibraryPicker) MoveDown() {
	if p.Cursor < len(p.Entries)-1 {
		p.Cursor++
	}
}

// Selected returns the entry under the cursor, or nil for an empty library.
func (p *LibraryPicker) Selected() *library.IndexEntry {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return nil
	}
	return &p.Entries[p.Cursor]
}

// View renders the picker overlay.
func (p *LibraryPicker) View() string {
	var b strings.Builder
	b.WriteString(stylePickerTitle.Render("Build library"))
	b.WriteString("\n")

	if len(p.Entries) == 0 {
		b.WriteString(stylePickerNormal.Render("  (empty — ingest builds with `spawnclock fetch <url>`)"))
		return stylePickerBorder.Render(b.String())
	}

	for i, e := range p.Entries {
		b.WriteString("\n")
		line := fmt.Sprintf("%-8s %s", e.Race, e.Name)
		if i == p.Cursor {
			b.WriteString(styleSelectionIndicator.Render(selectionIndicator))
			b.WriteString(stylePickerSelected.Render(line))
		} else {
			b.WriteString(" ")
			b.WriteString(stylePickerNormal.Render(line))
		}
	}
	return stylePickerBorder.Render(b.String())
}
