// Package ui renders plain-terminal output for the non-interactive commands
// (validate, list, fetch). The interactive timer lives in internal/tui.
package ui

import (
	"fmt"
	"os"

	"github.com/mkellett/spawnclock/internal/build"
	"github.com/mkellett/spawnclock/internal/library"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(os.Stderr, dim+msg+reset)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

// ValidateResult reports a validation outcome for a single document.
func (p *Printer) ValidateResult(source string, doc *build.BuildDocument, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, red+bold+"✗ %s"+reset+" — %v\n", source, err)
		return
	}
	fmt.Fprintf(os.Stderr, green+bold+"✓ %s"+reset+dim+" (%s, %s, %d steps)"+reset+"\n",
		source, doc.Name, doc.Race, len(doc.Steps))
}

// Library prints the registry as an aligned table.
func (p *Printer) Library(entries []library.IndexEntry) {
	if len(entries) == 0 {
		p.Info("library is empty — try `spawnclock fetch <url>`")
		return
	}
	idWidth := len("ID")
	for _, e := range entries {
		if len(e.ID) > idWidth {
			idWidth = len(e.ID)
		}
	}
	fmt.Fprintf(os.Stderr, bold+"%-*s  %-8s  %s"+reset+"\n", idWidth, "ID", "RACE", "NAME")
	for _, e := range entries {
		fmt.Fprintf(os.Stderr, cyan+"%-*s"+reset+"  %-8s  %s\n", idWidth, e.ID, e.Race, e.Name)
	}
}

// Fetched reports a successful library ingest.
func (p *Printer) Fetched(id string, doc *build.BuildDocument) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ saved %s"+reset+dim+" (%s, %s, %d steps)"+reset+"\n",
		id, doc.Name, doc.Race, len(doc.Steps))
}

// Removed reports a registry removal.
func (p *Printer) Removed(id string) {
	fmt.Fprintf(os.Stderr, yellow+"removed %s"+reset+"\n", id)
}
