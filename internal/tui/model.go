package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/mkellett/spawnclock/internal/build"
	"github.com/mkellett/spawnclock/internal/fetch"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/schedule"
	"github.com/mkellett/spawnclock/internal/telemetry"
)

// tickInterval is the game-clock resolution.
const tickInterval = time.Second

// flashTicks is how many clock ticks a step-completion flash stays visible.
const flashTicks = 3

// Options configures a new timer model.
type Options struct {
	Source  string // where the document came from (library id, path, URL)
	Bell    bool
	Clock   clockwork.Clock // nil means the real wall clock
	Emitter *telemetry.Emitter
}

// AppModel is the root BubbleTea model. All mutation happens here, on tick,
// key, and load-completion messages; the scheduling math itself stays in the
// pure schedule package.
type AppModel struct {
	Doc     *build.BuildDocument
	Source  string
	Windows []schedule.Window

	Stopwatch *schedule.Stopwatch
	Tracker   *schedule.BoundaryTracker

	StatusBar StatusBar
	Steps     StepsView
	Picker    *LibraryPicker
	Keys      KeyMap

	Lib     *library.Library
	Emitter *telemetry.Emitter

	Bell     bool
	Width    int
	Height   int
	Messages []string // recent info/error messages
	Done     bool

	FlashLeft int // ticks remaining on the current completion flash
}

// NewAppModel creates a timer model for the given document.
func NewAppModel(doc *build.BuildDocument, lib *library.Library, opts Options) AppModel {
	m := AppModel{
		Source:    opts.Source,
		Stopwatch: schedule.NewStopwatch(opts.Clock),
		Tracker:   schedule.NewBoundaryTracker(0),
		Keys:      DefaultKeyMap(),
		Lib:       lib,
		Emitter:   opts.Emitter,
		Bell:      opts.Bell,
	}
	m.applyDocument(doc, opts.Source)
	return m
}

// Init starts the tick timer.
func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		m.Steps.Width = msg.Width
		m.Steps.Height = m.stepsHeight()
		if m.Picker != nil {
			m.Picker.Width = msg.Width
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTick:
		return m.handleTick()

	case MsgDocumentLoaded:
		m.Picker = nil
		if msg.Err != nil {
			// The previous document and clock state stay untouched.
			m.addMessage("load failed: %v", msg.Err)
			m.Emitter.Record(telemetry.KindDocRejected, m.docName(), m.StatusBar.Clock,
				map[string]any{"source": msg.Source, "error": msg.Err.Error()})
			return m, nil
		}
		m.applyDocument(msg.Doc, msg.Source)
		m.cacheDocument(msg.Doc, msg.Source)
		m.addMessage("loaded %s (%s)", msg.Doc.Name, msg.Source)
		m.Emitter.Record(telemetry.KindDocLoaded, msg.Doc.Name, m.StatusBar.Clock,
			map[string]any{"source": msg.Source, "steps": len(msg.Doc.Steps)})

	case MsgBuildFileChanged:
		return m, loadFromFileCmd(msg.Path)
	}

	return m, nil
}

// handleTick advances the projection by one game-clock second and
// reschedules exactly one follow-up tick.
func (m AppModel) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}

	if m.FlashLeft > 0 {
		m.FlashLeft--
		if m.FlashLeft == 0 {
			m.StatusBar.Flash = ""
		}
	}

	elapsed := m.Stopwatch.ElapsedSeconds()
	if m.Stopwatch.Running() {
		crossed := m.Tracker.Advance(m.Windows, elapsed)
		for _, idx := range crossed {
			step := m.Doc.Steps[idx]
			m.StatusBar.Flash = step.Action
			m.FlashLeft = flashTicks
			m.Emitter.Record(telemetry.KindStepComplete, m.docName(), schedule.FormatElapsed(elapsed),
				map[string]any{"step": idx, "action": step.Action})
			if m.Bell {
				cmds = append(cmds, bellCmd())
			}
		}
	}

	m.project(elapsed)
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Picker mode overrides normal keys.
	if m.Picker != nil {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Emitter.Record(telemetry.KindSessionDone, m.docName(), m.StatusBar.Clock, nil)
		m.Done = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Toggle):
		m.Stopwatch.Toggle()
		if m.Stopwatch.Running() {
			m.Emitter.Record(telemetry.KindTimerStarted, m.docName(), m.StatusBar.Clock, nil)
		} else {
			m.Emitter.Record(telemetry.KindTimerPaused, m.docName(), m.StatusBar.Clock, nil)
		}
		m.project(m.Stopwatch.ElapsedSeconds())

	case key.Matches(msg, m.Keys.Reset):
		m.Stopwatch.Reset()
		m.Tracker.Rebaseline(0)
		m.StatusBar.Flash = ""
		m.FlashLeft = 0
		m.Emitter.Record(telemetry.KindTimerReset, m.docName(), "0:00", nil)
		m.project(0)

	case key.Matches(msg, m.Keys.Library):
		entries, err := m.Lib.List()
		if err != nil {
			m.addMessage("library unavailable: %v", err)
			return m, nil
		}
		m.Picker = NewLibraryPicker(entries)
		m.Picker.Width = m.Width

	case key.Matches(msg, m.Keys.Bell):
		m.Bell = !m.Bell
		if m.Bell {
			m.addMessage("bell on")
		} else {
			m.addMessage("bell off")
		}
	}

	return m, nil
}

// handlePickerKey processes keys while the library picker is open.
func (m AppModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Done = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Back):
		m.Picker = nil
	case key.Matches(msg, m.Keys.Up):
		m.Picker.MoveUp()
	case key.Matches(msg, m.Keys.Down):
		m.Picker.MoveDown()
	case key.Matches(msg, m.Keys.Enter):
		if e := m.Picker.Selected(); e != nil {
			return m, loadFromLibraryCmd(m.Lib, e.ID)
		}
		m.Picker = nil
	}
	return m, nil
}

// applyDocument replaces the active document and rebaselines boundary
// notifications at the current clock position, so boundaries already in the
// past never fire for the new document.
func (m *AppModel) applyDocument(doc *build.BuildDocument, source string) {
	m.Doc = doc
	m.Source = source
	m.Windows = schedule.Windows(doc)
	elapsed := m.Stopwatch.ElapsedSeconds()
	m.Tracker.Rebaseline(elapsed)
	m.StatusBar.Name = m.docName()
	m.StatusBar.Race = ""
	if doc != nil {
		m.StatusBar.Race = doc.Race
	}
	m.project(elapsed)
}

// cacheDocument persists the new document as the last-used build. Failures
// degrade to a message; caching is never load-bearing.
func (m *AppModel) cacheDocument(doc *build.BuildDocument, source string) {
	if m.Lib == nil {
		return
	}
	if err := m.Lib.SaveLast(doc); err != nil {
		m.addMessage("could not cache build: %v", err)
		return
	}
	state, err := m.Lib.LoadState()
	if err != nil {
		return
	}
	state.LastSource = source
	if !fetch.IsURL(source) && !strings.ContainsAny(source, "/\\") {
		state.LastBuildID = source
	}
	_ = m.Lib.SaveState(state)
}

// project recomputes the view model at the given elapsed time.
func (m *AppModel) project(elapsed float64) {
	vm := schedule.Project(m.Doc, elapsed)
	m.Steps.SetViewModel(vm)
	m.StatusBar.Clock = vm.Clock
	m.StatusBar.Paused = !m.Stopwatch.Running() && elapsed > 0
	m.StatusBar.Supply = ""
	for _, e := range vm.Entries {
		if e.State == schedule.StateActive {
			m.StatusBar.SetSupply(e.Step.Supply)
			break
		}
	}
}

func (m AppModel) docName() string {
	if m.Doc == nil {
		return ""
	}
	return m.Doc.Name
}

// addMessage appends a formatted message to the messages log.
func (m *AppModel) addMessage(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	m.Messages = append(m.Messages, msg)
}

// stepsHeight computes rows available for the steps view: everything minus
// status bar, message line, and footer.
func (m AppModel) stepsHeight() int {
	h := m.Height - 4
	if h < 0 {
		return 0
	}
	return h
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	var sections []string
	sections = append(sections, m.StatusBar.View())

	if m.Picker != nil {
		sections = append(sections, m.Picker.View())
	} else {
		sections = append(sections, m.Steps.View())
	}

	if n := len(m.Messages); n > 0 {
		sections = append(sections, styleMessage.Width(m.Width).Render(m.Messages[n-1]))
	}

	sections = append(sections, m.buildFooter().View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// buildFooter creates the footer with appropriate bindings.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	if m.Picker != nil {
		f.Bindings = PickerFooterBindings(m.Keys)
	} else {
		f.Bindings = TimerFooterBindings(m.Keys)
	}
	return f
}

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return MsgTick{Time: t}
	})
}

// bellCmd rings the terminal bell for a step-completion cue. The escape goes
// to stderr so it never interleaves with the renderer's stdout stream.
func bellCmd() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}

// loadFromLibraryCmd asynchronously loads a registry build.
func loadFromLibraryCmd(lib *library.Library, id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := lib.Get(id)
		return MsgDocumentLoaded{Doc: doc, Err: err, Source: id}
	}
}

// loadFromFileCmd asynchronously (re)loads a build file from disk.
func loadFromFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := fetch.FromFile(path)
		if err != nil {
			return MsgDocumentLoaded{Err: err, Source: path}
		}
		doc, err := build.ParseDocument(data)
		return MsgDocumentLoaded{Doc: doc, Err: err, Source: path}
	}
}
