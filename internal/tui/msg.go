package tui

import (
	"time"

	"github.com/mkellett/spawnclock/internal/build"
)

// MsgTick drives the one-second game-clock timer. The tick command
// reschedules itself exactly once per received tick, so starting the clock
// repeatedly never stacks duplicate timers.
type MsgTick struct {
	Time time.Time
}

// MsgDocumentLoaded is sent when an asynchronous document load finishes.
// On success Doc replaces the active document; on failure Err is surfaced
// and the previous document and clock state are left untouched.
type MsgDocumentLoaded struct {
	Doc    *build.BuildDocument
	Err    error
	Source string // library id, file path, or URL the load came from
}

// MsgBuildFileChanged is sent by the file watcher when the source build file
// was edited on disk. The model responds with a reload command.
type MsgBuildFileChanged struct {
	Path string
}
