// Package telemetry provides a JSONL event stream for recording timer
// sessions. Document loads, clock transitions, and step completions are
// recorded as structured JSON events, making practice sessions auditable and
// analyzable after the fact.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindSessionDone  = "session_done"
	KindDocLoaded    = "doc_loaded"
	KindDocRejected  = "doc_rejected"
	KindTimerStarted = "timer_started"
	KindTimerPaused  = "timer_paused"
	KindTimerReset   = "timer_reset"
	KindStepComplete = "step_complete"
)

// Event represents a single telemetry record. Each event carries a
// timestamp, a kind tag, and optional context (the active build, the
// game-clock position) along with arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Build     string    `json:"build,omitempty"`
	Clock     string    `json:"clock,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent
// use. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record is a convenience wrapper stamping the current time. Errors are
// dropped; telemetry must never disturb the session it observes.
func (e *Emitter) Record(kind, buildName, clock string, data any) {
	_ = e.Emit(Event{
		Timestamp: time.Now(),
		Kind:      kind,
		Build:     buildName,
		Clock:     clock,
		Data:      data,
	})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
