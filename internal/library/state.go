package library

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const stateFileName = "library.state.toml"

// State records the session context that survives restarts: which build was
// last active and where it came from. The document itself is cached
// separately (verbatim) in last.json.
type State struct {
	Version     int       `toml:"version"`
	LastBuildID string    `toml:"last_build_id,omitempty"`
	LastSource  string    `toml:"last_source,omitempty"`
	UpdatedAt   time.Time `toml:"updated_at"`
}

// LoadState reads the session state file from the library directory.
// Returns an empty state if the file does not exist.
func (l *Library) LoadState() (*State, error) {
	path := filepath.Join(l.Dir, stateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Version: 1}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var state State
	if err := toml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	if state.Version == 0 {
		state.Version = 1
	}
	return &state, nil
}

// SaveState writes the state file atomically (write temp + rename).
func (l *Library) SaveState(state *State) error {
	state.UpdatedAt = time.Now()
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	return writeFileAtomic(filepath.Join(l.Dir, stateFileName), data)
}
