package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadState_MissingFile(t *testing.T) {
	t.Parallel()
	lib := openTemp(t)

	state, err := lib.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.Version != 1 {
		t.Errorf("Version = %d, want 1", state.Version)
	}
	if state.LastBuildID != "" {
		t.Errorf("LastBuildID = %q, want empty", state.LastBuildID)
	}
}

func TestSaveLoadState_RoundTrip(t *testing.T) {
	t.Parallel()
	lib := openTemp(t)

	if err := lib.SaveState(&State{Version: 1, LastBuildID: "reaper-expand", LastSource: "builds/reaper.json"}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	state, err := lib.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.LastBuildID != "reaper-expand" {
		t.Errorf("LastBuildID = %q", state.LastBuildID)
	}
	if state.LastSource != "builds/reaper.json" {
		t.Errorf("LastSource = %q", state.LastSource)
	}
	if state.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped on save")
	}
}

func TestSaveState_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()
	lib := openTemp(t)
	if err := lib.SaveState(&State{Version: 1}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(lib.Dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if _, err := os.Stat(filepath.Join(lib.Dir, stateFileName)); err != nil {
		t.Errorf("state file missing: %v", err)
	}
}

func TestLoadState_Corrupt(t *testing.T) {
	t.Parallel()
	lib := openTemp(t)
	if err := os.WriteFile(filepath.Join(lib.Dir, stateFileName), []byte("version = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.LoadState(); err == nil {
		t.Error("corrupt state file did not error")
	}
}
