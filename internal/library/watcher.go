package library

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single build-order file for edits using fsnotify, so a
// build being tweaked in an editor reloads into a running timer. Events are
// debounced; editors that replace files on save (write temp + rename)
// produce bursts of create/rename events that collapse into one change.
type Watcher struct {
	Path    string
	Changes <-chan string // emits the file path once per settled change

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given build file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 4)
	w := &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself so replace-on-save editors don't drop the watch.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pendingAt time.Time
	pending := false
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.changes <- w.Path
				}
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.Path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = true
				pendingAt = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if pending && time.Since(pendingAt) >= debounce {
				pending = false
				w.changes <- w.Path
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; live reload just degrades.
		}
	}
}
