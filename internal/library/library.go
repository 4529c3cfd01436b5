// Package library manages the on-disk build-order collection: a registry of
// known builds under builds/, an index mapping build ids to their documents,
// a verbatim cache of the last-used document, and a small TOML session state
// file. A built-in default build (embedded at compile time) is served when
// nothing has been cached yet.
package library

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/mkellett/spawnclock/internal/build"
)

//go:embed default.json
var defaultBuildJSON []byte

const (
	buildsDirName = "builds"
	indexFileName = "index.json"
	lastFileName  = "last.json"
)

// ErrNotFound is returned when a build id has no registry entry.
var ErrNotFound = errors.New("build not found in library")

// IndexEntry is one registry record mapping a build id to its document.
// Source records where the document came from (URL or file path), when known.
type IndexEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Race   string `json:"race"`
	Source string `json:"source,omitempty"`
}

// Library is a build-order collection rooted at a directory
// (default ~/.spawnclock).
type Library struct {
	Dir string
}

// DefaultDir returns the default library location under the user's home
// directory, or a relative fallback when home cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spawnclock"
	}
	return filepath.Join(home, ".spawnclock")
}

// Open creates a Library rooted at dir, creating the directory layout if
// needed. An empty dir selects DefaultDir.
func Open(dir string) (*Library, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(filepath.Join(dir, buildsDirName), 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}
	return &Library{Dir: dir}, nil
}

// Default returns the embedded built-in build order.
func Default() (*build.BuildDocument, error) {
	return build.ParseDocument(defaultBuildJSON)
}

// LoadLast returns the cached last-used document, or the embedded default
// when nothing has been cached yet.
func (l *Library) LoadLast() (*build.BuildDocument, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, lastFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return nil, fmt.Errorf("reading cached build: %w", err)
	}
	doc, err := build.ParseDocument(data)
	if err != nil {
		// A corrupt cache should not wedge startup; fall back to the
		// default and let the next save overwrite it.
		log.Warn().Err(err).Msg("cached build is invalid, using default")
		return Default()
	}
	return doc, nil
}

// SaveLast caches the document verbatim as the last-used build.
func (l *Library) SaveLast(doc *build.BuildDocument) error {
	if doc == nil || len(doc.Raw) == 0 {
		return errors.New("no document bytes to cache")
	}
	return writeFileAtomic(filepath.Join(l.Dir, lastFileName), doc.Raw)
}

// Get loads a registry build by id.
func (l *Library) Get(id string) (*build.BuildDocument, error) {
	data, err := os.ReadFile(l.buildPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading build %q: %w", id, err)
	}
	return build.ParseDocument(data)
}

// Put stores a validated document under the given id and updates the index.
// The document bytes are written verbatim.
func (l *Library) Put(id string, doc *build.BuildDocument, source string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if doc == nil || len(doc.Raw) == 0 {
		return errors.New("no document bytes to store")
	}
	if err := writeFileAtomic(l.buildPath(id), doc.Raw); err != nil {
		return err
	}

	entries, err := l.List()
	if err != nil {
		return err
	}
	entry := IndexEntry{ID: id, Name: doc.Name, Race: doc.Race, Source: source}
	replaced := false
	for i := range entries {
		if entries[i].ID == id {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	log.Debug().Str("id", id).Str("name", doc.Name).Msg("stored build in library")
	return l.writeIndex(entries)
}

// Remove deletes a build and its index entry.
func (l *Library) Remove(id string) error {
	entries, err := l.List()
	if err != nil {
		return err
	}
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}
	if err := os.Remove(l.buildPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing build %q: %w", id, err)
	}
	return l.writeIndex(kept)
}

// List returns the registry entries sorted by id. A missing index file is an
// empty library, not an error.
func (l *Library) List() ([]IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading library index: %w", err)
	}
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing library index: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (l *Library) writeIndex(entries []IndexEntry) error {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling library index: %w", err)
	}
	return writeFileAtomic(filepath.Join(l.Dir, indexFileName), data)
}

func (l *Library) buildPath(id string) string {
	return filepath.Join(l.Dir, buildsDirName, id+".json")
}

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// validateID keeps build ids filesystem-safe.
func validateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid build id %q (use letters, digits, '.', '_', '-')", id)
	}
	return nil
}

// writeFileAtomic writes via temp file + rename so a crash never leaves a
// half-written document behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s into place: %w", filepath.Base(path), err)
	}
	return nil
}
