package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromURL_OK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Write([]byte(`{"name":"n","race":"r","steps":[]}`))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	data, err := c.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL returned error: %v", err)
	}
	if string(data) != `{"name":"n","race":"r","steps":[]}` {
		t.Errorf("unexpected body: %s", data)
	}
}

func TestFromURL_Non2xx(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	_, err := c.FromURL(context.Background(), srv.URL)
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("got %T (%v), want *FetchError", err, err)
	}
}

func TestFromURL_ConnectionRefused(t *testing.T) {
	t.Parallel()
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(time.Second)
	_, err := c.FromURL(context.Background(), url)
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("got %T (%v), want *FetchError", err, err)
	}
	if ferr.Source != url {
		t.Errorf("Source = %q, want %q", ferr.Source, url)
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "build.json")
	if err := os.WriteFile(path, []byte(`{"name":"n"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile returned error: %v", err)
	}
	if string(data) != `{"name":"n"}` {
		t.Errorf("unexpected contents: %s", data)
	}

	_, err = FromFile(filepath.Join(dir, "missing.json"))
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("missing file: got %T (%v), want *FetchError", err, err)
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/build.json", true},
		{"http://localhost:8080/b", true},
		{"./builds/reaper.json", false},
		{"reaper-expand", false},
		{"ftp://example.com/x", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
