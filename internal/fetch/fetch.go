// Package fetch retrieves raw build-order JSON from remote URLs or local
// files. It hands back bytes, never documents: callers run the validator so
// an unreadable source (FetchError) stays distinguishable from a malformed
// document (ParseError/ValidationError).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// FetchError reports an unreadable source: network failure, non-2xx status,
// or an unreadable file. It is user-facing and non-fatal; a failed fetch
// never disturbs the active document.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// maxDocumentBytes caps how much of a response body is read. Build-order
// documents are a few kilobytes; anything larger is not one.
const maxDocumentBytes = 1 << 20

// Client fetches build-order documents over HTTP.
type Client struct {
	http *http.Client
}

// NewClient creates a fetch client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// FromURL fetches raw document bytes from an http(s) URL.
func (c *Client) FromURL(ctx context.Context, rawURL string) ([]byte, error) {
	log.Debug().Str("url", rawURL).Msg("fetching build order")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{Source: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Source: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Source: rawURL,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, &FetchError{Source: rawURL, Err: err}
	}
	log.Debug().Str("url", rawURL).Int("bytes", len(data)).Msg("fetched build order")
	return data, nil
}

// FromFile reads raw document bytes from a local file.
func FromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{Source: path, Err: err}
	}
	return data, nil
}

// IsURL reports whether source looks like a remote URL rather than a file
// path or library id.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
