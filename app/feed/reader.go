package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Reader retrieves a remote document and parses it into a raw channel
// representation. The single-method contract keeps test doubles trivial.
type Reader interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

var _ Reader = (*HTTPReader)(nil)

// HTTPReader fetches feed documents over HTTP(S)
type HTTPReader struct {
	client    *http.Client
	parser    *gofeed.Parser
	userAgent string
}

// NewHTTPReader creates a reader with the given request timeout and
// User-Agent header
func NewHTTPReader(timeout time.Duration, userAgent string) *HTTPReader {
	return &HTTPReader{
		client:    &http.Client{Timeout: timeout},
		parser:    gofeed.NewParser(),
		userAgent: userAgent,
	}
}

// Fetch retrieves the document at url and parses it as RSS/Atom. Network
// errors, non-2xx responses and unparseable bodies all fail.
func (r *HTTPReader) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parsed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return parsed, nil
}
