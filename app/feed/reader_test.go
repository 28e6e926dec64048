package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const readerTestFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Reader Test Feed</title>
    <link>https://example.com</link>
    <description>Reader Test Description</description>
    <item>
      <title>Item</title>
      <link>https://example.com/item</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestHTTPReaderFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(readerTestFeed))
	}))
	defer server.Close()

	reader := NewHTTPReader(5*time.Second, "feedgram/test")
	raw, err := reader.Fetch(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if raw.Title != "Reader Test Feed" {
		t.Errorf("Expected title 'Reader Test Feed', got: %s", raw.Title)
	}
	if len(raw.Items) != 1 {
		t.Errorf("Expected 1 item, got: %d", len(raw.Items))
	}
	if gotUserAgent != "feedgram/test" {
		t.Errorf("Expected User-Agent 'feedgram/test', got: %s", gotUserAgent)
	}
}

func TestHTTPReaderFetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	reader := NewHTTPReader(5*time.Second, "feedgram/test")
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-2xx response")
	}
}

func TestHTTPReaderFetchUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not a feed</body></html>"))
	}))
	defer server.Close()

	reader := NewHTTPReader(5*time.Second, "feedgram/test")
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for unparseable body")
	}
}

func TestHTTPReaderFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	reader := NewHTTPReader(time.Second, "feedgram/test")
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for unreachable server")
	}
}
