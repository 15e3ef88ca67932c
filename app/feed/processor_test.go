package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const processorFixture = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>Post</title>
      <link>https://example.com/post</link>
    </item>
  </channel>
</rss>`

func newTestProcessor(server *httptest.Server, ttl time.Duration) *Processor {
	fetcher := NewFetcher(server.Client(), "feedgate/test", 5*time.Second)
	return NewProcessor(fetcher, NewNormalizer(), NewCache(ttl))
}

func TestProcessorEndToEnd(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(processorFixture))
	}))
	defer server.Close()

	processor := newTestProcessor(server, 5*time.Minute)

	data, err := processor.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if data.Title != "Test Feed" {
		t.Errorf("Expected feed title, got: %s", data.Title)
	}
	if len(data.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(data.Items))
	}

	// Second run within the TTL must not hit the upstream again
	if _, err := processor.Run(context.Background(), server.URL); err != nil {
		t.Fatalf("Expected no error on cached run, got: %v", err)
	}
	if hits != 1 {
		t.Errorf("Expected 1 upstream hit, got %d", hits)
	}
}

func TestProcessorUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	processor := newTestProcessor(server, 5*time.Minute)

	if _, err := processor.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for upstream failure")
	}
}

func TestProcessorParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not XML"))
	}))
	defer server.Close()

	processor := newTestProcessor(server, 5*time.Minute)

	if _, err := processor.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for malformed feed body")
	}
}
