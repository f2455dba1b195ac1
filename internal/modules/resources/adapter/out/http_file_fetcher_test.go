package adapterout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	adapterout "pathora/internal/modules/resources/adapter/out"
)

func TestFetchDownloadsOnceAndCaches(t *testing.T) {
	t.Parallel()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	fetcher := adapterout.NewHTTPFileFetcher(t.TempDir())
	url := srv.URL + "/doc.pdf"

	first, err := fetcher.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	second, err := fetcher.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if first != second {
		t.Fatalf("cache paths differ: %s vs %s", first, second)
	}
	if hits.Load() != 1 {
		t.Fatalf("second fetch must hit the cache, got %d downloads", hits.Load())
	}

	raw, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(raw) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected cached content: %q", raw)
	}
}

func TestFetchPropagatesHTTPFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := adapterout.NewHTTPFileFetcher(t.TempDir())
	if _, err := fetcher.Fetch(context.Background(), srv.URL+"/missing.pdf"); err == nil {
		t.Fatalf("404 download must fail")
	}
}
