package adapterout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	portout "pathora/internal/modules/resources/port/out"
	"pathora/internal/platform/slug"
)

const fetchTimeout = 2 * time.Minute

// HTTPFileFetcher downloads resource files into the cache dir, keyed by a
// slug of the URL. Resources are public files, so no auth header is sent.
type HTTPFileFetcher struct {
	cacheDir string
	httpc    *http.Client
}

var _ portout.FileFetcher = (*HTTPFileFetcher)(nil)

func NewHTTPFileFetcher(cacheDir string) *HTTPFileFetcher {
	return &HTTPFileFetcher{cacheDir: cacheDir, httpc: &http.Client{Timeout: fetchTimeout}}
}

func (f *HTTPFileFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	target := filepath.Join(f.cacheDir, slug.Make(url)+filepath.Ext(url))
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := f.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	tmp := target + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create cache file: %w", err)
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write cache file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", fmt.Errorf("finalize cache file: %w", err)
	}
	return target, nil
}
