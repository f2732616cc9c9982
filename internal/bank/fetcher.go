package bank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes of a bank or manifest file. The loader
// only needs this one capability, so tests can substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPFetcher fetches bank files over HTTP. Each path gets exactly one
// attempt; a slow or failed fetch degrades to the caller's fallback.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", path, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// FileFetcher reads bank files from a local directory. Paths are resolved
// relative to the root and may not escape it.
type FileFetcher struct {
	root string
}

func NewFileFetcher(root string) *FileFetcher {
	return &FileFetcher{root: root}
}

func (f *FileFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	clean := filepath.Clean("/" + path)
	return os.ReadFile(filepath.Join(f.root, clean))
}

// CompositeFetcher routes absolute http(s) URLs to an HTTPFetcher and
// everything else to a FileFetcher rooted at the banks directory.
type CompositeFetcher struct {
	http *HTTPFetcher
	file *FileFetcher
}

func NewFetcher(banksDir string, timeout time.Duration) *CompositeFetcher {
	return &CompositeFetcher{
		http: NewHTTPFetcher(timeout),
		file: NewFileFetcher(banksDir),
	}
}

func (f *CompositeFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return f.http.Fetch(ctx, path)
	}
	return f.file.Fetch(ctx, path)
}
