package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/robklaiss/foteam/internal/repository"
)

// HTTPFetcher downloads images from publicly reachable URLs.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}, maxBytes: maxBytes}
}
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported protocol: %s", parsed.Scheme)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}
	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", f.maxBytes)
	}
	return data, nil
}

type blobStore interface {
	FetchFile(ctx context.Context, url string) *repository.RepositoryResponse
}

// StoreFetcher reads images back through the blob store that holds them,
// for stores whose links are not plain downloadable URLs.
type StoreFetcher struct {
	store blobStore
}

func NewStoreFetcher(store blobStore) *StoreFetcher {
	return &StoreFetcher{store: store}
}
func (f *StoreFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp := f.store.FetchFile(ctx, url)
	if !resp.Success {
		if resp.Errors != nil {
			return nil, resp.Errors
		}
		return nil, errors.New("blob store returned no content")
	}
	return resp.Data.Content, nil
}
