// Package fetch downloads single remote files over HTTP(S).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultTimeout = 60 * time.Second
	// maxBodySize bounds downloads; environment specs are a few kilobytes.
	maxBodySize = 16 << 20
)

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher using net/http.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a default timeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: defaultTimeout})
}

// NewFetcherWithClient creates a Fetcher using client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch returns the body of the resource at url. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(err, "status", fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	if len(body) > maxBodySize {
		err := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(err, "reason", "response too large")
	}
	return body, nil
}
