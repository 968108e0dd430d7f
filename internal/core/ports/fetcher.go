package ports

import "context"

// Fetcher downloads single files over HTTP(S).
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch returns the body of the resource at url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
