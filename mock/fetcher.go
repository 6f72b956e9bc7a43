// Package mock provides function-field mock implementations of the
// novelgrab interfaces for testing.
package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of novelgrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*novelgrab.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*novelgrab.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
