// Package mock provides function-field mock implementations of the
// crawlkit interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/crawlkit"
)

var _ crawlkit.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of crawlkit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, id string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, id string) (string, error) {
	return f.FetchFn(ctx, id)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
