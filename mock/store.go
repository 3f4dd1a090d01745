package mock

import (
	"context"

	"github.com/fwojciec/crawlkit"
)

var _ crawlkit.ResourceStore = (*ResourceStore)(nil)

// ResourceStore is a mock implementation of crawlkit.ResourceStore.
type ResourceStore struct {
	ExistsFn func(ctx context.Context, id string) bool
	ReadFn   func(ctx context.Context, id string) (string, error)
	WriteFn  func(ctx context.Context, id string, content string) error
}

func (s *ResourceStore) Exists(ctx context.Context, id string) bool {
	return s.ExistsFn(ctx, id)
}

func (s *ResourceStore) Read(ctx context.Context, id string) (string, error) {
	return s.ReadFn(ctx, id)
}

func (s *ResourceStore) Write(ctx context.Context, id string, content string) error {
	return s.WriteFn(ctx, id, content)
}
