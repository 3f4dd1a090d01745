package mock

import (
	"context"

	"github.com/fwojciec/crawlkit"
)

var _ crawlkit.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of crawlkit.LinkExtractor.
type LinkExtractor struct {
	ExtractFn func(id string, content string) ([]string, error)
}

func (e *LinkExtractor) Extract(id string, content string) ([]string, error) {
	return e.ExtractFn(id, content)
}

var _ crawlkit.Processor = (*Processor)(nil)

// Processor is a mock implementation of crawlkit.Processor.
type Processor struct {
	ProcessFn func(id string, content string) (string, error)
}

func (p *Processor) Process(id string, content string) (string, error) {
	return p.ProcessFn(id, content)
}

var _ crawlkit.SeedSource = (*SeedSource)(nil)

// SeedSource is a mock implementation of crawlkit.SeedSource.
type SeedSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *SeedSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}
