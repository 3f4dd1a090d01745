package crawlkit

import "context"

// Fetcher retrieves raw content for a resource identifier.
// Implementations own the transport (plain HTTP, a proxied client, a
// test double) and any retry policy beyond what the caller configures.
type Fetcher interface {
	// Fetch retrieves the content for id.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, id string) (content string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Processor transforms fetched content before it is persisted.
// Processors form an ordered pipeline; each stage receives the output
// of the previous one. A processor error fails the resource's crawl
// outcome and nothing is persisted for it.
type Processor interface {
	Process(id string, content string) (string, error)
}
