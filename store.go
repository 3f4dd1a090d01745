package crawlkit

import "context"

// ResourceStore persists fetched content keyed by resource identifier.
// The store is shared mutably across all concurrent branches of one
// crawl; concurrent writes to the same identifier cannot occur because
// the visited tracker admits at most one claimant per identifier.
type ResourceStore interface {
	// Exists reports whether content for id has been persisted.
	Exists(ctx context.Context, id string) bool

	// Read returns the persisted content for id.
	// Returns ENOTFOUND if no content has been persisted.
	Read(ctx context.Context, id string) (string, error)

	// Write persists content for id. Write failures are reported,
	// not retried.
	Write(ctx context.Context, id string, content string) error
}
