package crawlkit

import "context"

// LinkExtractor produces the outbound resource identifiers referenced
// by a piece of content. The returned sequence is finite and ordered;
// trivially-equal duplicates need not be removed because the visited
// tracker deduplicates at claim time.
type LinkExtractor interface {
	// Extract parses content and returns referenced identifiers.
	// The id is the content's own identifier, used to resolve
	// relative references.
	Extract(id string, content string) ([]string, error)
}

// SeedSource discovers crawl seed identifiers for a site.
// Implementations hide the discovery mechanism (sitemaps, feeds).
type SeedSource interface {
	Discover(ctx context.Context, sourceURL string) ([]string, error)
}
