package crawlkit

import "context"

// VisitedTracker records which resource identifiers have been claimed
// for crawling within one crawl run.
type VisitedTracker interface {
	// Claim atomically admits the caller to process id.
	// Exactly one caller among any number of concurrent callers for
	// the same id observes true; all others observe false and must
	// not fetch or recurse on that identifier.
	Claim(id string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
