package crawl

import (
	"sync"

	"github.com/fwojciec/crawlkit"
	"github.com/fwojciec/crawlkit/bloom"
)

// Compile-time interface verification.
var (
	_ crawlkit.VisitedTracker = (*Visited)(nil)
	_ crawlkit.VisitedTracker = (*ApproxVisited)(nil)
)

// Visited is an exact, concurrency-safe visited set with atomic
// claim-or-skip semantics. The claim is linearizable per identifier:
// no two callers ever both observe an admission for the same id.
type Visited struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

// NewVisited creates an empty visited set.
func NewVisited() *Visited {
	return &Visited{claimed: make(map[string]struct{})}
}

// Claim atomically admits the caller to process id.
// Returns false if the identifier has already been claimed.
func (v *Visited) Claim(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.claimed[id]; ok {
		return false
	}
	v.claimed[id] = struct{}{}
	return true
}

// Len returns the number of claimed identifiers.
func (v *Visited) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.claimed)
}

// ApproxVisited is a constant-memory visited set backed by a Bloom
// filter, for crawls too large to hold every identifier in memory.
// A false positive skips a never-visited identifier; it never admits
// the same identifier twice, so the at-most-one-fetch guarantee holds.
type ApproxVisited struct {
	mu   sync.Mutex
	seen *bloom.Filter
}

// NewApproxVisited creates a visited set sized for n expected
// identifiers with the given false positive rate.
func NewApproxVisited(n uint, fpRate float64) *ApproxVisited {
	return &ApproxVisited{seen: bloom.NewFilter(n, fpRate)}
}

// Claim atomically admits the caller to process id.
func (v *ApproxVisited) Claim(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seen.Has(id) {
		return false
	}
	v.seen.Add(id)
	return true
}

// EstimatedCount returns the approximate number of claimed identifiers.
func (v *ApproxVisited) EstimatedCount() uint {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seen.EstimatedCount()
}
