package crawlkit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus classifies the result of one crawl attempt.
type OutcomeStatus int

// Outcome statuses for a crawl attempt.
const (
	StatusFetched OutcomeStatus = iota
	StatusCached
	StatusSkipped
	StatusFailed
)

// String returns the status name.
func (s OutcomeStatus) String() string {
	switch s {
	case StatusFetched:
		return "fetched"
	case StatusCached:
		return "cached"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// SkipReason explains why a crawl attempt was skipped.
type SkipReason int

// Skip reasons.
const (
	SkipNone SkipReason = iota
	SkipAlreadyVisited
	SkipLimitReached
)

// String returns the reason name.
func (r SkipReason) String() string {
	switch r {
	case SkipAlreadyVisited:
		return "already_visited"
	case SkipLimitReached:
		return "limit_reached"
	}
	return ""
}

// Outcome is the per-identifier result of a crawl attempt.
type Outcome struct {
	ID     string
	Status OutcomeStatus
	Reason SkipReason

	// Depth is the remaining depth when the node was processed.
	Depth int

	Err error
}

// Report aggregates outcomes across one top-level crawl.
// It is safe for concurrent use by the crawl branches that feed it.
type Report struct {
	RunID    string
	Seed     string
	MaxDepth int
	Started  time.Time
	Finished time.Time

	mu       sync.Mutex
	outcomes map[string]Outcome
	fetched  int
	cached   int
	skipped  int
	failed   int
}

// NewReport creates an empty report for one crawl run.
func NewReport(seed string, maxDepth int) *Report {
	return &Report{
		RunID:    uuid.New().String(),
		Seed:     seed,
		MaxDepth: maxDepth,
		Started:  time.Now(),
		outcomes: make(map[string]Outcome),
	}
}

// Record folds an outcome into the report. Every claimed identifier
// appears exactly once in Outcomes; an already-visited skip only bumps
// the skipped counter because the identifier's canonical outcome
// belongs to its claimant.
func (r *Report) Record(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch o.Status {
	case StatusFetched:
		r.fetched++
	case StatusCached:
		r.cached++
	case StatusFailed:
		r.failed++
	case StatusSkipped:
		r.skipped++
		if o.Reason == SkipAlreadyVisited {
			return
		}
	}
	r.outcomes[o.ID] = o
}

// Finish stamps the report's completion time.
func (r *Report) Finish() {
	r.Finished = time.Now()
}

// Outcome returns the recorded outcome for id.
func (r *Report) Outcome(id string) (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.outcomes[id]
	return o, ok
}

// Outcomes returns a copy of the per-identifier outcomes.
func (r *Report) Outcomes() map[string]Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Outcome, len(r.outcomes))
	for id, o := range r.outcomes {
		out[id] = o
	}
	return out
}

// Fetched returns the number of resources fetched from their source.
func (r *Report) Fetched() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetched
}

// Cached returns the number of resources served from the store.
func (r *Report) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cached
}

// Skipped returns the number of skipped crawl attempts.
func (r *Report) Skipped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

// Failed returns the number of failed crawl attempts.
func (r *Report) Failed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Errs returns every error captured in the report.
// Order is unspecified.
func (r *Report) Errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for _, o := range r.outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errs
}

// OK reports whether the crawl completed without failures.
func (r *Report) OK() bool {
	return r.Failed() == 0
}
