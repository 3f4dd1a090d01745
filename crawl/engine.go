// Package crawl provides the crawl engine: a recursive, concurrent,
// depth-bounded traversal over linked resources with claim-based
// deduplication, read-through memoization, and fork-join aggregation
// of per-branch outcomes.
package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/crawlkit"
	"golang.org/x/sync/errgroup"
)

// Engine defaults.
const (
	// DefaultMaxResources caps the number of identifiers admitted per
	// run to contain pathological graphs.
	DefaultMaxResources = 1000
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressCached
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type  ProgressType
	ID    string
	Depth int
	Err   error
}

// ProgressFunc is a callback for reporting crawl progress.
// It may be called concurrently from multiple crawl branches.
type ProgressFunc func(event ProgressEvent)

// Engine orchestrates recursive crawls. Fetcher, Store, and Extractor
// are required; everything else has a usable zero value.
type Engine struct {
	Fetcher   crawlkit.Fetcher
	Store     crawlkit.ResourceStore
	Extractor crawlkit.LinkExtractor

	// Tracker, if set, is shared across Crawl invocations so repeat
	// runs skip everything already claimed. If nil, each run gets a
	// fresh exact tracker scoped to that run.
	Tracker crawlkit.VisitedTracker

	// RateLimiter, if set, throttles fetches per domain.
	RateLimiter crawlkit.DomainLimiter

	// Processors transform fetched content before it is persisted.
	Processors []crawlkit.Processor

	// Concurrency bounds in-flight fetches across the whole run,
	// uniformly regardless of crawl depth. Defaults to
	// DefaultMaxInFlight.
	Concurrency int

	// MaxResources caps admitted claims per run.
	// Defaults to DefaultMaxResources.
	MaxResources int

	// RetryDelays enables fetch retries with the given backoff
	// delays. Nil means a single attempt per fetch.
	RetryDelays []time.Duration

	Logger   *slog.Logger
	Progress ProgressFunc
}

// run holds the state shared by all branches of one top-level crawl.
type run struct {
	eng          *Engine
	tracker      crawlkit.VisitedTracker
	rt           *ReadThrough
	report       *crawlkit.Report
	maxResources int
	claims       atomic.Int64
}

// Crawl fetches seed, extracts its outbound references, and recursively
// visits them down to maxDepth. Child branches run concurrently; the
// call returns only after every descendant has settled. A failing
// branch is recorded in the report and never interrupts its siblings.
//
// On context cancellation no new fetches are issued, in-flight fetches
// settle, and the partial report is returned alongside the context
// error.
func (e *Engine) Crawl(ctx context.Context, seed string, maxDepth int) (*crawlkit.Report, error) {
	if seed == "" {
		return nil, crawlkit.Errorf(crawlkit.EINVALID, "seed resource identifier required")
	}
	if maxDepth < 0 {
		return nil, crawlkit.Errorf(crawlkit.EINVALID, "max depth must be non-negative, got %d", maxDepth)
	}
	if e.Fetcher == nil || e.Store == nil || e.Extractor == nil {
		return nil, crawlkit.Errorf(crawlkit.EINVALID, "fetcher, store, and extractor are required")
	}

	tracker := e.Tracker
	if tracker == nil {
		tracker = NewVisited()
	}

	maxResources := e.MaxResources
	if maxResources <= 0 {
		maxResources = DefaultMaxResources
	}

	r := &run{
		eng:     e,
		tracker: tracker,
		rt: &ReadThrough{
			Store:       e.Store,
			Fetcher:     e.Fetcher,
			Limiter:     e.RateLimiter,
			Processors:  e.Processors,
			RetryDelays: e.RetryDelays,
			MaxInFlight: e.Concurrency,
		},
		report:       crawlkit.NewReport(seed, maxDepth),
		maxResources: maxResources,
	}

	e.emit(ProgressEvent{Type: ProgressStarted, ID: seed, Depth: maxDepth})

	r.crawl(ctx, seed, maxDepth)

	r.report.Finish()
	e.emit(ProgressEvent{Type: ProgressFinished})

	if e.Logger != nil {
		e.Logger.Info("crawl finished",
			"run", r.report.RunID,
			"seed", seed,
			"fetched", r.report.Fetched(),
			"cached", r.report.Cached(),
			"skipped", r.report.Skipped(),
			"failed", r.report.Failed(),
			"duration", r.report.Finished.Sub(r.report.Started),
		)
	}

	if err := ctx.Err(); err != nil {
		return r.report, err
	}
	return r.report, nil
}

// crawl processes one identifier and recursively dispatches its
// outbound references. It returns only after the node's whole subtree
// has settled.
func (r *run) crawl(ctx context.Context, id string, depth int) {
	if !r.tracker.Claim(id) {
		r.record(crawlkit.Outcome{
			ID:     id,
			Status: crawlkit.StatusSkipped,
			Reason: crawlkit.SkipAlreadyVisited,
			Depth:  depth,
		})
		return
	}

	if r.claims.Add(1) > int64(r.maxResources) {
		r.record(crawlkit.Outcome{
			ID:     id,
			Status: crawlkit.StatusSkipped,
			Reason: crawlkit.SkipLimitReached,
			Depth:  depth,
		})
		return
	}

	res := <-r.rt.Start(ctx, id)
	if res.Err != nil {
		r.record(crawlkit.Outcome{
			ID:     id,
			Status: crawlkit.StatusFailed,
			Depth:  depth,
			Err:    res.Err,
		})
		return
	}

	status := crawlkit.StatusFetched
	if res.Cached {
		status = crawlkit.StatusCached
	}

	if depth == 0 {
		r.record(crawlkit.Outcome{ID: id, Status: status, Depth: depth})
		return
	}

	links, err := r.eng.Extractor.Extract(id, res.Content)
	if err != nil {
		// Unextractable content fails the node; its subtree is
		// never expanded.
		r.record(crawlkit.Outcome{
			ID:     id,
			Status: crawlkit.StatusFailed,
			Depth:  depth,
			Err:    crawlkit.Errorf(crawlkit.EINVALID, "extracting links from %s: %v", id, err),
		})
		return
	}

	r.record(crawlkit.Outcome{ID: id, Status: status, Depth: depth})

	if len(links) == 0 || ctx.Err() != nil {
		return
	}

	// Fork-join: every child runs on its own goroutine, even when its
	// result would come straight from the store, and the parent waits
	// for all of them. Workers always return nil so one child's
	// failure never cancels its siblings.
	g := new(errgroup.Group)
	for _, link := range links {
		g.Go(func() error {
			r.crawl(ctx, link, depth-1)
			return nil
		})
	}
	_ = g.Wait()
}

// record folds an outcome into the report and publishes it as progress.
func (r *run) record(o crawlkit.Outcome) {
	r.report.Record(o)

	ev := ProgressEvent{ID: o.ID, Depth: o.Depth, Err: o.Err}
	switch o.Status {
	case crawlkit.StatusFetched:
		ev.Type = ProgressFetched
	case crawlkit.StatusCached:
		ev.Type = ProgressCached
	case crawlkit.StatusSkipped:
		ev.Type = ProgressSkipped
	case crawlkit.StatusFailed:
		ev.Type = ProgressFailed
		if r.eng.Logger != nil {
			r.eng.Logger.Warn("crawl branch failed", "id", o.ID, "depth", o.Depth, "err", o.Err)
		}
	}
	r.eng.emit(ev)
}

func (e *Engine) emit(ev ProgressEvent) {
	if e.Progress != nil {
		e.Progress(ev)
	}
}
