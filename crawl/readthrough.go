package crawl

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/crawlkit"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxInFlight is the default bound on concurrent fetches.
const DefaultMaxInFlight = 10

// Result is the outcome of one read-or-fetch operation.
type Result struct {
	Content string
	Cached  bool
	Err     error
}

// ReadThrough implements the read-or-fetch policy: content already in
// the store is read back, anything else is fetched, processed, and
// persisted before being returned.
//
// Completion is always delivered through the channel returned by Start,
// on a goroutine other than the initiator's — for cache hits exactly as
// for cache misses. A caller that registers more work after initiating
// therefore observes the same ordering on both paths; the hit path is
// never resumed inline on the initiating stack frame.
type ReadThrough struct {
	Store       crawlkit.ResourceStore
	Fetcher     crawlkit.Fetcher
	Limiter     crawlkit.DomainLimiter
	Processors  []crawlkit.Processor
	RetryDelays []time.Duration

	// MaxInFlight bounds concurrent fetches, uniformly at every
	// crawl depth. Defaults to DefaultMaxInFlight.
	MaxInFlight int

	once sync.Once
	sem  *semaphore.Weighted
}

// Start begins a read-or-fetch for id and returns the channel the
// result will be delivered on.
func (rt *ReadThrough) Start(ctx context.Context, id string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- rt.get(ctx, id)
	}()
	return ch
}

func (rt *ReadThrough) get(ctx context.Context, id string) Result {
	if rt.Store.Exists(ctx, id) {
		content, err := rt.Store.Read(ctx, id)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Content: content, Cached: true}
	}

	if rt.Limiter != nil {
		if host := hostOf(id); host != "" {
			if err := rt.Limiter.Wait(ctx, host); err != nil {
				return Result{Err: err}
			}
		}
	}

	rt.once.Do(func() {
		n := rt.MaxInFlight
		if n <= 0 {
			n = DefaultMaxInFlight
		}
		rt.sem = semaphore.NewWeighted(int64(n))
	})
	if err := rt.sem.Acquire(ctx, 1); err != nil {
		return Result{Err: err}
	}
	defer rt.sem.Release(1)

	// A canceled crawl stops issuing new fetches; fetches already in
	// flight are left to settle.
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}

	content, err := FetchWithBackoff(ctx, id, rt.Fetcher.Fetch, rt.RetryDelays)
	if err != nil {
		return Result{Err: err}
	}

	for _, p := range rt.Processors {
		content, err = p.Process(id, content)
		if err != nil {
			return Result{Err: crawlkit.Errorf(crawlkit.EINVALID, "processing %s: %v", id, err)}
		}
	}

	if err := rt.Store.Write(ctx, id, content); err != nil {
		return Result{Err: err}
	}

	return Result{Content: content}
}

func hostOf(id string) string {
	u, err := url.Parse(id)
	if err != nil {
		return ""
	}
	return u.Host
}
