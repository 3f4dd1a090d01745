package main

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/crawlkit"
	"github.com/fwojciec/crawlkit/crawl"
)

// Run executes the crawl.
func (c *FetchCmd) Run(deps *Dependencies) error {
	seeds := []string{c.URL}

	if deps.Seeder != nil {
		discovered, err := deps.Seeder.Discover(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", crawlkit.ErrorMessage(err))
			return err
		}
		if len(discovered) > 0 {
			fmt.Fprintf(deps.Stdout, "Found %d sitemap URLs\n", len(discovered))
			seeds = discovered
		}
	}

	var mu sync.Mutex
	var done int

	engine := &crawl.Engine{
		Fetcher:      deps.Fetcher,
		Store:        deps.Store,
		Extractor:    deps.Extractor,
		Tracker:      deps.Tracker,
		RateLimiter:  deps.Limiter,
		Processors:   deps.Processors,
		Concurrency:  c.Concurrency,
		MaxResources: c.MaxResources,
		RetryDelays:  retryDelays(c.Retries),
		Logger:       deps.Logger,
		Progress: func(ev crawl.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			switch ev.Type {
			case crawl.ProgressFetched, crawl.ProgressCached:
				done++
				fmt.Fprintf(deps.Stdout, "\r[%d] %s", done, truncateURL(ev.ID, 60))
			case crawl.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "\nfail %s: %v\n", ev.ID, ev.Err)
			}
		},
	}

	var fetched, cached, skipped, failed int
	for _, seed := range seeds {
		report, err := engine.Crawl(deps.Ctx, seed, c.Depth)
		if report != nil {
			fetched += report.Fetched()
			cached += report.Cached()
			skipped += report.Skipped()
			failed += report.Failed()
		}
		if err != nil {
			// Interrupted: report what completed before bailing out.
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
			printSummary(deps, fetched, cached, skipped, failed)
			return err
		}
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
	printSummary(deps, fetched, cached, skipped, failed)

	return nil
}

func printSummary(deps *Dependencies, fetched, cached, skipped, failed int) {
	fmt.Fprintf(deps.Stdout, "Fetched %d, cached %d, skipped %d, failed %d\n",
		fetched, cached, skipped, failed)
}

// retryDelays builds an exponential backoff schedule for the requested
// number of retries, starting at one second.
func retryDelays(retries int) []time.Duration {
	if retries <= 0 {
		return nil
	}
	delays := make([]time.Duration, retries)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// truncateURL shortens a URL for display by showing only the path.
// This makes progress more useful when many URLs share the same host prefix.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback to simple right-truncation
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}
