// Package http provides the HTTP implementation of crawlkit.Fetcher
// and sitemap-based seed discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/crawlkit"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "crawlkit/1.0"

// Ensure Fetcher implements crawlkit.Fetcher at compile time.
var _ crawlkit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resource content over HTTP.
// It is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content for the given resource identifier.
// Non-2xx statuses are mapped onto application error codes: 404 and 410
// become ENOTFOUND, 429 and 5xx become EUNAVAILABLE, anything else
// EINTERNAL.
func (f *Fetcher) Fetch(ctx context.Context, id string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, id, nil)
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "invalid resource identifier %q: %v", id, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EUNAVAILABLE, "fetching %s: %v", id, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, id); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EUNAVAILABLE, "reading body of %s: %v", id, err)
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher since
// http.Client requires no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func statusError(code int, id string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return crawlkit.Errorf(crawlkit.ENOTFOUND, "HTTP %d for %s", code, id)
	case code == http.StatusTooManyRequests || code >= 500:
		return crawlkit.Errorf(crawlkit.EUNAVAILABLE, "HTTP %d for %s", code, id)
	default:
		return crawlkit.Errorf(crawlkit.EINTERNAL, "HTTP %d for %s", code, id)
	}
}
