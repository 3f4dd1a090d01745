package crawl

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, id string) (string, error)

// FetchWithBackoff attempts a fetch with backoff delays between
// attempts. A nil or empty delays slice means a single attempt with no
// retries, which is the engine's default: retry policy belongs to the
// fetcher boundary and is opt-in here.
func FetchWithBackoff(ctx context.Context, id string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := fetch(ctx, id)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
