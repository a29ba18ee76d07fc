package ingest

import (
	"context"
	"time"

	"github.com/Sravan-create/fedreg"
)

// PageFunc is the signature for a single page fetch.
type PageFunc func(ctx context.Context) (*fedreg.DocumentPage, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for page fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a page fetch with backoff between attempts.
// The number of delays determines the retry count. The logger function, if
// provided, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, fetch PageFunc, logger LogFunc, delays []time.Duration) (*fedreg.DocumentPage, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetch(ctx)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry page fetch (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
