package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/dataminer"
)

// Default bounds of the pause taken after each successful fetch.
const (
	DefaultPauseMin = 1 * time.Second
	DefaultPauseMax = 3 * time.Second
)

var _ dataminer.Fetcher = (*PausingFetcher)(nil)

// PausingFetcher wraps a Fetcher and sleeps for a random duration after
// every successful fetch to bound the request rate. Failed fetches return
// immediately.
type PausingFetcher struct {
	next dataminer.Fetcher
	min  time.Duration
	max  time.Duration

	// Sleep blocks for d or until ctx is done. Replaceable in tests.
	Sleep func(ctx context.Context, d time.Duration) error

	// Jitter returns a duration in [0, n]. Replaceable in tests.
	Jitter func(n time.Duration) time.Duration
}

// NewPausingFetcher creates a PausingFetcher pausing between lo and hi.
// If hi is less than lo the pause is always lo.
func NewPausingFetcher(next dataminer.Fetcher, lo, hi time.Duration) *PausingFetcher {
	return &PausingFetcher{
		next:   next,
		min:    lo,
		max:    hi,
		Sleep:  SleepContext,
		Jitter: jitter,
	}
}

// Fetch delegates to the wrapped fetcher and pauses on success.
// A pause cut short by cancellation still returns the fetched page.
func (f *PausingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	// The page is already fetched; a cancelled pause does not discard it.
	_ = f.Sleep(ctx, f.pause())
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *PausingFetcher) Close() error {
	return f.next.Close()
}

func (f *PausingFetcher) pause() time.Duration {
	if f.max <= f.min {
		return f.min
	}
	return f.min + f.Jitter(f.max-f.min)
}

func jitter(n time.Duration) time.Duration {
	return rand.N(n + 1)
}

// SleepContext blocks for d or until ctx is done, whichever comes first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
