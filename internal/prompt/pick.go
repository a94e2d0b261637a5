package prompt

import (
	"context"
	"time"
)

const (
	// emptyCancelThreshold separates a genuine escape from a picker
	// flake: an empty result that comes back faster than this did not
	// give the user time to actually decline.
	emptyCancelThreshold = 500 * time.Millisecond

	// maxPickRetries bounds how often a flaky empty result is re-shown.
	maxPickRetries = 3
)

// since is replaced in tests to simulate prompt latency.
var since = time.Since

// PickOne shows a single-choice list, absorbing near-instant empty
// results. The underlying picker occasionally returns nothing right
// away; such a result is re-shown up to maxPickRetries times. An empty
// result after the user had time to choose, or after retries are
// exhausted, is returned as genuine cancellation (-1, nil).
func PickOne(ctx context.Context, p Prompter, title string, options []Option) (int, error) {
	for attempt := 0; ; attempt++ {
		start := time.Now()
		idx, err := p.Select(ctx, title, options)
		if err != nil || idx >= 0 {
			return idx, err
		}
		if since(start) >= emptyCancelThreshold || attempt >= maxPickRetries {
			return -1, nil
		}
	}
}
