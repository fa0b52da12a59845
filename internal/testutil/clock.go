package testutil

import (
	"sync"
	"time"
)

// KickOff is the reference instant the sample payloads are built around.
var KickOff = time.Date(2024, 5, 12, 19, 0, 0, 0, time.UTC)

// SteppingClock returns a clock that starts at start and advances by step
// on every call after the first. Safe for concurrent use.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
