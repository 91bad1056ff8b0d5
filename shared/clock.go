package shared

import (
	"sync"
	"time"
)

// Clock abstracts "now" so progression rules can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// FormatISO renders a timestamp the way dynamic_state stores them.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// HoursSince returns the hours elapsed between ts and now. A missing or
// unparseable timestamp reports ok=false; callers must treat that state as
// satisfying any elapsed-time threshold.
func HoursSince(ts string, now time.Time) (float64, bool) {
	if ts == "" {
		return 0, false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return 0, false
	}
	return now.Sub(t).Hours(), true
}

// Elapsed reports whether at least thresholdHours have passed since ts,
// treating a missing timestamp as always elapsed.
func Elapsed(ts string, now time.Time, thresholdHours float64) bool {
	hours, ok := HoursSince(ts, now)
	if !ok {
		return true
	}
	return hours >= thresholdHours
}
