// Package ratelimit implements the dual-window rate limiter and priority
// admission queue gating all outbound Riot API requests. Two fixed quota
// windows run concurrently (a short burst window and a long sustained window)
// and both must have headroom before a request is admitted. Requests that
// cannot be admitted immediately are queued and serviced highest-priority
// first; the limiter never rejects, it only delays.
package ratelimit

import (
	"time"
)

// Default quota windows, matching a Riot development key:
// 20 requests per second and 100 requests per two minutes.
const (
	DefaultShortLimit  = 20
	DefaultShortWindow = 1 * time.Second
	DefaultLongLimit   = 100
	DefaultLongWindow  = 120 * time.Second
)

// window is one fixed-duration quota counter. Not safe for concurrent use;
// the limiter serializes all access under its lock.
type window struct {
	limit    int
	duration time.Duration
	used     int
	start    time.Time
}

func newWindow(limit int, duration time.Duration) *window {
	return &window{
		limit:    limit,
		duration: duration,
		start:    time.Now(),
	}
}

// tick resets the counter when the window duration has elapsed. The reset is
// atomic: usage drops to zero and the window restarts at now.
func (w *window) tick(now time.Time) {
	if now.Sub(w.start) >= w.duration {
		w.used = 0
		w.start = now
	}
}

// headroom reports whether the window can still admit a request.
func (w *window) headroom() bool {
	return w.used < w.limit
}

// consume counts one admitted request against the window.
func (w *window) consume() {
	w.used++
}

// untilReset returns the duration until the window next resets.
func (w *window) untilReset(now time.Time) time.Duration {
	d := w.start.Add(w.duration).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// WindowUsage is a read-only snapshot of one quota window.
type WindowUsage struct {
	Used    int           `json:"used"`
	Limit   int           `json:"limit"`
	ResetIn time.Duration `json:"reset_in"`
}

// Usage is a read-only snapshot of the limiter state.
type Usage struct {
	Short      WindowUsage `json:"short"`
	Long       WindowUsage `json:"long"`
	QueueDepth int         `json:"queue_depth"`
}
