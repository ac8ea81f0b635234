package cache

import (
	"time"
)

// entry is a single cached value. Entries are owned by the store; callers
// only ever receive the value, never the entry itself.
type entry struct {
	key        string
	value      any
	insertedAt time.Time
	ttl        time.Duration
}

// expired reports whether the entry's lifetime has elapsed at the given time.
func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.insertedAt) >= e.ttl
}
