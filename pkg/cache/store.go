package cache

import (
	"container/list"
	"sync"
	"time"
)

// Namespace names for the cached data categories.
const (
	NamespaceAccount    = "account"
	NamespaceSummoner   = "summoner"
	NamespaceRanked     = "ranked"
	NamespaceMastery    = "mastery"
	NamespaceMatchIDs   = "match-ids"
	NamespaceMatch      = "match"
	NamespaceLiveGame   = "live-game"
	NamespaceNoGame     = "no-game"
	NamespaceStaticData = "static-data"
	NamespaceVersions   = "versions"
)

// NamespaceConfig holds capacity and default TTL for one namespace.
type NamespaceConfig struct {
	Capacity int
	TTL      time.Duration
}

// Config maps namespace names to their configuration.
type Config map[string]NamespaceConfig

// DefaultConfig returns the namespace layout used by the Riot client.
// Match details get the longest TTL because completed matches are immutable.
func DefaultConfig() Config {
	return Config{
		NamespaceAccount:    {Capacity: 500, TTL: 1 * time.Hour},
		NamespaceSummoner:   {Capacity: 500, TTL: 1 * time.Hour},
		NamespaceRanked:     {Capacity: 500, TTL: 10 * time.Minute},
		NamespaceMastery:    {Capacity: 500, TTL: 30 * time.Minute},
		NamespaceMatchIDs:   {Capacity: 500, TTL: 10 * time.Minute},
		NamespaceMatch:      {Capacity: 2000, TTL: 24 * time.Hour},
		NamespaceLiveGame:   {Capacity: 200, TTL: 2 * time.Minute},
		NamespaceNoGame:     {Capacity: 200, TTL: 30 * time.Second},
		NamespaceStaticData: {Capacity: 16, TTL: 24 * time.Hour},
		NamespaceVersions:   {Capacity: 4, TTL: 12 * time.Hour},
	}
}

// NamespaceStats describes the current fill level of one namespace.
type NamespaceStats struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// namespace is one cache partition: a key index plus an LRU list.
// The list front holds the most recently used entry.
type namespace struct {
	config  NamespaceConfig
	entries map[string]*list.Element
	lru     *list.List
}

// Store is a multi-namespace TTL cache with per-namespace LRU eviction.
// All methods are safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	namespaces map[string]*namespace
	enabled    bool
}

// NewStore creates a store with the given namespace layout.
func NewStore(cfg Config) *Store {
	s := &Store{
		namespaces: make(map[string]*namespace, len(cfg)),
		enabled:    true,
	}
	for name, nc := range cfg {
		s.namespaces[name] = &namespace{
			config:  nc,
			entries: make(map[string]*list.Element),
			lru:     list.New(),
		}
	}
	return s
}

// Get retrieves a value. It returns false on a miss, on an expired entry, on
// an unknown namespace, or while the store is disabled. Expired entries are
// removed on read.
func (s *Store) Get(ns, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return nil, false
	}
	n, ok := s.namespaces[ns]
	if !ok {
		return nil, false
	}
	elem, ok := n.entries[key]
	if !ok {
		cacheMisses.WithLabelValues(ns).Inc()
		return nil, false
	}
	e := elem.Value.(*entry)
	if e.expired(time.Now()) {
		n.lru.Remove(elem)
		delete(n.entries, key)
		cacheEntries.WithLabelValues(ns).Dec()
		cacheMisses.WithLabelValues(ns).Inc()
		return nil, false
	}
	n.lru.MoveToFront(elem)
	cacheHits.WithLabelValues(ns).Inc()
	return e.value, true
}

// Lookup is a typed Get. It returns false when the entry is absent or holds a
// value of a different type.
func Lookup[T any](s *Store, ns, key string) (T, bool) {
	var zero T
	v, ok := s.Get(ns, key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set inserts or replaces a value using the namespace default TTL.
func (s *Store) Set(ns, key string, value any) {
	s.SetTTL(ns, key, value, 0)
}

// SetTTL inserts or replaces a value with an explicit TTL. A ttl of zero or
// less falls back to the namespace default. If the namespace is at capacity
// the least-recently-used entry is evicted first.
func (s *Store) SetTTL(ns, key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	n, ok := s.namespaces[ns]
	if !ok {
		return
	}
	if ttl <= 0 {
		ttl = n.config.TTL
	}
	now := time.Now()

	if elem, ok := n.entries[key]; ok {
		e := elem.Value.(*entry)
		e.value = value
		e.insertedAt = now
		e.ttl = ttl
		n.lru.MoveToFront(elem)
		return
	}

	if n.lru.Len() >= n.config.Capacity {
		oldest := n.lru.Back()
		if oldest != nil {
			n.lru.Remove(oldest)
			delete(n.entries, oldest.Value.(*entry).key)
			cacheEvictions.WithLabelValues(ns).Inc()
			cacheEntries.WithLabelValues(ns).Dec()
		}
	}

	elem := n.lru.PushFront(&entry{
		key:        key,
		value:      value,
		insertedAt: now,
		ttl:        ttl,
	})
	n.entries[key] = elem
	cacheEntries.WithLabelValues(ns).Inc()
}

// Delete removes a single entry, if present.
func (s *Store) Delete(ns, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.namespaces[ns]
	if !ok {
		return
	}
	if elem, ok := n.entries[key]; ok {
		n.lru.Remove(elem)
		delete(n.entries, key)
		cacheEntries.WithLabelValues(ns).Dec()
	}
}

// Clear empties the named namespaces, or every namespace when called with no
// arguments.
func (s *Store) Clear(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(names) == 0 {
		for name := range s.namespaces {
			names = append(names, name)
		}
	}
	for _, name := range names {
		n, ok := s.namespaces[name]
		if !ok {
			continue
		}
		n.entries = make(map[string]*list.Element)
		n.lru.Init()
		cacheEntries.WithLabelValues(name).Set(0)
	}
}

// SetEnabled toggles the store globally. While disabled every Get misses and
// every Set is dropped; previously cached entries survive and become visible
// again once re-enabled (subject to TTL).
func (s *Store) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Enabled reports whether the store currently serves lookups.
func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Stats returns the size and capacity of every namespace.
func (s *Store) Stats() map[string]NamespaceStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make(map[string]NamespaceStats, len(s.namespaces))
	for name, n := range s.namespaces {
		stats[name] = NamespaceStats{
			Size:     n.lru.Len(),
			Capacity: n.config.Capacity,
		}
	}
	return stats
}
