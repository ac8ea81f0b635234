// Package cache provides the in-process response cache for the Riot client.
//
// The store is partitioned into namespaces, one per category of cached data
// (account, summoner, match detail, live game, ...). Each namespace carries its
// own default TTL and a maximum entry count; inserting into a full namespace
// evicts the least-recently-used entry of that namespace. Expired entries are
// dropped lazily on read.
//
// # Basic Usage
//
//	store := cache.NewStore(cache.DefaultConfig())
//
//	store.Set(cache.NamespaceMatch, key, match)
//
//	if v, ok := cache.Lookup[*MatchDTO](store, cache.NamespaceMatch, key); ok {
//		// cache hit
//	}
//
// # Keys
//
// Cache keys are built with the Key type, which canonicalizes the endpoint and
// all parameters (sorted) so that equivalent parameter sets always produce the
// same key string.
//
// # Metrics
//
// The store exports Prometheus metrics:
//
//   - riot_cache_hits_total{namespace} - Cache hits
//   - riot_cache_misses_total{namespace} - Cache misses
//   - riot_cache_evictions_total{namespace} - LRU evictions
//   - riot_cache_entries{namespace} - Current entry count
package cache
