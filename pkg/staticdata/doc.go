// Package staticdata fetches and indexes the versioned Data Dragon reference
// dataset used to translate raw numeric identifiers (champions, items,
// summoner spells, runes) into human-readable descriptors.
//
// Loading is an explicit lifecycle step: Version and LoadAll perform network
// I/O (cached per TTL), while the Resolve* lookups are pure in-memory reads.
// Each collection's index is immutable once built and published with an
// atomic pointer swap, so lookups racing a reload see either the old or the
// new complete index, never a mix.
package staticdata
