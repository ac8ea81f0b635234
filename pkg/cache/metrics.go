package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks cache hits by namespace
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"namespace"},
	)

	// cacheMisses tracks cache misses by namespace
	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"namespace"},
	)

	// cacheEvictions tracks LRU evictions by namespace
	cacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_cache_evictions_total",
			Help: "Total number of LRU cache evictions",
		},
		[]string{"namespace"},
	)

	// cacheEntries tracks the current entry count by namespace
	cacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "riot_cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"namespace"},
	)
)
