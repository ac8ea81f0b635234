// Package metrics provides the centralized Prometheus metrics registry for
// the Riot client. All metrics are defined in their respective packages
// (client, cache, ratelimit, staticdata) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Riot client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Rate Limit Metrics (pkg/ratelimit):
//   - riot_rate_limit_admissions_total{path} (Counter): Admitted requests, immediate vs queued
//   - riot_rate_limit_queue_depth (Gauge): Requests currently waiting for quota
//   - riot_rate_limit_wait_seconds (Histogram): Time queued requests waited for admission
//
// Cache Metrics (pkg/cache):
//   - riot_cache_hits_total{namespace} (Counter): Cache hits by namespace
//   - riot_cache_misses_total{namespace} (Counter): Cache misses by namespace
//   - riot_cache_evictions_total{namespace} (Counter): LRU evictions by namespace
//   - riot_cache_entries{namespace} (Gauge): Current entry count by namespace
//
// Request Metrics (pkg/client):
//   - riot_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - riot_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - riot_errors_total{class} (Counter): Errors by class (throttled, auth, not_found, upstream)
//
// Retry Metrics (pkg/client):
//   - riot_retries_total (Counter): Retry attempts after upstream throttling
//   - riot_retry_exhausted_total (Counter): Requests that exhausted max retries
//
// Reference Data Metrics (pkg/staticdata):
//   - riot_static_data_loads_total{kind} (Counter): Collection loads by kind
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(riot_cache_hits_total[5m])) /
//   (sum(rate(riot_cache_hits_total[5m])) + sum(rate(riot_cache_misses_total[5m])))
//
//   # Admission Queue Pressure
//   riot_rate_limit_queue_depth > 0
//
//   # Request Error Rate
//   rate(riot_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(riot_request_duration_seconds_bucket[5m]))
//
//   # P95 Quota Wait
//   histogram_quantile(0.95, rate(riot_rate_limit_wait_seconds_bucket[5m]))
