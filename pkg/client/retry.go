package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// Prometheus metrics for retry operations.
var (
	riotRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riot_retries_total",
		Help: "Total number of retry attempts after upstream throttling",
	})

	riotRetryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riot_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted",
	})
)

// Read operations default to priority 0; higher-priority calls preempt
// queued lower-priority ones.
const defaultPriority = 0

// execute runs fn with admission control and bounded exponential-backoff
// retry. Quota is acquired before every attempt, including the first. Only
// throttling failures are retried; everything else propagates immediately.
// Backoff for attempt i (0-based) is InitialBackoff * 2^i, capped at
// MaxBackoff.
func (c *Client) execute(ctx context.Context, priority int, operation string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if err := c.limiter.Acquire(ctx, priority); err != nil {
			return fmt.Errorf("acquire quota: %w", err)
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				c.logger.Info().
					Str("operation", operation).
					Int("attempt", attempt+1).
					Msg("Request succeeded after retry")
			}
			return nil
		}

		if !IsRetriable(err) {
			return err
		}
		lastErr = err

		if attempt >= c.config.MaxRetries {
			break
		}

		backoff := c.config.InitialBackoff << attempt
		if c.config.MaxBackoff > 0 && backoff > c.config.MaxBackoff {
			backoff = c.config.MaxBackoff
		}
		riotRetriesTotal.Inc()
		c.logger.Warn().
			Str("operation", operation).
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Msg("Upstream throttled, retrying after backoff")

		select {
		case <-ctx.Done():
			return fmt.Errorf("backoff interrupted: %w", ctx.Err())
		case <-time.After(backoff):
		}
	}

	riotRetryExhaustedTotal.Inc()
	c.logger.Warn().
		Str("operation", operation).
		Int("max_retries", c.config.MaxRetries).
		Msg("Retry attempts exhausted")

	return fmt.Errorf("%w after %d attempts: %v", ErrRetryExhausted, c.config.MaxRetries+1, lastErr)
}

// fetchCached is the common read path: consult the namespace cache, and on a
// miss fetch the typed value through admission control and the retry policy,
// then cache the decoded result under the namespace default TTL.
func fetchCached[T any](ctx context.Context, c *Client, ns string, key cache.Key, host, path string, query url.Values, operation string, priority int) (T, error) {
	ks := key.String()
	if v, ok := cache.Lookup[T](c.cache, ns, ks); ok {
		c.logger.Debug().Str("operation", operation).Msg("Cache hit")
		return v, nil
	}

	var out T
	err := c.execute(ctx, priority, operation, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(host, path, query), nil)
		if err != nil {
			return &APIError{
				Operation: operation,
				Class:     ErrorClassUpstream,
				Message:   "create request",
				Err:       err,
			}
		}
		return c.fetchJSON(req, operation, &out)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	c.cache.Set(ns, ks, out)
	return out, nil
}
