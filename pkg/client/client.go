// Package client provides the core Riot API client with rate limiting,
// caching, and error handling.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/riftwatch/riot-client/pkg/cache"
	"github.com/riftwatch/riot-client/pkg/ratelimit"
)

// Prometheus metrics for Riot client operations.
var (
	riotRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riot_requests_total",
		Help: "Total Riot API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	riotRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "riot_request_duration_seconds",
		Help:    "Riot API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	riotErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riot_errors_total",
		Help: "Total Riot API errors by class",
	}, []string{"class"})
)

// Config holds the client configuration.
type Config struct {
	// Credential is the initial API key and routing configuration.
	Credential Credential

	// RefreshHook optionally supplies a replacement API key after an auth
	// failure. Invoked lazily; returning false leaves the credential as is.
	RefreshHook func() (string, bool)

	// RateLimit configures the dual quota windows.
	RateLimit ratelimit.Config

	// Cache configures the namespace layout. Nil uses cache.DefaultConfig.
	Cache cache.Config

	// Retry
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// HTTPTimeout bounds each physical request.
	HTTPTimeout time.Duration

	// BaseURL overrides the api.riotgames.com host scheme (for testing).
	// Format: "https://%s.api.riotgames.com" with one %s for the routing
	// value.
	BaseURL string
}

// DefaultConfig returns a safe default configuration for the given
// credential.
func DefaultConfig(cred Credential) Config {
	return Config{
		Credential:     cred,
		RateLimit:      ratelimit.DefaultConfig(),
		Cache:          cache.DefaultConfig(),
		MaxRetries:     3,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		HTTPTimeout:    30 * time.Second,
		BaseURL:        "https://%s.api.riotgames.com",
	}
}

// Client is the main Riot API client. All typed operations consult the cache
// first and pass physical requests through the rate limiter and retry policy.
type Client struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	cache      *cache.Store
	credential atomic.Pointer[Credential]
	config     Config
	logger     zerolog.Logger
	staticdata atomic.Pointer[StatusReporter]
}

// StatusReporter is implemented by the reference-data resolver so the client
// status snapshot can include dataset version and load counts.
type StatusReporter interface {
	LoadedVersion() string
	Counts() map[string]int
}

// New creates a new Riot API client.
func New(cfg Config) (*Client, error) {
	if cfg.Credential.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Credential.Platform == "" || cfg.Credential.Region == "" {
		return nil, fmt.Errorf("platform and region are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://%s.api.riotgames.com"
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.DefaultConfig()
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max_retries must be >= 0 (got %d)", cfg.MaxRetries)
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 1 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	logger := log.With().Str("component", "riot-client").Logger()

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		limiter: ratelimit.NewLimiter(cfg.RateLimit, logger),
		cache:   cache.NewStore(cfg.Cache),
		config:  cfg,
		logger:  logger,
	}
	c.SetCredential(cfg.Credential)
	return c, nil
}

// AttachStaticData wires a reference-data resolver into the status snapshot.
// Safe to call at any point, including after requests are in flight.
func (c *Client) AttachStaticData(sd StatusReporter) {
	c.staticdata.Store(&sd)
}

// Cache returns the cache store, for operational control (enable/disable,
// explicit invalidation).
func (c *Client) Cache() *cache.Store {
	return c.cache
}

// Limiter returns the admission queue, shared with any collaborator that
// issues its own upstream calls.
func (c *Client) Limiter() *ratelimit.Limiter {
	return c.limiter
}

// platformHost returns the host for platform-routed endpoints (summoner,
// league, mastery, spectator).
func (c *Client) platformHost() string {
	return fmt.Sprintf(c.config.BaseURL, c.Credential().Platform)
}

// regionHost returns the host for regionally-routed endpoints (account,
// match).
func (c *Client) regionHost() string {
	return fmt.Sprintf(c.config.BaseURL, c.Credential().Region)
}

// fetchJSON performs one authenticated GET against the upstream and decodes
// the response into out. It classifies HTTP status outcomes into the error
// taxonomy; retry and admission are handled by the caller.
func (c *Client) fetchJSON(req *http.Request, operation string, out any) error {
	endpoint := req.URL.Path

	req.Header.Set("X-Riot-Token", c.Credential().APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	riotRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		riotErrorsTotal.WithLabelValues(string(ErrorClassUpstream)).Inc()
		riotRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return &APIError{
			Operation: operation,
			Class:     ErrorClassUpstream,
			Message:   "request failed",
			Err:       err,
		}
	}
	defer resp.Body.Close()

	riotRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			riotErrorsTotal.WithLabelValues(string(ErrorClassUpstream)).Inc()
			return &APIError{
				Operation:  operation,
				StatusCode: resp.StatusCode,
				Class:      ErrorClassUpstream,
				Message:    "decode response",
				Err:        err,
			}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		riotErrorsTotal.WithLabelValues(string(ErrorClassAuth)).Inc()
		c.handleAuthFailure()
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassAuth,
			Message:    "unauthorized",
			Err:        ErrInvalidCredential,
		}

	case resp.StatusCode == http.StatusForbidden:
		riotErrorsTotal.WithLabelValues(string(ErrorClassAuth)).Inc()
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassAuth,
			Message:    "forbidden",
			Err:        ErrForbidden,
		}

	case resp.StatusCode == http.StatusNotFound:
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassNotFound,
			Message:    "not found",
			Err:        ErrNotFound,
		}

	case resp.StatusCode == http.StatusTooManyRequests:
		riotErrorsTotal.WithLabelValues(string(ErrorClassThrottled)).Inc()
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassThrottled,
			Message:    "rate limit exceeded",
		}

	default:
		riotErrorsTotal.WithLabelValues(string(ErrorClassUpstream)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassUpstream,
			Message:    string(body),
		}
	}
}

// buildURL joins a host, path and query into a request URL.
func buildURL(host, path string, query url.Values) string {
	u := host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
