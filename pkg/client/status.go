package client

import (
	"github.com/riftwatch/riot-client/pkg/cache"
	"github.com/riftwatch/riot-client/pkg/ratelimit"
)

// Status is a read-only observability snapshot of the client.
type Status struct {
	Platform   string                          `json:"platform"`
	Region     string                          `json:"region"`
	RateLimit  ratelimit.Usage                 `json:"rate_limit"`
	Cache      map[string]cache.NamespaceStats `json:"cache"`
	StaticData *StaticDataStatus               `json:"static_data,omitempty"`
}

// StaticDataStatus reports the reference dataset state.
type StaticDataStatus struct {
	Version string         `json:"version"`
	Counts  map[string]int `json:"counts"`
}

// Status returns the current quota usage, queue depth, cache fill levels and
// (when attached) reference-data version and load counts.
func (c *Client) Status() Status {
	cred := c.Credential()
	s := Status{
		Platform:  cred.Platform,
		Region:    cred.Region,
		RateLimit: c.limiter.Snapshot(),
		Cache:     c.cache.Stats(),
	}
	if p := c.staticdata.Load(); p != nil {
		sd := *p
		s.StaticData = &StaticDataStatus{
			Version: sd.LoadedVersion(),
			Counts:  sd.Counts(),
		}
	}
	return s
}
