package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a cached upstream response.
type Key struct {
	// Endpoint is the logical operation path (e.g. "/lol/match/v5/matches").
	Endpoint string

	// Params are the request parameters, path and query alike. Ordering is
	// irrelevant: String sorts them.
	Params map[string]string
}

// String generates a deterministic key string.
// Format: riot:endpoint:param1=val1:param2=val2
//
// Example:
//
//	riot:lol/match/v5/matches/by-puuid/ids:count=20:start=0
func (k Key) String() string {
	parts := []string{"riot"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(k.Params) > 0 {
		keys := make([]string, 0, len(k.Params))
		for key := range k.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Params[key]))
		}
	}

	return strings.Join(parts, ":")
}
