package cache

import (
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{
			name:     "endpoint only",
			key:      Key{Endpoint: "/lol/summoner/v4/summoners/by-puuid/abc"},
			expected: "riot:lol/summoner/v4/summoners/by-puuid/abc",
		},
		{
			name: "endpoint with params",
			key: Key{
				Endpoint: "/lol/match/v5/matches/by-puuid/abc/ids",
				Params:   map[string]string{"start": "0", "count": "20"},
			},
			expected: "riot:lol/match/v5/matches/by-puuid/abc/ids:count=20:start=0",
		},
		{
			name:     "empty endpoint",
			key:      Key{Params: map[string]string{"a": "1"}},
			expected: "riot:a=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKey_String_Deterministic(t *testing.T) {
	// Equivalent parameter sets must hash identically regardless of how the
	// map was populated.
	a := Key{
		Endpoint: "/lol/match/v5/matches/by-puuid/abc/ids",
		Params:   map[string]string{"queue": "420", "type": "ranked", "count": "10"},
	}
	b := Key{
		Endpoint: "lol/match/v5/matches/by-puuid/abc/ids/",
		Params:   map[string]string{"count": "10", "type": "ranked", "queue": "420"},
	}

	if a.String() != b.String() {
		t.Errorf("keys differ: %q vs %q", a.String(), b.String())
	}
}
