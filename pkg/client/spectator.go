package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// Live-game lookups are time-sensitive, so they preempt queued default-
// priority reads.
const liveGamePriority = 1

// GetLiveGame fetches the game a player is currently in. Not being in a game
// is a valid result, not an error: it returns (nil, nil) and the absence is
// cached briefly so repeated polling does not burn quota. Upstream failures
// other than an explicit not-found are never cached as absence.
func (c *Client) GetLiveGame(ctx context.Context, puuid string) (*CurrentGameInfo, error) {
	path := "/lol/spectator/v5/active-games/by-summoner/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}.String()

	if game, ok := cache.Lookup[*CurrentGameInfo](c.cache, cache.NamespaceLiveGame, key); ok {
		return game, nil
	}
	if _, ok := cache.Lookup[bool](c.cache, cache.NamespaceNoGame, key); ok {
		return nil, nil
	}

	var game *CurrentGameInfo
	err := c.execute(ctx, liveGamePriority, "live-game", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(c.platformHost(), path, nil), nil)
		if err != nil {
			return &APIError{
				Operation: "live-game",
				Class:     ErrorClassUpstream,
				Message:   "create request",
				Err:       err,
			}
		}
		return c.fetchJSON(req, "live-game", &game)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.cache.Set(cache.NamespaceNoGame, key, true)
			return nil, nil
		}
		return nil, err
	}

	c.cache.Set(cache.NamespaceLiveGame, key, game)
	return game, nil
}
