package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// GetMasteries fetches all champion mastery records for a PUUID, ordered by
// descending mastery points.
func (c *Client) GetMasteries(ctx context.Context, puuid string) ([]ChampionMasteryDTO, error) {
	path := "/lol/champion-mastery/v4/champion-masteries/by-puuid/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}
	return fetchCached[[]ChampionMasteryDTO](ctx, c, cache.NamespaceMastery, key,
		c.platformHost(), path, nil, "masteries", defaultPriority)
}

// GetTopMasteries fetches the top count mastery records for a PUUID.
func (c *Client) GetTopMasteries(ctx context.Context, puuid string, count int) ([]ChampionMasteryDTO, error) {
	if count <= 0 {
		count = 3
	}
	path := "/lol/champion-mastery/v4/champion-masteries/by-puuid/" + url.PathEscape(puuid) + "/top"
	query := url.Values{"count": []string{strconv.Itoa(count)}}
	key := cache.Key{
		Endpoint: path,
		Params:   map[string]string{"count": strconv.Itoa(count)},
	}
	return fetchCached[[]ChampionMasteryDTO](ctx, c, cache.NamespaceMastery, key,
		c.platformHost(), path, query, "top-masteries", defaultPriority)
}

// GetMasteryScore fetches the total mastery score for a PUUID.
func (c *Client) GetMasteryScore(ctx context.Context, puuid string) (int, error) {
	path := "/lol/champion-mastery/v4/scores/by-puuid/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}
	return fetchCached[int](ctx, c, cache.NamespaceMastery, key,
		c.platformHost(), path, nil, "mastery-score", defaultPriority)
}
