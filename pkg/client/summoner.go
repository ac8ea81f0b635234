package client

import (
	"context"
	"net/url"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// GetSummonerByPUUID fetches the summoner record for a PUUID.
func (c *Client) GetSummonerByPUUID(ctx context.Context, puuid string) (*SummonerDTO, error) {
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}
	return fetchCached[*SummonerDTO](ctx, c, cache.NamespaceSummoner, key,
		c.platformHost(), path, nil, "summoner-by-puuid", defaultPriority)
}

// GetRankedEntries fetches the ranked queue entries for a PUUID.
func (c *Client) GetRankedEntries(ctx context.Context, puuid string) ([]LeagueEntryDTO, error) {
	path := "/lol/league/v4/entries/by-puuid/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}
	return fetchCached[[]LeagueEntryDTO](ctx, c, cache.NamespaceRanked, key,
		c.platformHost(), path, nil, "ranked-entries", defaultPriority)
}
