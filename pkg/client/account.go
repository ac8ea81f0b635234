package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// GetAccountByRiotID resolves a Riot ID (game name + tag line) to an account.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountDTO, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))
	key := cache.Key{
		Endpoint: "/riot/account/v1/accounts/by-riot-id",
		Params:   map[string]string{"gameName": gameName, "tagLine": tagLine},
	}
	return fetchCached[*AccountDTO](ctx, c, cache.NamespaceAccount, key,
		c.regionHost(), path, nil, "account-by-riot-id", defaultPriority)
}

// GetAccountByPUUID looks up an account by its PUUID.
func (c *Client) GetAccountByPUUID(ctx context.Context, puuid string) (*AccountDTO, error) {
	path := "/riot/account/v1/accounts/by-puuid/" + url.PathEscape(puuid)
	key := cache.Key{Endpoint: path}
	return fetchCached[*AccountDTO](ctx, c, cache.NamespaceAccount, key,
		c.regionHost(), path, nil, "account-by-puuid", defaultPriority)
}
