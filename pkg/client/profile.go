package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GetPlayerProfile resolves a Riot ID to its account, then fetches the
// summoner record and ranked entries concurrently. The two dependent fetches
// share no mutable state beyond the rate limiter, which serializes admission
// itself.
func (c *Client) GetPlayerProfile(ctx context.Context, gameName, tagLine string) (*PlayerProfile, error) {
	account, err := c.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	profile := &PlayerProfile{Account: account}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summoner, err := c.GetSummonerByPUUID(gctx, account.PUUID)
		if err != nil {
			return err
		}
		profile.Summoner = summoner
		return nil
	})
	g.Go(func() error {
		ranked, err := c.GetRankedEntries(gctx, account.PUUID)
		if err != nil {
			return err
		}
		profile.Ranked = ranked
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile, nil
}
