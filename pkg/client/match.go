package client

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/riftwatch/riot-client/pkg/cache"
)

// matchBatchSize is the number of match details fetched concurrently per
// batch in GetMatches.
const matchBatchSize = 10

// MatchIDOptions filters a match-ID list request. The zero value fetches the
// most recent 20 matches.
type MatchIDOptions struct {
	Start int
	Count int
	Queue int    // queue id filter, 0 means all
	Type  string // "ranked", "normal", "tourney", "tutorial"; empty means all
}

func (o MatchIDOptions) query() (url.Values, map[string]string) {
	if o.Count <= 0 {
		o.Count = 20
	}
	q := url.Values{
		"start": []string{strconv.Itoa(o.Start)},
		"count": []string{strconv.Itoa(o.Count)},
	}
	params := map[string]string{
		"start": strconv.Itoa(o.Start),
		"count": strconv.Itoa(o.Count),
	}
	if o.Queue > 0 {
		q.Set("queue", strconv.Itoa(o.Queue))
		params["queue"] = strconv.Itoa(o.Queue)
	}
	if o.Type != "" {
		q.Set("type", o.Type)
		params["type"] = o.Type
	}
	return q, params
}

// GetMatchIDs fetches recent match identifiers for a PUUID.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, opts MatchIDOptions) ([]string, error) {
	path := "/lol/match/v5/matches/by-puuid/" + url.PathEscape(puuid) + "/ids"
	query, params := opts.query()
	key := cache.Key{Endpoint: path, Params: params}
	return fetchCached[[]string](ctx, c, cache.NamespaceMatchIDs, key,
		c.regionHost(), path, query, "match-ids", defaultPriority)
}

// GetMatch fetches a single match detail. Completed matches are immutable,
// so this namespace carries the longest TTL.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchDTO, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	key := cache.Key{Endpoint: path}
	return fetchCached[*MatchDTO](ctx, c, cache.NamespaceMatch, key,
		c.regionHost(), path, nil, "match-detail", defaultPriority)
}

// GetMatchTimeline fetches the timeline for a match.
func (c *Client) GetMatchTimeline(ctx context.Context, matchID string) (*TimelineDTO, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID) + "/timeline"
	key := cache.Key{Endpoint: path}
	return fetchCached[*TimelineDTO](ctx, c, cache.NamespaceMatch, key,
		c.regionHost(), path, nil, "match-timeline", defaultPriority)
}

// GetMatches fetches many match details, in fixed-size batches with the
// items of each batch fetched concurrently. A single failed item does not
// abort the batch: it is logged and skipped, and the result holds the
// successes in input order.
func (c *Client) GetMatches(ctx context.Context, matchIDs []string) ([]*MatchDTO, error) {
	results := make([]*MatchDTO, len(matchIDs))

	for start := 0; start < len(matchIDs); start += matchBatchSize {
		end := start + matchBatchSize
		if end > len(matchIDs) {
			end = len(matchIDs)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				match, err := c.GetMatch(gctx, matchIDs[i])
				if err != nil {
					c.logger.Warn().
						Err(err).
						Str("match_id", matchIDs[i]).
						Msg("Skipping match in batch fetch")
					return nil
				}
				results[i] = match
				return nil
			})
		}
		// Workers only return nil; Wait still propagates a cancelled gctx.
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	matches := make([]*MatchDTO, 0, len(results))
	for _, m := range results {
		if m != nil {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
