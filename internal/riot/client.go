// Package riot wraps the outbound Riot API calls the dashboard needs:
// account resolution, summoner and league lookups, and match retrieval.
// The client keeps no state between calls beyond a passive snapshot of
// the upstream rate-limit headers.
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"lol-tracker/internal/config"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/regions"

	"github.com/valyala/fasthttp"
)

type Client struct {
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo is the most recent rate-limit state reported by the
// upstream. The client only observes these headers; throttling is left
// to the upstream (surfaced as RateLimited errors).
type RateLimitInfo struct {
	AppLimit   string    `json:"app_limit"`
	AppCount   string    `json:"app_count"`
	RetryAfter int       `json:"retry_after"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// RateLimits returns the last observed rate-limit snapshot.
func (c *Client) RateLimits() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimits(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	} else {
		c.rateLimit.RetryAfter = 0
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccountByRiotID resolves a gameName#tagLine pair to an account.
// Account lookups route through the region's continental host.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string, region regions.Region) (*Account, error) {
	route, ok := regions.AccountRoute(region)
	if !ok {
		return nil, fmt.Errorf("unsupported region %q", region)
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		route, url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, u)
}

// GetSummonerByPuuid fetches the summoner record from the platform host.
func (c *Client) GetSummonerByPuuid(ctx context.Context, puuid string, region regions.Region) (*Summoner, error) {
	if !regions.Valid(region) {
		return nil, fmt.Errorf("unsupported region %q", region)
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", region, puuid)
	return doRequest[Summoner](ctx, c, u)
}

// GetLeagueEntries fetches the ranked standings for one player. The
// result has at most one entry per queue type and may be empty for
// unranked players.
func (c *Client) GetLeagueEntries(ctx context.Context, puuid string, region regions.Region) ([]LeagueEntry, error) {
	if !regions.Valid(region) {
		return nil, fmt.Errorf("unsupported region %q", region)
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s", region, puuid)
	entries, err := doRequest[[]LeagueEntry](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// GetMatchIDs lists the player's most recent match IDs, newest first.
// Match lookups use the match routing table (tw2 routes through sea).
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, region regions.Region, count int) ([]string, error) {
	route, ok := regions.MatchRoute(region)
	if !ok {
		return nil, fmt.Errorf("unsupported region %q", region)
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		route, puuid, count)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// GetMatch fetches the full detail of one match.
func (c *Client) GetMatch(ctx context.Context, matchID string, region regions.Region) (*Match, error) {
	route, ok := regions.MatchRoute(region)
	if !ok {
		return nil, fmt.Errorf("unsupported region %q", region)
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", route, matchID)
	return doRequest[Match](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, &APIError{Kind: KindTransport, Err: err}
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, &APIError{Kind: KindTransport, Err: err}
		}
	}

	client.updateRateLimits(resp)

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &APIError{
			Kind:       kindForStatus(status),
			StatusCode: status,
			Body:       string(resp.Body()),
		}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return &result, nil
}
