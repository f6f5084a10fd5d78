package service

import (
	"context"

	"lol-tracker/internal/regions"
	"lol-tracker/internal/riot"
)

// RiotAPI is the slice of the Riot client the services depend on.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine string, region regions.Region) (*riot.Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid string, region regions.Region) (*riot.Summoner, error)
	GetLeagueEntries(ctx context.Context, puuid string, region regions.Region) ([]riot.LeagueEntry, error)
	GetMatchIDs(ctx context.Context, puuid string, region regions.Region, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID string, region regions.Region) (*riot.Match, error)
	RateLimits() riot.RateLimitInfo
}
