package service

import (
	"context"
	"fmt"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/regions"
	"lol-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ProfileService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewProfileService(riotAPI RiotAPI, logger zerolog.Logger) *ProfileService {
	return &ProfileService{riot: riotAPI, logger: logger}
}

// GetProfile resolves a Riot ID to a full summoner profile. Account
// resolution is required and its failure propagates; once the puuid is
// known, the summoner record, league entries, and recent match IDs are
// fetched concurrently and all three must succeed.
func (s *ProfileService) GetProfile(ctx context.Context, gameName, tagLine string, region regions.Region) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().
		Str("game_name", gameName).
		Str("tag_line", tagLine).
		Str("region", string(region)).
		Msg("resolving summoner profile")

	account, err := s.riot.GetAccountByRiotID(ctx, gameName, tagLine, region)
	if err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("account lookup failed")
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	profile := &domain.Profile{Account: *account}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	g, gCtx := errgroup.WithContext(apiCtx)

	g.Go(func() error {
		summoner, err := s.riot.GetSummonerByPuuid(gCtx, account.Puuid, region)
		if err != nil {
			return fmt.Errorf("fetching summoner: %w", err)
		}
		profile.Summoner = *summoner
		return nil
	})

	g.Go(func() error {
		leagues, err := s.riot.GetLeagueEntries(gCtx, account.Puuid, region)
		if err != nil {
			return fmt.Errorf("fetching league entries: %w", err)
		}
		profile.Leagues = leagues
		return nil
	})

	g.Go(func() error {
		ids, err := s.riot.GetMatchIDs(gCtx, account.Puuid, region, constants.ProfileMatchCount)
		if err != nil {
			return fmt.Errorf("fetching match ids: %w", err)
		}
		profile.MatchIDs = ids
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", account.Puuid).Msg("profile fan-out failed")
		return nil, err
	}

	if profile.Leagues == nil {
		profile.Leagues = []riot.LeagueEntry{}
	}
	if profile.MatchIDs == nil {
		profile.MatchIDs = []string{}
	}

	s.logger.Info().
		Str("puuid", account.Puuid).
		Int("league_entries", len(profile.Leagues)).
		Int("match_ids", len(profile.MatchIDs)).
		Msg("profile resolved")
	return profile, nil
}
