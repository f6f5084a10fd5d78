package service

import (
	"context"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/regions"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type RankService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewRankService(riotAPI RiotAPI, logger zerolog.Logger) *RankService {
	return &RankService{riot: riotAPI, logger: logger}
}

// GetRanks looks up the solo-queue standing for each puuid
// concurrently. A failed lookup, or a player with no solo-queue entry,
// yields a nil Rank for that player; the batch itself never errors.
// Output order matches the input puuids.
func (s *RankService) GetRanks(ctx context.Context, puuids []string, region regions.Region) []domain.PlayerRank {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ranks := make([]domain.PlayerRank, len(puuids))

	g, gCtx := errgroup.WithContext(ctx)
	for i, puuid := range puuids {
		g.Go(func() error {
			ranks[i] = domain.PlayerRank{Puuid: puuid}

			entries, err := s.riot.GetLeagueEntries(gCtx, puuid, region)
			if err != nil {
				s.logger.Warn().Err(err).Str("puuid", puuid).Msg("rank lookup failed, returning null rank")
				return nil
			}
			for _, entry := range entries {
				if entry.QueueType == constants.QueueTypeRankedSolo {
					ranks[i].Rank = &domain.Rank{
						Tier:         entry.Tier,
						Rank:         entry.Rank,
						LeaguePoints: entry.LeaguePoints,
					}
					break
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info().Int("players", len(puuids)).Msg("bulk rank lookup complete")
	return ranks
}
