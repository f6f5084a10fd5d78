package service

import (
	"context"
	"fmt"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/regions"
	"lol-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewMatchService(riotAPI RiotAPI, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riotAPI, logger: logger}
}

// GetMatch fetches one match; failures propagate to the caller.
func (s *MatchService) GetMatch(ctx context.Context, matchID string, region regions.Region) (*riot.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("match_id", matchID).Str("region", string(region)).Msg("fetching match")

	match, err := s.riot.GetMatch(ctx, matchID, region)
	if err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("match fetch failed")
		return nil, fmt.Errorf("fetching match %s: %w", matchID, err)
	}
	return match, nil
}

// FetchBatch retrieves match details for up to the first
// constants.MaxBatchSize IDs concurrently. A failed fetch only drops
// that match from the result; the batch itself never errors. With
// queueFilter > 0, matches of any other queue are dropped as well.
// Result order tracks the input IDs; callers needing chronological
// order sort by gameEndTimestamp themselves.
func (s *MatchService) FetchBatch(ctx context.Context, matchIDs []string, region regions.Region, queueFilter int) []riot.Match {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if len(matchIDs) > constants.MaxBatchSize {
		matchIDs = matchIDs[:constants.MaxBatchSize]
	}

	results := make([]*riot.Match, len(matchIDs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range matchIDs {
		g.Go(func() error {
			match, err := s.riot.GetMatch(gCtx, id, region)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", id).Msg("skipping match that failed to fetch")
				return nil
			}
			if queueFilter > 0 && match.Info.QueueID != queueFilter {
				return nil
			}
			results[i] = match
			return nil
		})
	}
	_ = g.Wait() // closures never return errors; partial data is the contract

	matches := make([]riot.Match, 0, len(results))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	s.logger.Info().
		Int("requested", len(matchIDs)).
		Int("fetched", len(matches)).
		Int("queue_filter", queueFilter).
		Msg("match batch complete")
	return matches
}
