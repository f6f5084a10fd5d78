package server

import (
	"net/http"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/lphistory"
	"lol-tracker/internal/stats"

	"github.com/rs/zerolog"
)

func (s *Server) handleSummoner(w http.ResponseWriter, r *http.Request) {
	gameName := r.URL.Query().Get("gameName")
	if gameName == "" {
		writeError(w, http.StatusBadRequest, "gameName parameter is required")
		return
	}
	tagLine := r.URL.Query().Get("tagLine")
	if tagLine == "" {
		tagLine = string(s.cfg.DefaultRegion)
	}
	region, ok := s.region(r.URL.Query().Get("region"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported region")
		return
	}

	profile, err := s.profiles.GetProfile(r.Context(), gameName, tagLine, region)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("game_name", gameName).Msg("profile lookup failed")
		writeUpstreamError(w, err, "summoner not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type statsRequest struct {
	MatchIDs []string `json:"matchIds"`
	Puuid    string   `json:"puuid"`
	Region   string   `json:"region"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MatchIDs == nil || req.Puuid == "" {
		writeError(w, http.StatusBadRequest, "matchIds array and puuid are required")
		return
	}
	region, ok := s.region(req.Region)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported region")
		return
	}

	matches := s.matches.FetchBatch(r.Context(), req.MatchIDs, region, 0)
	writeJSON(w, http.StatusOK, stats.Summarize(matches, req.Puuid))
}

type lpHistoryRequest struct {
	MatchIDs    []string `json:"matchIds"`
	Puuid       string   `json:"puuid"`
	CurrentLP   int      `json:"currentLP"`
	CurrentTier string   `json:"currentTier"`
	CurrentRank string   `json:"currentRank"`
	Region      string   `json:"region"`
}

type lpHistoryResponse struct {
	LPHistory []lphistory.Point `json:"lpHistory"`
}

func (s *Server) handleLPHistory(w http.ResponseWriter, r *http.Request) {
	var req lpHistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MatchIDs == nil || req.Puuid == "" {
		writeError(w, http.StatusBadRequest, "matchIds array and puuid are required")
		return
	}
	region, ok := s.region(req.Region)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported region")
		return
	}

	// Tier and rank come along for context only; the estimate never
	// uses them.
	zerolog.Ctx(r.Context()).Debug().
		Str("tier", req.CurrentTier).
		Str("rank", req.CurrentRank).
		Int("current_lp", req.CurrentLP).
		Msg("estimating lp history")

	matches := s.matches.FetchBatch(r.Context(), req.MatchIDs, region, constants.QueueRankedSolo)
	points := lphistory.Estimate(matches, req.Puuid, req.CurrentLP)
	if points == nil {
		points = []lphistory.Point{}
	}
	writeJSON(w, http.StatusOK, lpHistoryResponse{LPHistory: points})
}

type ranksRequest struct {
	Puuids []string `json:"puuids"`
	Region string   `json:"region"`
}

func (s *Server) handleRanks(w http.ResponseWriter, r *http.Request) {
	var req ranksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Puuids == nil {
		writeError(w, http.StatusBadRequest, "puuids array is required")
		return
	}
	region, ok := s.region(req.Region)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported region")
		return
	}

	ranks := s.ranks.GetRanks(r.Context(), req.Puuids, region)
	writeJSON(w, http.StatusOK, map[string]any{"ranks": ranks})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("matchId")
	if matchID == "" {
		writeError(w, http.StatusBadRequest, "matchId parameter is required")
		return
	}
	region, ok := s.region(r.URL.Query().Get("region"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported region")
		return
	}

	match, err := s.matches.GetMatch(r.Context(), matchID, region)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("match_id", matchID).Msg("match lookup failed")
		writeUpstreamError(w, err, "match not found")
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"rateLimit": s.riot.RateLimits(),
	})
}
