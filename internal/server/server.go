// Package server exposes the dashboard's JSON API. Handlers validate
// caller input, delegate to the services, and map the upstream error
// taxonomy onto HTTP statuses with short user-facing messages.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"lol-tracker/internal/config"
	"lol-tracker/internal/regions"
	"lol-tracker/internal/riot"
	"lol-tracker/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	profiles *service.ProfileService
	matches  *service.MatchService
	ranks    *service.RankService
	riot     service.RiotAPI
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewServer(
	profiles *service.ProfileService,
	matches *service.MatchService,
	ranks *service.RankService,
	riotAPI service.RiotAPI,
	cfg *config.Config,
	logger zerolog.Logger,
) *Server {
	return &Server{
		profiles: profiles,
		matches:  matches,
		ranks:    ranks,
		riot:     riotAPI,
		cfg:      cfg,
		logger:   logger,
	}
}

// Routes builds the API mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/summoner", s.handleSummoner)
	mux.HandleFunc("POST /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/lp-history", s.handleLPHistory)
	mux.HandleFunc("POST /api/ranks", s.handleRanks)
	mux.HandleFunc("GET /api/match/{matchId}", s.handleMatch)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// region resolves the caller-supplied region string, falling back to
// the configured default when empty.
func (s *Server) region(raw string) (regions.Region, bool) {
	if raw == "" {
		return s.cfg.DefaultRegion, true
	}
	r := regions.Region(raw)
	return r, regions.Valid(r)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError maps a riot.APIError onto the response. Anything
// that is not a typed upstream failure, including transport errors,
// surfaces as a bad gateway without leaking internals.
func writeUpstreamError(w http.ResponseWriter, err error, notFoundMsg string) {
	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case riot.KindNotFound:
			writeError(w, http.StatusNotFound, notFoundMsg)
			return
		case riot.KindUnauthorized:
			writeError(w, http.StatusForbidden, "API key is invalid or expired")
			return
		case riot.KindRateLimited:
			writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
			return
		}
	}
	writeError(w, http.StatusBadGateway, "failed to reach the game data service")
}
