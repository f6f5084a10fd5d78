package domain

import "lol-tracker/internal/riot"

// Profile is everything the dashboard needs to render a summoner page:
// identity, platform record, ranked standings, and recent match IDs.
type Profile struct {
	Account  riot.Account       `json:"account"`
	Summoner riot.Summoner      `json:"summoner"`
	Leagues  []riot.LeagueEntry `json:"leagues"`
	MatchIDs []string           `json:"matchIds"`
}

// Rank is the solo-queue standing shown next to a player's name.
type Rank struct {
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
}

// PlayerRank pairs a puuid with its solo-queue rank. Rank is nil when
// the player is unranked or the lookup failed.
type PlayerRank struct {
	Puuid string `json:"puuid"`
	Rank  *Rank  `json:"rank"`
}
