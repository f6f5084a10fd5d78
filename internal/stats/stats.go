// Package stats reduces a batch of matches into the win/loss tally,
// per-champion summaries, and recently-played champion list shown on
// the dashboard. Rates and averages are formatted as strings because
// the UI renders them verbatim.
package stats

import (
	"fmt"
	"sort"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/riot"
)

// Tally is the overall win/loss record across the batch.
type Tally struct {
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Total   int    `json:"total"`
	WinRate string `json:"winRate"`
}

// ChampionSummary aggregates every game on one champion.
type ChampionSummary struct {
	ChampionName string `json:"championName"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	WinRate      string `json:"winRate"`
	KDA          string `json:"kda"`
	AvgKills     string `json:"avgKills"`
	AvgDeaths    string `json:"avgDeaths"`
	AvgAssists   string `json:"avgAssists"`
}

// Summary is the full stats payload for one player over one batch.
type Summary struct {
	Recent          Tally             `json:"recent20"`
	Champions       []ChampionSummary `json:"champions"`
	RecentChampions []string          `json:"recentChampions"`
}

// Summarize reduces matches for the player identified by puuid. Matches
// the player did not take part in are skipped. Champion buckets are
// keyed by the champion name exactly as reported. With the input sorted
// newest-first, RecentChampions comes out most-recent-first.
func Summarize(matches []riot.Match, puuid string) Summary {
	var wins, losses int
	buckets := make(map[string]*ChampionSummary)
	var order []string
	recent := make([]string, 0, constants.RecentChampionLimit)

	for i := range matches {
		player := matches[i].ParticipantByPuuid(puuid)
		if player == nil {
			continue
		}

		if player.Win {
			wins++
		} else {
			losses++
		}

		if !contains(recent, player.ChampionName) {
			recent = append(recent, player.ChampionName)
		}

		bucket, ok := buckets[player.ChampionName]
		if !ok {
			bucket = &ChampionSummary{ChampionName: player.ChampionName}
			buckets[player.ChampionName] = bucket
			order = append(order, player.ChampionName)
		}
		bucket.Games++
		if player.Win {
			bucket.Wins++
		}
		bucket.Kills += player.Kills
		bucket.Deaths += player.Deaths
		bucket.Assists += player.Assists
	}

	// Descending by games, ties kept in encounter order.
	sort.SliceStable(order, func(i, j int) bool {
		return buckets[order[i]].Games > buckets[order[j]].Games
	})
	if len(order) > constants.TopChampionLimit {
		order = order[:constants.TopChampionLimit]
	}

	champions := make([]ChampionSummary, 0, len(order))
	for _, name := range order {
		b := *buckets[name]
		b.WinRate = formatRate(b.Wins, b.Games)
		b.KDA = formatKDA(b.Kills, b.Deaths, b.Assists)
		b.AvgKills = formatAvg(b.Kills, b.Games)
		b.AvgDeaths = formatAvg(b.Deaths, b.Games)
		b.AvgAssists = formatAvg(b.Assists, b.Games)
		champions = append(champions, b)
	}

	if len(recent) > constants.RecentChampionLimit {
		recent = recent[:constants.RecentChampionLimit]
	}

	return Summary{
		Recent: Tally{
			Wins:    wins,
			Losses:  losses,
			Total:   wins + losses,
			WinRate: formatRate(wins, wins+losses),
		},
		Champions:       champions,
		RecentChampions: recent,
	}
}

// formatRate renders wins/games as a percentage with one decimal,
// "0.0" when there are no games.
func formatRate(wins, games int) string {
	if games == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(wins)/float64(games)*100)
}

// formatKDA renders (kills+assists)/deaths with two decimals. Zero
// deaths degrades to kills+assists rather than dividing by zero.
func formatKDA(kills, deaths, assists int) string {
	if deaths > 0 {
		return fmt.Sprintf("%.2f", float64(kills+assists)/float64(deaths))
	}
	return fmt.Sprintf("%.2f", float64(kills+assists))
}

func formatAvg(total, games int) string {
	if games == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(games))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
