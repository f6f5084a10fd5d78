// Package lphistory reconstructs an approximate LP trajectory over a
// player's recent ranked games. Riot only exposes the current LP total,
// so the history is estimated by walking the games newest-to-oldest and
// assuming a flat +20 for every win and -15 for every loss.
package lphistory

import (
	"sort"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/riot"
)

// Point is one game on the estimated trajectory.
type Point struct {
	GameNumber   int    `json:"gameNumber"`
	LP           int    `json:"lp"`
	Win          bool   `json:"win"`
	Timestamp    int64  `json:"timestamp"`
	ChampionName string `json:"championName"`
}

// Estimate builds the trajectory for the player identified by puuid,
// oldest game first. currentLP seeds the newest point; each step back
// undoes the assumed delta of the game just visited. If the walk dips
// below zero the whole curve is shifted up so its minimum is exactly
// zero.
//
// Known quirk: when the shift applies, the newest point no longer
// equals the caller-supplied currentLP even though that value is ground
// truth. Kept as is.
//
// Matches where the player did not participate are skipped. An empty
// input yields an empty trajectory, never an error.
func Estimate(matches []riot.Match, puuid string, currentLP int) []Point {
	sorted := make([]riot.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Info.GameEndTimestamp < sorted[j].Info.GameEndTimestamp
	})

	points := make([]Point, 0, len(sorted))
	lp := currentLP

	// Walk backward from the most recent game. lp holds the estimated
	// total immediately after the game being visited.
	for i := len(sorted) - 1; i >= 0; i-- {
		player := sorted[i].ParticipantByPuuid(puuid)
		if player == nil {
			continue
		}

		points = append(points, Point{
			GameNumber:   i + 1,
			LP:           lp,
			Win:          player.Win,
			Timestamp:    sorted[i].Info.GameEndTimestamp,
			ChampionName: player.ChampionName,
		})

		if player.Win {
			lp -= constants.LPWinDelta
		} else {
			lp += constants.LPLossDelta
		}
	}

	// Emitted newest-first; flip to chronological order.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	shiftNonNegative(points)
	return points
}

// shiftNonNegative raises every point by the same amount so the lowest
// one sits at zero. It is a uniform offset, never a per-point clamp.
func shiftNonNegative(points []Point) {
	if len(points) == 0 {
		return
	}
	min := points[0].LP
	for _, p := range points[1:] {
		if p.LP < min {
			min = p.LP
		}
	}
	if min >= 0 {
		return
	}
	for i := range points {
		points[i].LP -= min
	}
}
