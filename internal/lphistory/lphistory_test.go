package lphistory

import (
	"testing"

	"lol-tracker/internal/riot"
)

const puuid = "player-1"

func rankedMatch(endTS int64, win bool, champion string) riot.Match {
	return riot.Match{
		Metadata: riot.MatchMetadata{MatchID: champion},
		Info: riot.MatchInfo{
			QueueID:          420,
			GameEndTimestamp: endTS,
			Participants: []riot.Participant{
				{Puuid: "someone-else", Win: !win, ChampionName: "Garen"},
				{Puuid: puuid, Win: win, ChampionName: champion},
			},
		},
	}
}

func TestEstimate_LossWinWinScenario(t *testing.T) {
	// Three games, oldest first: loss, win, win, with current LP 50.
	// Backward walk: newest win emits 50 and steps to 30, middle win
	// emits 30 and steps to 10, oldest loss emits 10.
	matches := []riot.Match{
		rankedMatch(1000, false, "Ahri"),
		rankedMatch(2000, true, "Yasuo"),
		rankedMatch(3000, true, "Jinx"),
	}

	points := Estimate(matches, puuid, 50)

	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	wantLP := []int{10, 30, 50}
	for i, want := range wantLP {
		if points[i].LP != want {
			t.Errorf("points[%d].LP = %d, want %d", i, points[i].LP, want)
		}
		if points[i].GameNumber != i+1 {
			t.Errorf("points[%d].GameNumber = %d, want %d", i, points[i].GameNumber, i+1)
		}
	}
	if points[0].Win || !points[1].Win || !points[2].Win {
		t.Errorf("win flags = [%v %v %v], want [false true true]",
			points[0].Win, points[1].Win, points[2].Win)
	}
	if points[0].ChampionName != "Ahri" || points[2].ChampionName != "Jinx" {
		t.Error("champion names should follow chronological order")
	}
}

func TestEstimate_SortsByEndTimestamp(t *testing.T) {
	// Same games handed over newest-first; output must still be
	// chronological.
	matches := []riot.Match{
		rankedMatch(3000, true, "Jinx"),
		rankedMatch(1000, false, "Ahri"),
		rankedMatch(2000, true, "Yasuo"),
	}

	points := Estimate(matches, puuid, 50)

	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp < points[i-1].Timestamp {
			t.Errorf("points not in chronological order: %d before %d",
				points[i-1].Timestamp, points[i].Timestamp)
		}
	}
	if points[0].LP != 10 || points[2].LP != 50 {
		t.Errorf("LP = [%d _ %d], want [10 _ 50]", points[0].LP, points[2].LP)
	}
}

func TestEstimate_PerStepDeltas(t *testing.T) {
	matches := []riot.Match{
		rankedMatch(1000, true, "Ahri"),
		rankedMatch(2000, false, "Yasuo"),
		rankedMatch(3000, true, "Jinx"),
		rankedMatch(4000, false, "Lux"),
		rankedMatch(5000, true, "Jhin"),
	}

	points := Estimate(matches, puuid, 73)

	// Oldest to newest, each step is +20 if the later game was a win,
	// -15 if it was a loss. The uniform shift cannot change the diffs.
	for i := 1; i < len(points); i++ {
		diff := points[i].LP - points[i-1].LP
		want := -15
		if points[i].Win {
			want = 20
		}
		if diff != want {
			t.Errorf("step %d->%d diff = %d, want %d", i, i+1, diff, want)
		}
	}
}

func TestEstimate_NonNegativeAfterShift(t *testing.T) {
	// Two wins at 10 LP walk back to -10; the whole curve shifts up by
	// 10 so the minimum lands on zero.
	matches := []riot.Match{
		rankedMatch(1000, true, "Ahri"),
		rankedMatch(2000, true, "Yasuo"),
	}

	points := Estimate(matches, puuid, 10)

	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if points[0].LP != 0 || points[1].LP != 20 {
		t.Errorf("LP = [%d %d], want [0 20]", points[0].LP, points[1].LP)
	}
	for _, p := range points {
		if p.LP < 0 {
			t.Errorf("negative LP %d in trajectory", p.LP)
		}
	}
}

func TestEstimate_NoShiftWhenAlreadyNonNegative(t *testing.T) {
	matches := []riot.Match{
		rankedMatch(1000, false, "Ahri"),
		rankedMatch(2000, true, "Yasuo"),
	}

	points := Estimate(matches, puuid, 80)

	// Backward walk: the newest win emits 80 and steps down to 60, the
	// older loss emits 60. Nothing is negative, so no shift applies.
	if points[1].LP != 80 {
		t.Errorf("newest LP = %d, want the supplied 80", points[1].LP)
	}
	if points[0].LP != 60 {
		t.Errorf("oldest LP = %d, want 60", points[0].LP)
	}
}

func TestEstimate_SkipsMatchesWithoutPlayer(t *testing.T) {
	foreign := riot.Match{Info: riot.MatchInfo{
		QueueID:          420,
		GameEndTimestamp: 1500,
		Participants:     []riot.Participant{{Puuid: "stranger", Win: true}},
	}}
	matches := []riot.Match{
		rankedMatch(1000, true, "Ahri"),
		foreign,
		rankedMatch(2000, true, "Yasuo"),
	}

	points := Estimate(matches, puuid, 100)

	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
}

func TestEstimate_EmptyInput(t *testing.T) {
	points := Estimate(nil, puuid, 50)
	if len(points) != 0 {
		t.Errorf("len(points) = %d, want 0", len(points))
	}
}

func TestEstimate_DoesNotMutateInput(t *testing.T) {
	matches := []riot.Match{
		rankedMatch(3000, true, "Jinx"),
		rankedMatch(1000, false, "Ahri"),
	}

	Estimate(matches, puuid, 50)

	if matches[0].Info.GameEndTimestamp != 3000 {
		t.Error("Estimate reordered the caller's slice")
	}
}
