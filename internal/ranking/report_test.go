package ranking_test

import (
	"testing"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.May, d, 10, 0, 0, 0, time.UTC) }

	players := []ranking.Player{
		{ID: "p1", Name: "Serena", Wins: 1, ManualPoints: ptr(175), MatchHistory: []ranking.MatchEvent{
			{Date: day(1), TournamentID: "open", TournamentName: "Old Name", Stage: "final", Points: 100},
			{Date: day(3), TournamentID: "gone", TournamentName: "Deleted Cup", Points: 25},
			{Date: day(2), TournamentID: "open", Stage: "semis", Points: 50},
			{Date: day(4), OpponentName: "Roger", Result: "win", Score: "6-4"},
		}},
		{ID: "p2", Name: "Roger", ManualPoints: ptr(500)},
	}
	tournaments := []ranking.Tournament{{ID: "open", Name: "Club Open"}}

	ranked := ranking.Rank(players, ranking.Rules{})
	rep, ok := ranking.BuildReport(ranked, tournaments, "p1")
	require.True(t, ok)

	assert.Equal(t, 2, rep.GlobalRank)
	assert.Equal(t, 175.0, rep.Points)
	assert.Equal(t, 25.0, rep.WinPct)

	require.Len(t, rep.History, 4)
	assert.Equal(t, day(4), rep.History[0].Date)
	assert.Equal(t, "Deleted Cup", rep.History[1].TournamentName)
	assert.Equal(t, "Club Open", rep.History[2].TournamentName)
	assert.Equal(t, "Club Open", rep.History[3].TournamentName)

	require.Len(t, rep.ByTournament, 2)
	assert.Equal(t, ranking.TournamentSubtotal{TournamentID: "open", Name: "Club Open", Points: 150, Events: 2}, rep.ByTournament[0])
	assert.Equal(t, ranking.TournamentSubtotal{TournamentID: "gone", Name: "Deleted Cup", Points: 25, Events: 1}, rep.ByTournament[1])

	assert.Equal(t, "Old Name", players[0].MatchHistory[0].TournamentName, "input history must not change")
}

func TestBuildReport_UnknownPlayer(t *testing.T) {
	_, ok := ranking.BuildReport(nil, nil, "missing")
	assert.False(t, ok)
}
