package ranking

import (
	"math"
	"slices"
)

// Score derives a player's point total and win percentage under the given rules.
//
// Tournament points come from exactly one source: the ManualPoints counter
// when the player carries one, otherwise the sum of Points over the match
// history. The two are never added together. The win/loss bonus from rules
// is added on top of whichever source was used.
func Score(p Player, rules Rules) Enriched {
	tournamentPoints, source := pointsFromSource(p)

	wins := max(p.Wins, 0)
	losses := max(p.Losses, 0)
	base := float64(wins)*rules.WinPoints + float64(losses)*rules.LossPoints

	total := len(p.MatchHistory)

	return Enriched{
		Player:           clonePlayer(p),
		Points:           tournamentPoints + base,
		TournamentPoints: tournamentPoints,
		BasePoints:       base,
		WinPct:           winPercentage(wins, total),
		Total:            total,
		PointSource:      source,
	}
}

// EventPoints sums the points awarded across a match history.
func EventPoints(history []MatchEvent) float64 {
	var sum float64
	for _, ev := range history {
		sum += ev.Points
	}
	return sum
}

func pointsFromSource(p Player) (float64, PointSource) {
	if p.ManualPoints != nil {
		return *p.ManualPoints, SourceCounter
	}
	return EventPoints(p.MatchHistory), SourceEvents
}

// winPercentage rounds half-up to one decimal and caps at 100, since the
// win counter and the event log are entered independently.
func winPercentage(wins, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := math.Floor(float64(wins)/float64(total)*1000+0.5) / 10
	return math.Min(pct, 100)
}

func clonePlayer(p Player) Player {
	out := p
	out.MatchHistory = slices.Clone(p.MatchHistory)
	if p.ManualPoints != nil {
		v := *p.ManualPoints
		out.ManualPoints = &v
	}
	return out
}
