package ranking

import (
	"cmp"
	"slices"
)

// TournamentSubtotal is the points a player earned in one tournament.
type TournamentSubtotal struct {
	TournamentID string  `json:"tournamentId"`
	Name         string  `json:"name"`
	Points       float64 `json:"points"`
	Events       int     `json:"events"`
}

// Report is the per-player view: the ranked row, the match history newest
// first with tournament names resolved, and points per tournament.
type Report struct {
	Ranked
	History      []MatchEvent         `json:"history"`
	ByTournament []TournamentSubtotal `json:"byTournament"`
}

// BuildReport assembles the report for playerID from an already ranked list.
// Tournament names are taken from tournaments, then from the name stored on
// the event, then fall back to the id.
func BuildReport(ranked []Ranked, tournaments []Tournament, playerID string) (Report, bool) {
	row, ok := Find(ranked, playerID)
	if !ok {
		return Report{}, false
	}

	names := make(map[string]string, len(tournaments))
	for _, t := range tournaments {
		names[t.ID] = t.Name
	}

	history := slices.Clone(row.MatchHistory)
	for i := range history {
		history[i].TournamentName = resolveName(names, history[i])
	}
	slices.SortStableFunc(history, func(a, b MatchEvent) int {
		return b.Date.Compare(a.Date)
	})

	return Report{
		Ranked:       row,
		History:      history,
		ByTournament: subtotals(row.MatchHistory, names),
	}, true
}

func resolveName(names map[string]string, ev MatchEvent) string {
	if ev.TournamentID == "" {
		return ev.TournamentName
	}
	if n, ok := names[ev.TournamentID]; ok && n != "" {
		return n
	}
	if ev.TournamentName != "" {
		return ev.TournamentName
	}
	return ev.TournamentID
}

func subtotals(history []MatchEvent, names map[string]string) []TournamentSubtotal {
	index := make(map[string]int)
	out := make([]TournamentSubtotal, 0)
	for _, ev := range history {
		if ev.TournamentID == "" {
			continue
		}
		i, ok := index[ev.TournamentID]
		if !ok {
			i = len(out)
			index[ev.TournamentID] = i
			out = append(out, TournamentSubtotal{
				TournamentID: ev.TournamentID,
				Name:         resolveName(names, ev),
			})
		}
		out[i].Points += ev.Points
		out[i].Events++
	}
	slices.SortStableFunc(out, func(a, b TournamentSubtotal) int {
		return cmp.Compare(b.Points, a.Points)
	})
	return out
}
