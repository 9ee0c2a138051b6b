package ranking

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank scores every player and orders them by points, highest first.
// Players on equal points are ordered by name using the root collation,
// so "alice" and "Alice" sort next to each other ahead of "Bob". The sort is
// stable, so identical input always yields identical ranks.
//
// GlobalRank is assigned here, over the whole population. Filter keeps it.
func Rank(players []Player, rules Rules) []Ranked {
	out := make([]Ranked, len(players))
	for i, p := range players {
		out[i] = Ranked{Enriched: Score(p, rules)}
	}

	// Collators keep internal buffers; one per call.
	col := collate.New(language.Und)
	slices.SortStableFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return col.CompareString(a.Name, b.Name)
	})

	for i := range out {
		out[i].GlobalRank = i + 1
	}
	return out
}

// Find returns the ranked row for a player id.
func Find(ranked []Ranked, playerID string) (Ranked, bool) {
	for _, r := range ranked {
		if r.ID == playerID {
			return r, true
		}
	}
	return Ranked{}, false
}

// Top returns at most n rows from the head of ranked.
func Top(ranked []Ranked, n int) []Ranked {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
