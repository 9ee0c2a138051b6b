package ranking

import (
	"strings"
	"time"
)

// AgeBracket selects players by age.
type AgeBracket string

const (
	AgeAll     AgeBracket = "all"
	AgeUnder18 AgeBracket = "u18"
	Age18To30  AgeBracket = "18-30"
	Age31To45  AgeBracket = "31-45"
	Age46Plus  AgeBracket = "46plus"
)

// FilterAll disables a gender or tournament criterion.
const FilterAll = "all"

// Criteria narrows a ranked list. Zero values match everyone.
type Criteria struct {
	Search     string
	Age        AgeBracket
	Gender     string
	Tournament string
	// AsOf is the date ages are computed on. Zero means now.
	AsOf time.Time
}

type predicate func(Ranked) bool

// Filter returns the rows of ranked that match every criterion, in their
// original order. GlobalRank values are carried through untouched.
func Filter(ranked []Ranked, c Criteria) []Ranked {
	preds := c.predicates()

	out := make([]Ranked, 0, len(ranked))
	for _, r := range ranked {
		if matchesAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r Ranked, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func (c Criteria) predicates() []predicate {
	var preds []predicate

	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		preds = append(preds, func(r Ranked) bool {
			return strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.MembershipCode), q)
		})
	}

	if c.Age != "" && c.Age != AgeAll {
		asOf := c.AsOf
		if asOf.IsZero() {
			asOf = time.Now()
		}
		bracket := c.Age
		preds = append(preds, func(r Ranked) bool {
			age, ok := AgeOn(r.DOB, asOf)
			if !ok {
				return false
			}
			return bracket.Contains(age)
		})
	}

	if g := NormalizeGender(c.Gender); g != "" {
		preds = append(preds, func(r Ranked) bool {
			return r.Gender == g
		})
	}

	if t := c.Tournament; t != "" && t != FilterAll {
		preds = append(preds, func(r Ranked) bool {
			return PlayedIn(r.Player, t)
		})
	}

	return preds
}

// Contains reports whether age falls in the bracket. Unknown brackets match
// any known age.
func (b AgeBracket) Contains(age int) bool {
	switch b {
	case AgeUnder18:
		return age < 18
	case Age18To30:
		return age >= 18 && age <= 30
	case Age31To45:
		return age >= 31 && age <= 45
	case Age46Plus:
		return age >= 46
	default:
		return true
	}
}

// NormalizeGender maps a gender criterion to M or F. It returns "" for
// "all", empty and unrecognised values.
func NormalizeGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "m", "male":
		return GenderMale
	case "f", "female":
		return GenderFemale
	default:
		return ""
	}
}

// PlayedIn reports whether any of the player's events belongs to the tournament.
func PlayedIn(p Player, tournamentID string) bool {
	for _, ev := range p.MatchHistory {
		if ev.TournamentID == tournamentID {
			return true
		}
	}
	return false
}
