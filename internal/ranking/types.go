package ranking

import "time"

// Gender values stored on a player.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Tournament types and divisions.
const (
	TournamentSingle = "single"
	TournamentDouble = "double"

	DivisionMale   = "male"
	DivisionFemale = "female"
	DivisionMixed  = "mixed"
)

// MatchEvent is one recorded scoring occurrence for a player.
// Points-based events carry TournamentID/Stage/Points. Older win/loss-only
// events carry OpponentName/Result/Score and score nothing.
type MatchEvent struct {
	Date           time.Time `json:"date,omitzero"`
	TournamentID   string    `json:"tournamentId,omitempty"`
	TournamentName string    `json:"tournamentName,omitempty"`
	Stage          string    `json:"stage,omitempty"`
	Points         float64   `json:"points,omitempty"`

	OpponentName string `json:"opponentName,omitempty"`
	Result       string `json:"result,omitempty"`
	Score        string `json:"score,omitempty"`
}

// Player is a club member as the host stores it.
type Player struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DOB            string   `json:"dob,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Category       string   `json:"category,omitempty"`
	MembershipCode string   `json:"membershipCode,omitempty"`
	Photo          string   `json:"photo,omitempty"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	ManualPoints   *float64 `json:"manualPoints,omitempty"`

	MatchHistory []MatchEvent `json:"matchHistory"`
}

// Tournament is an event players earn points in.
type Tournament struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TotalPoints float64 `json:"totalPoints"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Type        string  `json:"type"`
	Division    string  `json:"division"`
}

// Rules are the scalar bonuses applied per recorded win and loss.
type Rules struct {
	WinPoints  float64 `json:"winPoints"`
	LossPoints float64 `json:"lossPoints"`
}

// DefaultRules counts tournament points only.
func DefaultRules() Rules {
	return Rules{WinPoints: 0, LossPoints: 0}
}

// PointSource says where a player's tournament points came from.
type PointSource string

const (
	// SourceCounter means the player's ManualPoints counter was used.
	SourceCounter PointSource = "counter"
	// SourceEvents means the points were summed from the match history.
	SourceEvents PointSource = "events"
)

// Enriched is a player with derived scoring fields.
type Enriched struct {
	Player
	Points           float64     `json:"points"`
	TournamentPoints float64     `json:"tournamentPoints"`
	BasePoints       float64     `json:"basePoints"`
	WinPct           float64     `json:"winPct"`
	Total            int         `json:"total"`
	PointSource      PointSource `json:"pointSource"`
}

// Ranked is an enriched player with its position in the full population.
type Ranked struct {
	Enriched
	GlobalRank int `json:"globalRank"`
}
