package club

import "github.com/aosike91/Tennis-Ranking/internal/ranking"

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	AddPlayer(player ranking.Player) (ranking.Player, error)
	ImportPlayers(players []ranking.Player) (int, error)
	UpdatePlayer(playerID string, patch PlayerPatch) (ranking.Player, error)
	DeletePlayer(playerID string) error
	GetPlayer(playerID string) (ranking.Player, error)
	GetAllPlayers() ([]ranking.Player, error)
	RecordPoints(playerID string, event ranking.MatchEvent) (ranking.Player, error)
	RecordResult(playerID string, won bool) (ranking.Player, error)

	AddTournament(tournament ranking.Tournament) (ranking.Tournament, error)
	UpdateTournament(tournamentID string, patch TournamentPatch) (ranking.Tournament, error)
	DeleteTournament(tournamentID string) error
	GetTournament(tournamentID string) (ranking.Tournament, error)
	GetAllTournaments() ([]ranking.Tournament, error)

	GetRules() (ranking.Rules, error)
	SetRules(rules ranking.Rules) error
	ResetRules() error

	Clear()
}
