package club

import (
	"sync"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
)

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use. Methods without a Func return zero values.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc         func(player ranking.Player) (ranking.Player, error)
	ImportPlayersFunc     func(players []ranking.Player) (int, error)
	UpdatePlayerFunc      func(playerID string, patch PlayerPatch) (ranking.Player, error)
	DeletePlayerFunc      func(playerID string) error
	GetPlayerFunc         func(playerID string) (ranking.Player, error)
	GetAllPlayersFunc     func() ([]ranking.Player, error)
	RecordPointsFunc      func(playerID string, event ranking.MatchEvent) (ranking.Player, error)
	RecordResultFunc      func(playerID string, won bool) (ranking.Player, error)
	AddTournamentFunc     func(tournament ranking.Tournament) (ranking.Tournament, error)
	UpdateTournamentFunc  func(tournamentID string, patch TournamentPatch) (ranking.Tournament, error)
	DeleteTournamentFunc  func(tournamentID string) error
	GetTournamentFunc     func(tournamentID string) (ranking.Tournament, error)
	GetAllTournamentsFunc func() ([]ranking.Tournament, error)
	GetRulesFunc          func() (ranking.Rules, error)
	SetRulesFunc          func(rules ranking.Rules) error
	ResetRulesFunc        func() error
	ClearFunc             func()

	// Call records
	AddPlayerCalls    []ranking.Player
	DeletePlayerCalls []string
	RecordPointsCalls []struct {
		PlayerID string
		Event    ranking.MatchEvent
	}
	SetRulesCalls []ranking.Rules
	ClearCalls    int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddPlayer(player ranking.Player) (ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, player)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(player)
	}
	return player, nil
}

func (m *MockStore) ImportPlayers(players []ranking.Player) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ImportPlayersFunc != nil {
		return m.ImportPlayersFunc(players)
	}
	return len(players), nil
}

func (m *MockStore) UpdatePlayer(playerID string, patch PlayerPatch) (ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(playerID, patch)
	}
	return ranking.Player{ID: playerID}, nil
}

func (m *MockStore) DeletePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, playerID)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return ranking.Player{ID: playerID}, nil
}

func (m *MockStore) GetAllPlayers() ([]ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []ranking.Player{}, nil
}

func (m *MockStore) RecordPoints(playerID string, event ranking.MatchEvent) (ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordPointsCalls = append(m.RecordPointsCalls, struct {
		PlayerID string
		Event    ranking.MatchEvent
	}{playerID, event})
	if m.RecordPointsFunc != nil {
		return m.RecordPointsFunc(playerID, event)
	}
	return ranking.Player{ID: playerID, MatchHistory: []ranking.MatchEvent{event}}, nil
}

func (m *MockStore) RecordResult(playerID string, won bool) (ranking.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(playerID, won)
	}
	return ranking.Player{ID: playerID}, nil
}

func (m *MockStore) AddTournament(tournament ranking.Tournament) (ranking.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddTournamentFunc != nil {
		return m.AddTournamentFunc(tournament)
	}
	return tournament, nil
}

func (m *MockStore) UpdateTournament(tournamentID string, patch TournamentPatch) (ranking.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateTournamentFunc != nil {
		return m.UpdateTournamentFunc(tournamentID, patch)
	}
	return ranking.Tournament{ID: tournamentID}, nil
}

func (m *MockStore) DeleteTournament(tournamentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteTournamentFunc != nil {
		return m.DeleteTournamentFunc(tournamentID)
	}
	return nil
}

func (m *MockStore) GetTournament(tournamentID string) (ranking.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(tournamentID)
	}
	return ranking.Tournament{ID: tournamentID}, nil
}

func (m *MockStore) GetAllTournaments() ([]ranking.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllTournamentsFunc != nil {
		return m.GetAllTournamentsFunc()
	}
	return []ranking.Tournament{}, nil
}

func (m *MockStore) GetRules() (ranking.Rules, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRulesFunc != nil {
		return m.GetRulesFunc()
	}
	return ranking.DefaultRules(), nil
}

func (m *MockStore) SetRules(rules ranking.Rules) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetRulesCalls = append(m.SetRulesCalls, rules)
	if m.SetRulesFunc != nil {
		return m.SetRulesFunc(rules)
	}
	return nil
}

func (m *MockStore) ResetRules() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ResetRulesFunc != nil {
		return m.ResetRulesFunc()
	}
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
