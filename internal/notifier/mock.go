package notifier

import (
	"sync"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendPointsNotificationCalls []struct {
		Entry  ranking.Ranked
		Event  ranking.MatchEvent
		DryRun bool
	}
	SendLeaderboardCalls [][]ranking.Ranked

	// Spies
	SendPointsNotificationFunc       func(entry ranking.Ranked, event ranking.MatchEvent, dryRun bool) error
	FormatLeaderboardResponseFunc    func(ranked []ranking.Ranked) (any, error)
	FormatPlayerReportResponseFunc   func(report ranking.Report) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)

	// Call records for format functions
	LastLeaderboardResponse    []ranking.Ranked
	LastPlayerReport           *ranking.Report
	LastPlayerNotFoundResponse string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPointsNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerReport = nil
	m.LastPlayerNotFoundResponse = ""
}

func (m *Mock) SendPointsNotification(entry ranking.Ranked, event ranking.MatchEvent, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPointsNotificationCalls = append(m.SendPointsNotificationCalls, struct {
		Entry  ranking.Ranked
		Event  ranking.MatchEvent
		DryRun bool
	}{entry, event, dryRun})
	if m.SendPointsNotificationFunc != nil {
		return m.SendPointsNotificationFunc(entry, event, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(ranked []ranking.Ranked, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, ranked)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(ranked []ranking.Ranked) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastLeaderboardResponse = ranked
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(ranked)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerReportResponse(report ranking.Report) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerReport = &report
	if m.FormatPlayerReportResponseFunc != nil {
		return m.FormatPlayerReportResponseFunc(report)
	}
	return "formatted_player_report", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerNotFoundResponse = query
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query)
	}
	return "formatted_player_not_found", nil
}
