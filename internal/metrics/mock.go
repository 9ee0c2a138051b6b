package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	rankingComputations int
	rankingDurations    []float64
	pointsRecorded      int
	playersCreated      int
	playersDeleted      int
	notifSent           int
	notifFailed         int
	messagesPublished   int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		rankingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRankingComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingComputations++
}

func (m *Mock) ObserveRankingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingDurations = append(m.rankingDurations, duration)
}

func (m *Mock) IncPointsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointsRecorded++
}

func (m *Mock) IncPlayersCreated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersCreated += n
}

func (m *Mock) IncPlayersDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersDeleted++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) IncMessagesPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesPublished++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RankingComputations returns the number of times IncRankingComputations was called.
func (m *Mock) RankingComputations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingComputations
}

// RankingDurations returns every observed ranking duration.
func (m *Mock) RankingDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.rankingDurations...)
}

// PointsRecorded returns the number of times IncPointsRecorded was called.
func (m *Mock) PointsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointsRecorded
}

// PlayersCreated returns the sum passed to IncPlayersCreated.
func (m *Mock) PlayersCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersCreated
}

// PlayersDeleted returns the number of times IncPlayersDeleted was called.
func (m *Mock) PlayersDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersDeleted
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

// MessagesPublished returns the number of times IncMessagesPublished was called.
func (m *Mock) MessagesPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesPublished
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
