package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRankingComputations()
	ObserveRankingDuration(duration float64)
	IncPointsRecorded()
	IncPlayersCreated(n int)
	IncPlayersDeleted()
	IncNotifSent()
	IncNotifFailed()
	IncMessagesPublished()
	SetStartupTime(duration float64)
}

// CounterStore keeps activity counters that survive restarts.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
