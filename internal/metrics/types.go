package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RankingComputations prometheus.Counter
	RankingDuration     prometheus.Histogram
	PointsRecorded      prometheus.Counter
	PlayersCreated      prometheus.Counter
	PlayersDeleted      prometheus.Counter
	NotifSent           prometheus.Counter
	NotifFailed         prometheus.Counter
	MessagesPublished   prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}

// Activity counter keys.
const (
	KeyRankingsServed  = "rankings_served"
	KeyPointsRecorded  = "points_recorded"
	KeyPlayersCreated  = "players_created"
	KeyPlayersDeleted  = "players_deleted"
	KeyReportsServed   = "reports_served"
	KeySlackCommands   = "slack_commands"
	KeyLeaderboardSent = "leaderboards_sent"
)
