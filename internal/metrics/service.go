package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RankingComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_computations_total",
			Help: "The total number of times the ranking was computed.",
		}),
		RankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "club_ranking_computation_duration_seconds",
			Help:    "The duration of scoring, ranking and filtering the player list.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		PointsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_points_recorded_total",
			Help: "The total number of points events recorded.",
		}),
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_players_created_total",
			Help: "The total number of players created or imported.",
		}),
		PlayersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_players_deleted_total",
			Help: "The total number of players deleted.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		MessagesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_ranking_messages_published_total",
			Help: "The total number of Pub/Sub messages published.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "club_ranking_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RankingComputations,
		s.RankingDuration,
		s.PointsRecorded,
		s.PlayersCreated,
		s.PlayersDeleted,
		s.NotifSent,
		s.NotifFailed,
		s.MessagesPublished,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRankingComputations() {
	s.RankingComputations.Inc()
}

func (s *Service) ObserveRankingDuration(duration float64) {
	s.RankingDuration.Observe(duration)
}

func (s *Service) IncPointsRecorded() {
	s.PointsRecorded.Inc()
}

func (s *Service) IncPlayersCreated(n int) {
	s.PlayersCreated.Add(float64(n))
}

func (s *Service) IncPlayersDeleted() {
	s.PlayersDeleted.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) IncMessagesPublished() {
	s.MessagesPublished.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
