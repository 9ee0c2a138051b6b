package http

import (
	"net/http"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/config"
	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/notifier"
	"github.com/aosike91/Tennis-Ranking/internal/pubsub"
	"github.com/go-playground/validator/v10"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, counters metrics.CounterStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		Counters:       counters,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		PubSub:         pubsub,
		Router:         http.NewServeMux(),
		validate:       validator.New(),
		now:            time.Now,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("POST /clear", Chain(s.ClearStoreHandler(), paramsMiddleware))

	s.Router.Handle("GET /ranking", Chain(s.RankingHandler(), paramsMiddleware))
	s.Router.Handle("POST /ranking/announce", Chain(s.AnnounceRankingHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /players/bulk", Chain(s.ImportPlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/report", Chain(s.PlayerReportHandler(), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/avatar.svg", Chain(s.PlayerAvatarHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /players/{id}", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /players/{id}/results", Chain(s.RecordResultHandler(), paramsMiddleware))

	s.Router.Handle("GET /tournaments", Chain(s.ListTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments", Chain(s.CreateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /tournaments/{id}", Chain(s.UpdateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /tournaments/{id}", Chain(s.DeleteTournamentHandler(), paramsMiddleware))

	s.Router.Handle("GET /rules", Chain(s.GetRulesHandler(), paramsMiddleware))
	s.Router.Handle("PUT /rules", Chain(s.SetRulesHandler(), paramsMiddleware))
	s.Router.Handle("POST /rules/reset", Chain(s.ResetRulesHandler(), paramsMiddleware))

	s.Router.Handle("POST /events", Chain(s.RecordPointsHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/points-recorded", Chain(s.PointsRecordedHandler(), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/player", Chain(s.PlayerCommandHandler(), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
