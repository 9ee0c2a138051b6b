package http

import (
	"net/http"

	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
)

// RankingHandler serves the ranked and filtered player list.
// Query: search, age, gender, tournament. Global ranks are kept after filtering.
func (s *Server) RankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, rules, err := s.rank()
		if err != nil {
			log.Error("Failed to compute ranking", "error", err)
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		criteria := ranking.Criteria{
			Search:     q.Get("search"),
			Age:        ranking.AgeBracket(q.Get("age")),
			Gender:     q.Get("gender"),
			Tournament: q.Get("tournament"),
			AsOf:       s.now(),
		}
		filtered := ranking.Filter(ranked, criteria)
		s.Counters.Increment(metrics.KeyRankingsServed)

		log.Debug("Serving ranking", "population", len(ranked), "matched", len(filtered))
		writeJSON(w, http.StatusOK, rankingResponse{
			Rules:      rules,
			Population: len(ranked),
			Players:    filtered,
		})
	}
}

// AnnounceRankingHandler posts the top of the ranking to the Slack channel.
func (s *Server) AnnounceRankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, _, err := s.rank()
		if err != nil {
			log.Error("Failed to compute ranking", "error", err)
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			return
		}

		top := ranking.Top(ranked, s.Cfg.LeaderboardSize)
		if err := s.Notifier.SendLeaderboard(top, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send leaderboard", "error", err)
			http.Error(w, "Failed to send leaderboard", http.StatusBadGateway)
			return
		}
		s.Counters.Increment(metrics.KeyLeaderboardSent)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
