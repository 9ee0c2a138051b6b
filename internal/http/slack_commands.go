package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slackMsg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
// The optional text narrows the list by name or membership code.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		search := strings.TrimSpace(r.FormValue("text"))
		log.Info("Received leaderboard command", "search", search)

		ranked, _, err := s.rank()
		if err != nil {
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			log.Error("Failed to compute ranking", "error", err)
			return
		}
		top := ranking.Top(ranking.Filter(ranked, ranking.Criteria{Search: search}), s.Cfg.LeaderboardSize)

		msg, err := s.Notifier.FormatLeaderboardResponse(top)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		s.Counters.Increment(metrics.KeySlackCommands)
		respondWithSlackMsg(w, msg)
	}
}

// PlayerCommandHandler returns a handler for the /player Slack command.
// The best ranked player whose name or membership code matches the text is reported.
func (s *Server) PlayerCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		query := strings.TrimSpace(r.FormValue("text"))
		if query == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received player command", "query", query)

		ranked, _, err := s.rank()
		if err != nil {
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			log.Error("Failed to compute ranking", "error", err)
			return
		}

		var msg any
		matches := ranking.Filter(ranked, ranking.Criteria{Search: query})
		if len(matches) == 0 {
			log.Warn("Could not find player", "query", query)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(query)
		} else {
			tournaments, terr := s.Store.GetAllTournaments()
			if terr != nil {
				http.Error(w, "Failed to list tournaments", http.StatusInternalServerError)
				log.Error("Failed to list tournaments", "error", terr)
				return
			}
			report, _ := ranking.BuildReport(ranked, tournaments, matches[0].ID)
			msg, err = s.Notifier.FormatPlayerReportResponse(report)
		}

		if err != nil {
			http.Error(w, "Failed to format player report", http.StatusInternalServerError)
			log.Error("Failed to format player report", "error", err)
			return
		}
		s.Counters.Increment(metrics.KeySlackCommands)
		respondWithSlackMsg(w, msg)
	}
}
