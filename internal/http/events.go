package http

import (
	"io"
	"net/http"

	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/pubsub"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
)

// RecordPointsHandler stores a points event for a player and publishes
// EventPointsRecorded so the announcement happens out of band.
func (s *Server) RecordPointsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordPointsRequest
		if err := s.decodeAndValidate(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		event := ranking.MatchEvent{
			Date:         req.Date,
			TournamentID: req.TournamentID,
			Stage:        req.Stage,
			Points:       *req.Points,
		}

		if isDryRunFromContext(r) {
			if _, err := s.Store.GetPlayer(req.PlayerID); err != nil {
				writeStoreError(w, err, "load player")
				return
			}
			writeDryRun(w, "record points", req)
			return
		}

		player, err := s.Store.RecordPoints(req.PlayerID, event)
		if err != nil {
			writeStoreError(w, err, "record points")
			return
		}
		s.Metrics.IncPointsRecorded()
		s.Counters.Increment(metrics.KeyPointsRecorded)

		stored := player.MatchHistory[len(player.MatchHistory)-1]
		msg := pubsub.PointsRecorded{PlayerID: player.ID, Event: stored}
		if err := s.PubSub.SendMessage(pubsub.EventPointsRecorded, msg); err != nil {
			// The points are stored; only the announcement is lost.
			log.Error("Failed to publish points recorded event", "error", err, "playerID", player.ID)
		} else {
			s.Metrics.IncMessagesPublished()
		}

		writeJSON(w, http.StatusCreated, player)
	}
}

// PointsRecordedHandler is the push endpoint for EventPointsRecorded. It
// ranks the club and announces the player's new standing.
func (s *Server) PointsRecordedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received points recorded message", "body", string(bodyBytes))

		rawData, err := pubsub.UnwrapPush(bodyBytes)
		if err != nil {
			log.Error("Failed to unwrap push message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var msg pubsub.PointsRecorded
		if err := s.PubSub.ProcessMessage(rawData, &msg); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		ranked, _, err := s.rank()
		if err != nil {
			log.Error("Failed to compute ranking", "error", err)
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			return
		}
		entry, ok := ranking.Find(ranked, msg.PlayerID)
		if !ok {
			// Player deleted since; acknowledge so the message is not redelivered.
			log.Warn("Points recorded for unknown player, skipping notification", "playerID", msg.PlayerID)
			w.Write([]byte("OK"))
			return
		}

		if err := s.Notifier.SendPointsNotification(entry, msg.Event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send points notification", "error", err, "playerID", msg.PlayerID)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
