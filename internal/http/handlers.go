package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatsHandler returns the persistent activity counters.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.Counters.GetAll()
		if err != nil {
			log.Error("Failed to load activity counters", "error", err)
			http.Error(w, "Failed to load stats", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, counters)
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would clear entire store")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Dry run: store not cleared")
			return
		}
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// rank loads the club and ranks every player under the current rules.
func (s *Server) rank() ([]ranking.Ranked, ranking.Rules, error) {
	players, err := s.Store.GetAllPlayers()
	if err != nil {
		return nil, ranking.Rules{}, fmt.Errorf("failed to load players: %w", err)
	}
	rules, err := s.Store.GetRules()
	if err != nil {
		return nil, ranking.Rules{}, err
	}

	start := time.Now()
	ranked := ranking.Rank(players, rules)
	s.Metrics.IncRankingComputations()
	s.Metrics.ObserveRankingDuration(time.Since(start).Seconds())
	log.Debug("Computed ranking", "players", len(ranked), "duration", time.Since(start))
	return ranked, rules, nil
}

// decodeAndValidate reads a JSON body into v and runs the struct validator.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.validate.StructCtx(r.Context(), v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

// writeStoreError maps store errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, club.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, club.ErrInvalid) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Error("Store operation failed", "action", action, "error", err)
	http.Error(w, "Failed to "+action, http.StatusInternalServerError)
}

// writeDryRun acknowledges a write that was skipped because of dry_run.
func writeDryRun(w http.ResponseWriter, action string, payload any) {
	log.Info("[Dry Run] Skipping write", "action", action, "payload", payload)
	writeJSON(w, http.StatusAccepted, map[string]any{
		"dryRun": true,
		"action": action,
		"input":  payload,
	})
}
