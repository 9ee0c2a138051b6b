package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aosike91/Tennis-Ranking/internal/avatar"
	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
)

// maxAvatarSize bounds the ?size= parameter of the avatar endpoint.
const maxAvatarSize = 1024

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetAllPlayers()
		if err != nil {
			writeStoreError(w, err, "list players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlayerRequest
		if err := s.decodeAndValidate(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "create player", req)
			return
		}

		player, err := s.Store.AddPlayer(ranking.Player{
			Name:           req.Name,
			DOB:            req.DOB,
			Phone:          req.Phone,
			Gender:         req.Gender,
			Category:       req.Category,
			MembershipCode: req.MembershipCode,
			Photo:          req.Photo,
		})
		if err != nil {
			writeStoreError(w, err, "create player")
			return
		}
		s.Metrics.IncPlayersCreated(1)
		s.Counters.Increment(metrics.KeyPlayersCreated)
		writeJSON(w, http.StatusCreated, player)
	}
}

// ImportPlayersHandler bulk-loads a JSON array of players, as exported by GET /players.
func (s *Server) ImportPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var players []ranking.Player
		if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
			http.Error(w, "invalid JSON: expected an array of players", http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "import players", map[string]int{"received": len(players)})
			return
		}

		imported, err := s.Store.ImportPlayers(players)
		if err != nil {
			writeStoreError(w, err, "import players")
			return
		}
		s.Metrics.IncPlayersCreated(imported)
		for range imported {
			s.Counters.Increment(metrics.KeyPlayersCreated)
		}
		writeJSON(w, http.StatusOK, importResponse{Imported: imported, Skipped: len(players) - imported})
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var patch club.PlayerPatch
		if err := s.decodeAndValidate(r, &patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "update player "+id, patch)
			return
		}

		player, err := s.Store.UpdatePlayer(id, patch)
		if err != nil {
			writeStoreError(w, err, "update player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if isDryRunFromContext(r) {
			writeDryRun(w, "delete player "+id, nil)
			return
		}
		if err := s.Store.DeletePlayer(id); err != nil {
			writeStoreError(w, err, "delete player")
			return
		}
		s.Metrics.IncPlayersDeleted()
		s.Counters.Increment(metrics.KeyPlayersDeleted)
		w.WriteHeader(http.StatusNoContent)
	}
}

// RecordResultHandler adds a win or a loss to a player's counters.
func (s *Server) RecordResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var req recordResultRequest
		if err := s.decodeAndValidate(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "record result for "+id, req)
			return
		}

		player, err := s.Store.RecordResult(id, *req.Won)
		if err != nil {
			writeStoreError(w, err, "record result")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

// PlayerReportHandler returns the player's ranked row, history and per-tournament points.
func (s *Server) PlayerReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		ranked, _, err := s.rank()
		if err != nil {
			log.Error("Failed to compute ranking", "error", err)
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			return
		}
		tournaments, err := s.Store.GetAllTournaments()
		if err != nil {
			writeStoreError(w, err, "list tournaments")
			return
		}

		report, ok := ranking.BuildReport(ranked, tournaments, id)
		if !ok {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		s.Counters.Increment(metrics.KeyReportsServed)
		writeJSON(w, http.StatusOK, report)
	}
}

// PlayerAvatarHandler renders the generated initials avatar for a player.
func (s *Server) PlayerAvatarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := s.Store.GetPlayer(r.PathValue("id"))
		if err != nil {
			writeStoreError(w, err, "load player")
			return
		}

		size := avatar.DefaultSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > maxAvatarSize {
				http.Error(w, "invalid size", http.StatusBadRequest)
				return
			}
			size = n
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(avatar.SVG(player.Name, size)))
	}
}
