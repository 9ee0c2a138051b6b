package http

import (
	"net/http"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
)

func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := s.Store.GetAllTournaments()
		if err != nil {
			writeStoreError(w, err, "list tournaments")
			return
		}
		writeJSON(w, http.StatusOK, tournaments)
	}
}

func (s *Server) CreateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTournamentRequest
		if err := s.decodeAndValidate(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "create tournament", req)
			return
		}

		t, err := s.Store.AddTournament(ranking.Tournament{
			Name:        req.Name,
			TotalPoints: req.TotalPoints,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Type:        req.Type,
			Division:    req.Division,
		})
		if err != nil {
			writeStoreError(w, err, "create tournament")
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

func (s *Server) UpdateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var patch club.TournamentPatch
		if err := s.decodeAndValidate(r, &patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			writeDryRun(w, "update tournament "+id, patch)
			return
		}

		t, err := s.Store.UpdateTournament(id, patch)
		if err != nil {
			writeStoreError(w, err, "update tournament")
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// DeleteTournamentHandler removes a tournament. Points already recorded for it stay.
func (s *Server) DeleteTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if isDryRunFromContext(r) {
			writeDryRun(w, "delete tournament "+id, nil)
			return
		}
		if err := s.Store.DeleteTournament(id); err != nil {
			writeStoreError(w, err, "delete tournament")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
