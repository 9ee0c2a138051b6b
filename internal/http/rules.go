package http

import (
	"net/http"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
)

func (s *Server) GetRulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := s.Store.GetRules()
		if err != nil {
			writeStoreError(w, err, "load rules")
			return
		}
		writeJSON(w, http.StatusOK, rules)
	}
}

func (s *Server) SetRulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rulesRequest
		if err := s.decodeAndValidate(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rules := ranking.Rules{WinPoints: *req.WinPoints, LossPoints: *req.LossPoints}
		if isDryRunFromContext(r) {
			writeDryRun(w, "set rules", rules)
			return
		}
		if err := s.Store.SetRules(rules); err != nil {
			writeStoreError(w, err, "save rules")
			return
		}
		writeJSON(w, http.StatusOK, rules)
	}
}

// ResetRulesHandler goes back to ranking on tournament points only.
func (s *Server) ResetRulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isDryRunFromContext(r) {
			writeDryRun(w, "reset rules", ranking.DefaultRules())
			return
		}
		if err := s.Store.ResetRules(); err != nil {
			writeStoreError(w, err, "reset rules")
			return
		}
		writeJSON(w, http.StatusOK, ranking.DefaultRules())
	}
}
