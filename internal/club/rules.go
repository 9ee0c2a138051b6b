package club

import (
	"fmt"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
)

// GetRules returns the current win/loss bonus rules.
func (s *store) GetRules() (ranking.Rules, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r ranking.Rules
	err := s.db.QueryRow("SELECT win_points, loss_points FROM rules WHERE id = 1").Scan(&r.WinPoints, &r.LossPoints)
	if err != nil {
		return ranking.Rules{}, fmt.Errorf("failed to load rules: %w", err)
	}
	return r, nil
}

// SetRules replaces the current rules.
func (s *store) SetRules(rules ranking.Rules) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO rules (id, win_points, loss_points) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET win_points = excluded.win_points, loss_points = excluded.loss_points
	`, rules.WinPoints, rules.LossPoints)
	if err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	log.Info("Updated rules", "win_points", rules.WinPoints, "loss_points", rules.LossPoints)
	return nil
}

// ResetRules goes back to counting tournament points only.
func (s *store) ResetRules() error {
	return s.SetRules(ranking.DefaultRules())
}
