package club

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const tournamentColumns = `id, name, total_points, start_date, end_date, type, division`

// AddTournament stores a new tournament with a fresh id.
func (s *store) AddTournament(t ranking.Tournament) (ranking.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ranking.Tournament{}, fmt.Errorf("tournament name is required: %w", ErrInvalid)
	}
	t.Type = normalizeType(t.Type)
	t.Division = normalizeDivision(t.Division)

	_, err := s.db.Exec(`
		INSERT INTO tournaments (`+tournamentColumns+`, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.TotalPoints, t.StartDate, t.EndDate, t.Type, t.Division, s.now().UnixMilli())
	if err != nil {
		return ranking.Tournament{}, fmt.Errorf("failed to insert tournament: %w", err)
	}

	log.Info("Added tournament", "tournamentID", t.ID, "name", t.Name, "type", t.Type, "division", t.Division)
	return t, nil
}

// UpdateTournament applies a field patch to an existing tournament. Names
// already snapshotted on match events are left alone; reports resolve the
// current name through the tournament list.
func (s *store) UpdateTournament(tournamentID string, patch TournamentPatch) (ranking.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getTournament(s.db, tournamentID)
	if err != nil {
		return ranking.Tournament{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return ranking.Tournament{}, fmt.Errorf("tournament name is required: %w", ErrInvalid)
		}
		t.Name = name
	}
	if patch.TotalPoints != nil {
		t.TotalPoints = *patch.TotalPoints
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.Type != nil {
		t.Type = normalizeType(*patch.Type)
	}
	if patch.Division != nil {
		t.Division = normalizeDivision(*patch.Division)
	}

	_, err = s.db.Exec(`
		UPDATE tournaments SET name = ?, total_points = ?, start_date = ?, end_date = ?, type = ?, division = ?
		WHERE id = ?
	`, t.Name, t.TotalPoints, t.StartDate, t.EndDate, t.Type, t.Division, tournamentID)
	if err != nil {
		return ranking.Tournament{}, fmt.Errorf("failed to update tournament: %w", err)
	}

	log.Info("Updated tournament", "tournamentID", tournamentID)
	return t, nil
}

// DeleteTournament removes a tournament. Match events that reference it keep
// their points and the tournament name they were recorded with.
func (s *store) DeleteTournament(tournamentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM tournaments WHERE id = ?", tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
	}
	log.Info("Deleted tournament", "tournamentID", tournamentID)
	return nil
}

func (s *store) GetTournament(tournamentID string) (ranking.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTournament(s.db, tournamentID)
}

func (s *store) getTournament(q querier, tournamentID string) (ranking.Tournament, error) {
	row := q.QueryRow("SELECT "+tournamentColumns+" FROM tournaments WHERE id = ?", tournamentID)
	t, err := scanTournament(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ranking.Tournament{}, fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
		}
		return ranking.Tournament{}, fmt.Errorf("database error: %w", err)
	}
	return t, nil
}

// GetAllTournaments returns every tournament in creation order.
func (s *store) GetAllTournaments() ([]ranking.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + tournamentColumns + " FROM tournaments ORDER BY rowid")
	if err != nil {
		log.Error("Failed to query tournaments", "error", err)
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]ranking.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func scanTournament(scanner interface{ Scan(...any) error }) (ranking.Tournament, error) {
	var t ranking.Tournament
	err := scanner.Scan(&t.ID, &t.Name, &t.TotalPoints, &t.StartDate, &t.EndDate, &t.Type, &t.Division)
	return t, err
}

func normalizeType(v string) string {
	if strings.EqualFold(v, ranking.TournamentDouble) {
		return ranking.TournamentDouble
	}
	return ranking.TournamentSingle
}

func normalizeDivision(v string) string {
	switch strings.ToLower(v) {
	case ranking.DivisionMale:
		return ranking.DivisionMale
	case ranking.DivisionFemale:
		return ranking.DivisionFemale
	default:
		return ranking.DivisionMixed
	}
}
