package club

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/avatar"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db:  db,
		now: time.Now,
	}
}

const playerColumns = `id, name, dob, phone, gender, category, membership_code, photo, wins, losses, manual_points`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// AddPlayer stores a new player with a fresh id, zero wins/losses and an empty history.
func (s *store) AddPlayer(player ranking.Player) (ranking.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player.Wins, player.Losses = 0, 0
	player.ManualPoints = nil
	player.MatchHistory = nil

	tx, err := s.db.Begin()
	if err != nil {
		return ranking.Player{}, err
	}
	created, err := s.insertPlayer(tx, player)
	if err != nil {
		tx.Rollback()
		return ranking.Player{}, err
	}
	if err := tx.Commit(); err != nil {
		return ranking.Player{}, err
	}

	log.Info("Added new player to the store", "playerID", created.ID, "name", created.Name)
	return created, nil
}

// ImportPlayers bulk-loads players, keeping their counters and history.
// Entries without a name are skipped. Every imported player gets a new id.
func (s *store) ImportPlayers(players []ranking.Player) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			log.Debug("Skipping import entry without a name")
			continue
		}
		if _, err := s.insertPlayer(tx, p); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to import player %q: %w", p.Name, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info("Imported players", "count", imported, "skipped", len(players)-imported)
	return imported, nil
}

func (s *store) insertPlayer(tx *sql.Tx, p ranking.Player) (ranking.Player, error) {
	p.ID = uuid.NewString()
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ranking.Player{}, fmt.Errorf("player name is required: %w", ErrInvalid)
	}
	if g := ranking.NormalizeGender(p.Gender); g != "" {
		p.Gender = g
	} else {
		p.Gender = ranking.GenderMale
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Photo == "" {
		p.Photo = avatar.DataURI(p.Name, avatar.DefaultSize)
	}
	p.Wins = max(p.Wins, 0)
	p.Losses = max(p.Losses, 0)

	_, err := tx.Exec(`
		INSERT INTO players (`+playerColumns+`, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.DOB, p.Phone, p.Gender, p.Category, p.MembershipCode, p.Photo, p.Wins, p.Losses, nullFloat(p.ManualPoints), s.now().UnixMilli())
	if err != nil {
		return ranking.Player{}, fmt.Errorf("failed to insert player: %w", err)
	}

	for _, ev := range p.MatchHistory {
		if err := insertEvent(tx, p.ID, ev); err != nil {
			return ranking.Player{}, err
		}
	}
	return p, nil
}

// UpdatePlayer applies a field patch to an existing player.
func (s *store) UpdatePlayer(playerID string, patch PlayerPatch) (ranking.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getPlayer(s.db, playerID)
	if err != nil {
		return ranking.Player{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return ranking.Player{}, fmt.Errorf("player name is required: %w", ErrInvalid)
		}
		p.Name = name
	}
	if patch.DOB != nil {
		p.DOB = *patch.DOB
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Gender != nil {
		if g := ranking.NormalizeGender(*patch.Gender); g != "" {
			p.Gender = g
		}
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.MembershipCode != nil {
		p.MembershipCode = *patch.MembershipCode
	}
	if patch.Photo != nil {
		p.Photo = *patch.Photo
		if p.Photo == "" {
			p.Photo = avatar.DataURI(p.Name, avatar.DefaultSize)
		}
	}

	_, err = s.db.Exec(`
		UPDATE players SET name = ?, dob = ?, phone = ?, gender = ?, category = ?, membership_code = ?, photo = ?
		WHERE id = ?
	`, p.Name, p.DOB, p.Phone, p.Gender, p.Category, p.MembershipCode, p.Photo, playerID)
	if err != nil {
		return ranking.Player{}, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info("Updated player", "playerID", playerID)
	return p, nil
}

// DeletePlayer removes a player and, through the foreign key, its history.
func (s *store) DeletePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	log.Info("Deleted player", "playerID", playerID)
	return nil
}

func (s *store) GetPlayer(playerID string) (ranking.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getPlayer(s.db, playerID)
}

func (s *store) getPlayer(q querier, playerID string) (ranking.Player, error) {
	row := q.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", playerID)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ranking.Player{}, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
		}
		return ranking.Player{}, fmt.Errorf("database error: %w", err)
	}

	rows, err := q.Query(`SELECT `+eventColumns+` FROM match_events WHERE player_id = ? ORDER BY seq`, playerID)
	if err != nil {
		return ranking.Player{}, fmt.Errorf("failed to query match history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		_, ev, err := scanEvent(rows)
		if err != nil {
			return ranking.Player{}, err
		}
		p.MatchHistory = append(p.MatchHistory, ev)
	}
	return p, rows.Err()
}

// GetAllPlayers returns every player with its match history, in insertion order.
func (s *store) GetAllPlayers() ([]ranking.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY rowid")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := make([]ranking.Player, 0)
	index := make(map[string]int)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		index[p.ID] = len(players)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	evRows, err := s.db.Query("SELECT " + eventColumns + " FROM match_events ORDER BY seq")
	if err != nil {
		log.Error("Failed to query match history", "error", err)
		return nil, err
	}
	defer evRows.Close()
	for evRows.Next() {
		playerID, ev, err := scanEvent(evRows)
		if err != nil {
			log.Error("Failed to scan match event row", "error", err)
			continue
		}
		if i, ok := index[playerID]; ok {
			players[i].MatchHistory = append(players[i].MatchHistory, ev)
		}
	}
	return players, evRows.Err()
}

// RecordPoints appends a points event to the player's history and bumps the
// player's points counter by the same amount. A player without a counter
// starts from the points already in the history, so nothing earned before is lost.
func (s *store) RecordPoints(playerID string, event ranking.MatchEvent) (ranking.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return ranking.Player{}, err
	}

	p, err := s.getPlayer(tx, playerID)
	if err != nil {
		tx.Rollback()
		return ranking.Player{}, err
	}

	if event.TournamentID != "" {
		t, err := s.getTournament(tx, event.TournamentID)
		if err != nil {
			tx.Rollback()
			return ranking.Player{}, err
		}
		event.TournamentName = t.Name
	}
	if event.Date.IsZero() {
		event.Date = s.now().UTC().Truncate(time.Millisecond)
	}

	counter := ranking.EventPoints(p.MatchHistory)
	if p.ManualPoints != nil {
		counter = *p.ManualPoints
	}
	counter += event.Points

	if err := insertEvent(tx, playerID, event); err != nil {
		tx.Rollback()
		return ranking.Player{}, err
	}
	if _, err := tx.Exec("UPDATE players SET manual_points = ? WHERE id = ?", counter, playerID); err != nil {
		tx.Rollback()
		return ranking.Player{}, fmt.Errorf("failed to update points counter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ranking.Player{}, err
	}

	p.ManualPoints = &counter
	p.MatchHistory = append(p.MatchHistory, event)
	log.Info("Recorded points", "playerID", playerID, "tournamentID", event.TournamentID, "stage", event.Stage, "points", event.Points, "counter", counter)
	return p, nil
}

// RecordResult increments the player's win or loss counter.
func (s *store) RecordResult(playerID string, won bool) (ranking.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	column := "losses"
	if won {
		column = "wins"
	}
	res, err := s.db.Exec("UPDATE players SET "+column+" = "+column+" + 1 WHERE id = ?", playerID)
	if err != nil {
		return ranking.Player{}, fmt.Errorf("failed to record result: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ranking.Player{}, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	log.Info("Recorded result", "playerID", playerID, "won", won)
	return s.getPlayer(s.db, playerID)
}

// Clear removes all players, history and tournaments and resets the rules.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, stmt := range []string{
		"DELETE FROM match_events",
		"DELETE FROM players",
		"DELETE FROM tournaments",
		"UPDATE rules SET win_points = 0, loss_points = 0 WHERE id = 1",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			log.Error("Failed to clear store", "error", err, "statement", stmt)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

const eventColumns = `player_id, event_date, tournament_id, tournament_name, stage, points, opponent_name, result, score`

func insertEvent(tx *sql.Tx, playerID string, ev ranking.MatchEvent) error {
	var date sql.NullInt64
	if !ev.Date.IsZero() {
		date = sql.NullInt64{Int64: ev.Date.UnixMilli(), Valid: true}
	}
	_, err := tx.Exec(`
		INSERT INTO match_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, playerID, date, ev.TournamentID, ev.TournamentName, ev.Stage, ev.Points, ev.OpponentName, ev.Result, ev.Score)
	if err != nil {
		return fmt.Errorf("failed to insert match event: %w", err)
	}
	return nil
}

// scanPlayer is a helper function to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (ranking.Player, error) {
	var p ranking.Player
	var manual sql.NullFloat64
	err := scanner.Scan(&p.ID, &p.Name, &p.DOB, &p.Phone, &p.Gender, &p.Category, &p.MembershipCode, &p.Photo, &p.Wins, &p.Losses, &manual)
	if err != nil {
		return ranking.Player{}, err
	}
	if manual.Valid {
		v := manual.Float64
		p.ManualPoints = &v
	}
	return p, nil
}

func scanEvent(scanner interface{ Scan(...any) error }) (string, ranking.MatchEvent, error) {
	var playerID string
	var ev ranking.MatchEvent
	var date sql.NullInt64
	err := scanner.Scan(&playerID, &date, &ev.TournamentID, &ev.TournamentName, &ev.Stage, &ev.Points, &ev.OpponentName, &ev.Result, &ev.Score)
	if err != nil {
		return "", ranking.MatchEvent{}, err
	}
	if date.Valid {
		ev.Date = time.UnixMilli(date.Int64).UTC()
	}
	return playerID, ev, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
