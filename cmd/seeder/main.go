package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/config"
	"github.com/aosike91/Tennis-Ranking/internal/database"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	force  bool
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Seed the local club database with demo players",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			dbPath = config.Load().DBName
		}
		return run(dbPath, force, time.Now().UTC())
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Database path (defaults to DB_NAME)")
	rootCmd.Flags().BoolVar(&force, "force", false, "Clear the store before seeding")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %s\n", err)
		os.Exit(1)
	}
}

func run(path string, force bool, now time.Time) error {
	log.Info("Starting database seeder...", "path", path)
	db, teardown, err := database.InitDB(path)
	if err != nil {
		return err
	}
	defer teardown()

	store := club.New(db)
	existing, err := store.GetAllPlayers()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		if !force {
			log.Info("Store already has players, nothing to do", "players", len(existing))
			return nil
		}
		log.Warn("Clearing store before seeding", "players", len(existing))
		store.Clear()
	}

	if _, err := store.AddTournament(demoTournament(now)); err != nil {
		return fmt.Errorf("failed to seed tournament: %w", err)
	}
	n, err := store.ImportPlayers(demoPlayers(now))
	if err != nil {
		return fmt.Errorf("failed to seed players: %w", err)
	}

	log.Info("Seeded demo data", "players", n)
	return nil
}

func demoTournament(now time.Time) ranking.Tournament {
	return ranking.Tournament{
		Name:        "Club Championship",
		TotalPoints: 1000,
		StartDate:   now.Format("2006-01-02"),
		EndDate:     now.AddDate(0, 0, 14).Format("2006-01-02"),
		Type:        ranking.TournamentSingle,
		Division:    ranking.DivisionMixed,
	}
}

// demoPlayers are the three players a fresh club starts with. Their history
// holds win/loss-only results, so they start on zero tournament points.
func demoPlayers(now time.Time) []ranking.Player {
	date := now.Truncate(time.Millisecond)
	return []ranking.Player{
		{
			Name:           "Serena Williams",
			MembershipCode: "T-001",
			Gender:         ranking.GenderFemale,
			Category:       "3RA",
			Wins:           5,
			Losses:         1,
			MatchHistory: []ranking.MatchEvent{
				{OpponentName: "Roger Federer", Result: "win", Score: "6-4, 6-2", Date: date},
			},
		},
		{
			Name:           "Roger Federer",
			MembershipCode: "T-002",
			Gender:         ranking.GenderMale,
			Category:       "3RA",
			Wins:           4,
			Losses:         2,
			MatchHistory: []ranking.MatchEvent{
				{OpponentName: "Rafael Nadal", Result: "win", Score: "7-6, 6-4", Date: date},
			},
		},
		{
			Name:           "Rafael Nadal",
			MembershipCode: "T-003",
			Gender:         ranking.GenderMale,
			Category:       "3RA",
			Wins:           3,
			Losses:         3,
		},
	}
}
