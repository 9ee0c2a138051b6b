package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/database"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, run(path, false, now))
	require.NoError(t, run(path, false, now))

	db, teardown, err := database.InitDB(path)
	require.NoError(t, err)
	defer teardown()
	store := club.New(db)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 3, "second run must not duplicate players")

	tournaments, err := store.GetAllTournaments()
	require.NoError(t, err)
	require.Len(t, tournaments, 1)
	assert.Equal(t, "Club Championship", tournaments[0].Name)

	// Legacy results score nothing under the default rules, so the
	// ranking falls back to name order.
	ranked := ranking.Rank(players, ranking.DefaultRules())
	assert.Equal(t, "Rafael Nadal", ranked[0].Name)
	assert.Equal(t, "Roger Federer", ranked[1].Name)
	assert.Equal(t, "Serena Williams", ranked[2].Name)
	// Five wins over a single recorded match caps at 100.
	assert.Equal(t, 100.0, ranked[2].WinPct)
	assert.Equal(t, 0.0, ranked[0].WinPct)
}

func TestRunForceReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, run(path, false, now))
	require.NoError(t, run(path, true, now))

	db, teardown, err := database.InitDB(path)
	require.NoError(t, err)
	defer teardown()

	players, err := club.New(db).GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 3)
}
