package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "match_events", "tournaments", "rules", "activity_counters"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_SeedsDefaultRules(t *testing.T) {
	db, teardown, err := InitDB(":memory:")
	require.NoError(t, err)
	defer teardown()

	var win, loss float64
	err = db.QueryRow("SELECT win_points, loss_points FROM rules WHERE id = 1").Scan(&win, &loss)
	require.NoError(t, err)
	assert.Equal(t, 0.0, win)
	assert.Equal(t, 0.0, loss)
}

func TestInitDB_ForeignKeysEnabled(t *testing.T) {
	db, teardown, err := InitDB(":memory:")
	require.NoError(t, err)
	defer teardown()

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := t.TempDir() + "/club.db"

	_, first, err := InitDB(path)
	require.NoError(t, err)
	first()

	db, second, err := InitDB(path)
	require.NoError(t, err)
	defer second()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM rules").Scan(&count))
	assert.Equal(t, 1, count)
}
