package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_NAME", "PORT", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "SLACK_SIGNING_SECRET", "GCP_PROJECT", "LEADERBOARD_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "club-ranking.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Empty(t, cfg.ProjectID)
	assert.False(t, cfg.Slack.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "/tmp/ranking.db")
	t.Setenv("PORT", "9090")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("GCP_PROJECT", "club-project")
	t.Setenv("LEADERBOARD_SIZE", "5")

	cfg := Load()
	assert.Equal(t, "/tmp/ranking.db", cfg.DBName)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "club-project", cfg.ProjectID)
	assert.Equal(t, 5, cfg.LeaderboardSize)
	assert.Equal(t, SlackConfig{Token: "xoxb-test", ChannelID: "C123", SigningSecret: "secret"}, cfg.Slack)
	assert.True(t, cfg.Slack.Enabled())
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("LEADERBOARD_SIZE", "many")
	assert.Equal(t, 7, getEnvInt("LEADERBOARD_SIZE", 7))

	t.Setenv("LEADERBOARD_SIZE", "-2")
	assert.Equal(t, 7, getEnvInt("LEADERBOARD_SIZE", 7))
}
