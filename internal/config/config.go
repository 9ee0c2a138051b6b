package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultDBName          = "club-ranking.db"
	defaultPort            = "8080"
	defaultLeaderboardSize = 10
)

// Load reads configuration from environment variables and .env file.
// Everything is optional: without Slack or GCP settings the server runs
// with those integrations disabled.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg := Config{
		DBName: getEnv("DB_NAME", defaultDBName),
		Port:   getEnv("PORT", defaultPort),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		},
		ProjectID:       getEnv("GCP_PROJECT", ""),
		LeaderboardSize: getEnvInt("LEADERBOARD_SIZE", defaultLeaderboardSize),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Warn("Ignoring invalid integer environment variable", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}
