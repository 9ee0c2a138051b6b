package config

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	Slack           SlackConfig
	ProjectID       string
	LeaderboardSize int
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

// Enabled reports whether notifications can be posted.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
