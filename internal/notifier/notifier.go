package notifier

import "github.com/aosike91/Tennis-Ranking/internal/ranking"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded points
	SendPointsNotification(entry ranking.Ranked, event ranking.MatchEvent, dryRun bool) error
	// For posting the current standings
	SendLeaderboard(ranked []ranking.Ranked, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(ranked []ranking.Ranked) (any, error)
	FormatPlayerReportResponse(report ranking.Report) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
