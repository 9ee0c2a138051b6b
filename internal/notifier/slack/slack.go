package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/notifier"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// maxHistoryLines caps the recent events listed in a player report.
const maxHistoryLines = 5

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. With an empty token or channel the
// notifier still formats slash command responses but never posts.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" && channelID != "" {
		api = slack.New(token)
	} else {
		log.Warn("Slack token or channel not configured, notifications disabled")
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}
	if s.api == nil {
		log.Debug("Slack disabled, skipping message")
		return "", "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendPointsNotification(entry ranking.Ranked, event ranking.MatchEvent, dryRun bool) error {
	msg := s.formatPointsNotification(entry, event)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(ranked []ranking.Ranked, dryRun bool) error {
	msg := s.formatLeaderboard(ranked)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(ranked []ranking.Ranked) (any, error) {
	return s.formatLeaderboard(ranked), nil
}

// FormatPlayerReportResponse formats a player report for a slash command response.
func (s *Notifier) FormatPlayerReportResponse(report ranking.Report) (any, error) {
	return s.formatPlayerReport(report), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// formatPointsNotification announces a points event and the player's new standing.
func (s *Notifier) formatPointsNotification(entry ranking.Ranked, event ranking.MatchEvent) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Points recorded! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	tournament := event.TournamentName
	if tournament == "" {
		tournament = event.TournamentID
	}
	details := fmt.Sprintf("*%s* earned *%s pts* at %s", entry.Name, formatPoints(event.Points), tournament)
	if event.Stage != "" {
		details += fmt.Sprintf(" (%s)", event.Stage)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", details, false, false), nil, nil))

	standing := fmt.Sprintf("Now #%d with %s pts", entry.GlobalRank, formatPoints(entry.Points))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", standing, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the ranking.
func (s *Notifier) formatLeaderboard(ranked []ranking.Ranked) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Club Ranking 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(ranked) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players found.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks. The global rank is shown, so filtered lists keep positions.
	for _, entry := range ranked {
		playerText := fmt.Sprintf("%d. %s %s\n> %s pts | Win %%: %s%% (%d/%d)",
			entry.GlobalRank,
			medal(entry.GlobalRank),
			entry.Name,
			formatPoints(entry.Points),
			formatPoints(entry.WinPct),
			max(entry.Wins, 0),
			entry.Total,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerReport creates a Slack message with a player's points breakdown.
func (s *Notifier) formatPlayerReport(report ranking.Report) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := fmt.Sprintf("🏆 %s 🏆", report.Name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	summary := fmt.Sprintf("> *Rank*: #%d\n> *Points*: %s (tournaments %s + bonus %s)\n> *Win %%*: %s%% (%d/%d)",
		report.GlobalRank,
		formatPoints(report.Points),
		formatPoints(report.TournamentPoints),
		formatPoints(report.BasePoints),
		formatPoints(report.WinPct),
		max(report.Wins, 0),
		report.Total,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", summary, false, false), nil, nil))

	if len(report.ByTournament) > 0 {
		lines := make([]string, 0, len(report.ByTournament))
		for _, sub := range report.ByTournament {
			lines = append(lines, fmt.Sprintf("• %s: %s pts", sub.Name, formatPoints(sub.Points)))
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", "*By tournament*\n"+strings.Join(lines, "\n"), false, false), nil, nil))
	}

	if len(report.History) > 0 {
		lines := make([]string, 0, maxHistoryLines)
		for _, ev := range report.History[:min(len(report.History), maxHistoryLines)] {
			lines = append(lines, historyLine(ev))
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when no player matches.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name or membership code.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func historyLine(ev ranking.MatchEvent) string {
	var date string
	if !ev.Date.IsZero() {
		date = ev.Date.Format("02 Jan 2006") + " "
	}
	if ev.TournamentID == "" && ev.OpponentName != "" {
		return fmt.Sprintf("%s%s vs %s %s", date, ev.Result, ev.OpponentName, ev.Score)
	}
	name := ev.TournamentName
	if name == "" {
		name = ev.TournamentID
	}
	return fmt.Sprintf("%s%s %s: +%s", date, name, ev.Stage, formatPoints(ev.Points))
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
