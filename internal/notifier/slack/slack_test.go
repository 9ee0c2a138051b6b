package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func ranked(name string, rank int, points float64) ranking.Ranked {
	return ranking.Ranked{
		Enriched: ranking.Enriched{
			Player: ranking.Player{ID: name, Name: name, Wins: 3, Losses: 1},
			Points: points,
			WinPct: 75,
			Total:  4,
		},
		GlobalRank: rank,
	}
}

func sectionText(t *testing.T, block slackapi.Block) string {
	t.Helper()
	section, ok := block.(*slackapi.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", block)
	return section.Text.Text
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NotifSent())
}

func TestSendMessage_Disabled(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewNotifier("", "", metrics)

	err := notifier.SendLeaderboard([]ranking.Ranked{ranked("Serena", 1, 10)}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 1, metrics.NotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendPointsNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	err := notifier.SendPointsNotification(ranked("Serena Williams", 1, 150), ranking.MatchEvent{TournamentName: "Spring Open", Points: 50}, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendPointsNotification")
}

func TestFormatPointsNotification(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatPointsNotification(
		ranked("Rafael Nadal", 2, 180.5),
		ranking.MatchEvent{TournamentID: "t1", TournamentName: "Spring Open", Stage: "semi", Points: 60.5},
	)
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🎾 Points recorded! 🎾", header.Text.Text)

	assert.Equal(t, "*Rafael Nadal* earned *60.5 pts* at Spring Open (semi)", sectionText(t, msg.Blocks.BlockSet[1]))

	ctxBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	text, ok := ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Now #2 with 180.5 pts", text.Text)
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	t.Run("empty", func(t *testing.T) {
		msg := client.formatLeaderboard(nil)
		require.Len(t, msg.Blocks.BlockSet, 2)
		assert.Equal(t, "No players found.", sectionText(t, msg.Blocks.BlockSet[1]))
	})

	t.Run("keeps global ranks", func(t *testing.T) {
		msg := client.formatLeaderboard([]ranking.Ranked{
			ranked("Serena Williams", 1, 200),
			ranked("Rafael Nadal", 4, 90),
		})
		require.Len(t, msg.Blocks.BlockSet, 3)
		assert.Equal(t, "1. 🥇 Serena Williams\n> 200 pts | Win %: 75% (3/4)", sectionText(t, msg.Blocks.BlockSet[1]))
		assert.Equal(t, "4.  Rafael Nadal\n> 90 pts | Win %: 75% (3/4)", sectionText(t, msg.Blocks.BlockSet[2]))
	})
}

func TestFormatPlayerReport(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	entry := ranked("Serena Williams", 1, 205)
	entry.TournamentPoints = 200
	entry.BasePoints = 5
	report := ranking.Report{
		Ranked: entry,
		History: []ranking.MatchEvent{
			{Date: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), TournamentID: "t1", TournamentName: "Spring Open", Stage: "final", Points: 120},
			{OpponentName: "Roger Federer", Result: "win", Score: "6-4, 6-2"},
		},
		ByTournament: []ranking.TournamentSubtotal{
			{TournamentID: "t1", Name: "Spring Open", Points: 200, Events: 2},
		},
	}

	msg := client.formatPlayerReport(report)
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🏆 Serena Williams 🏆", header.Text.Text)

	summary := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, summary, "*Rank*: #1")
	assert.Contains(t, summary, "*Points*: 205 (tournaments 200 + bonus 5)")

	assert.Equal(t, "*By tournament*\n• Spring Open: 200 pts", sectionText(t, msg.Blocks.BlockSet[2]))

	ctxBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "04 May 2025 Spring Open final: +120\nwin vs Roger Federer 6-4, 6-2", text.Text)
}

func TestFormatPlayerNotFound(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	resp, err := client.FormatPlayerNotFoundResponse("nobody")
	require.NoError(t, err)

	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 1)
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[0]), "*nobody*")
}
