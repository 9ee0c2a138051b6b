package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventPointsRecorded EventType = "points-recorded"
)

// PointsRecorded is published after a points event has been stored.
type PointsRecorded struct {
	PlayerID string             `msgpack:"playerId"`
	Event    ranking.MatchEvent `msgpack:"event"`
}

// PushEnvelope is the JSON body Pub/Sub push subscriptions deliver.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID   string `json:"messageId"`
		Data string `json:"data"`
	} `json:"message"`
}
