package http

import (
	"net/http"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/config"
	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/notifier"
	"github.com/aosike91/Tennis-Ranking/internal/pubsub"
	"github.com/aosike91/Tennis-Ranking/internal/ranking"
	"github.com/go-playground/validator/v10"
)

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	Counters       metrics.CounterStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	PubSub         pubsub.PubSubClient
	Router         *http.ServeMux

	validate *validator.Validate
	now      func() time.Time
}

type createPlayerRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	DOB            string `json:"dob" validate:"omitempty,max=32"`
	Phone          string `json:"phone" validate:"omitempty,max=32"`
	Gender         string `json:"gender" validate:"omitempty,oneof=M F m f male female"`
	Category       string `json:"category" validate:"omitempty,max=50"`
	MembershipCode string `json:"membershipCode" validate:"omitempty,max=50"`
	Photo          string `json:"photo"`
}

type recordResultRequest struct {
	Won *bool `json:"won" validate:"required"`
}

type createTournamentRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	TotalPoints float64 `json:"totalPoints" validate:"gte=0"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Type        string  `json:"type" validate:"omitempty,oneof=single double"`
	Division    string  `json:"division" validate:"omitempty,oneof=male female mixed"`
}

type rulesRequest struct {
	WinPoints  *float64 `json:"winPoints" validate:"required"`
	LossPoints *float64 `json:"lossPoints" validate:"required"`
}

type recordPointsRequest struct {
	PlayerID     string    `json:"playerId" validate:"required"`
	TournamentID string    `json:"tournamentId" validate:"required"`
	Stage        string    `json:"stage" validate:"omitempty,max=50"`
	Points       *float64  `json:"points" validate:"required"`
	Date         time.Time `json:"date"`
}

type rankingResponse struct {
	Rules      ranking.Rules    `json:"rules"`
	Population int              `json:"population"`
	Players    []ranking.Ranked `json:"players"`
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
