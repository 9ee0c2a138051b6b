package club

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a player or tournament does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalid is returned when a write carries a value the store refuses.
var ErrInvalid = errors.New("invalid")

// DefaultCategory is assigned to players created without one.
const DefaultCategory = "Principiante"

// store handles all database operations for the club.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// PlayerPatch holds the editable player fields. Nil fields are left as they are.
// Wins, losses and match history are only changed by recording results and points.
type PlayerPatch struct {
	Name           *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	DOB            *string `json:"dob,omitempty" validate:"omitnil,max=32"`
	Phone          *string `json:"phone,omitempty" validate:"omitnil,max=32"`
	Gender         *string `json:"gender,omitempty" validate:"omitnil,oneof=M F m f male female"`
	Category       *string `json:"category,omitempty" validate:"omitnil,max=50"`
	MembershipCode *string `json:"membershipCode,omitempty" validate:"omitnil,max=50"`
	Photo          *string `json:"photo,omitempty"`
}

// TournamentPatch holds the editable tournament fields.
type TournamentPatch struct {
	Name        *string  `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	TotalPoints *float64 `json:"totalPoints,omitempty" validate:"omitnil,gte=0"`
	StartDate   *string  `json:"startDate,omitempty"`
	EndDate     *string  `json:"endDate,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitnil,oneof=single double"`
	Division    *string  `json:"division,omitempty" validate:"omitnil,oneof=male female mixed"`
}
