package models

import (
	"time"

	"github.com/iudanet/codeclimb/pkg/api"
)

// AttemptEntry represents a persisted attempt record on the server side.
// Nullable поля хранятся указателями: nil соответствует NULL в БД.
type AttemptEntry struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ID              string
	UserID          string
	ListID          string
	Solved          *bool
	DateSolved      *string
	TimeMinutes     *int
	Attempts        *int
	Confidence      *string
	TimeComplexity  *string
	SpaceComplexity *string
	Notes           *string
	ProblemURL      *string
	ProblemID       int
}

// ToAPI converts the storage record to its wire representation.
func (e *AttemptEntry) ToAPI() *api.Attempt {
	return &api.Attempt{
		UpdatedAt:       e.UpdatedAt,
		ID:              e.ID,
		ListID:          e.ListID,
		ProblemID:       e.ProblemID,
		Solved:          e.Solved,
		DateSolved:      e.DateSolved,
		TimeMinutes:     e.TimeMinutes,
		Attempts:        e.Attempts,
		Confidence:      e.Confidence,
		TimeComplexity:  e.TimeComplexity,
		SpaceComplexity: e.SpaceComplexity,
		Notes:           e.Notes,
		ProblemURL:      e.ProblemURL,
	}
}
