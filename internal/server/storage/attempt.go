package storage

import (
	"context"

	"github.com/iudanet/codeclimb/internal/models"
)

// AttemptStorage defines interface for attempt record persistence
type AttemptStorage interface {
	// CreateAttempt inserts a new attempt record
	CreateAttempt(ctx context.Context, entry *models.AttemptEntry) error

	// GetAttempt retrieves an attempt by ID scoped to its owner
	// Returns ErrAttemptNotFound if the record doesn't exist or belongs to another user
	GetAttempt(ctx context.Context, attemptID, userID string) (*models.AttemptEntry, error)

	// UpdateAttempt overwrites the mutable fields of an existing record
	// Returns ErrAttemptNotFound if the record doesn't exist
	UpdateAttempt(ctx context.Context, entry *models.AttemptEntry) error

	// DeleteAttempt removes an attempt record
	// Returns ErrAttemptNotFound if the record doesn't exist or belongs to another user
	DeleteAttempt(ctx context.Context, attemptID, userID string) error

	// AttemptHistory returns all attempts of a problem, newest first
	AttemptHistory(ctx context.Context, userID, listID string, problemID int) ([]models.AttemptEntry, error)

	// LatestAttempts returns the newest attempt per problem in a list
	LatestAttempts(ctx context.Context, userID, listID string) (map[int]*models.AttemptEntry, error)
}
