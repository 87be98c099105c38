package storage

import (
	"context"

	"github.com/iudanet/codeclimb/internal/models"
)

// ListStorage defines interface for problem list persistence
type ListStorage interface {
	// CreateList creates a new problem list for a user
	// Returns ErrTemplateNotFound if the catalog version is unknown
	CreateList(ctx context.Context, list *models.List) error

	// GetList retrieves a list by ID scoped to its owner
	// Returns ErrListNotFound if the list doesn't exist or belongs to another user
	GetList(ctx context.Context, listID, userID string) (*models.List, error)

	// ListsByUser returns all lists of a user ordered by creation time
	ListsByUser(ctx context.Context, userID string) ([]models.List, error)

	// TouchList bumps the list's updated_at timestamp
	TouchList(ctx context.Context, listID string) error
}

// ProblemStorage defines interface for the read-only problem catalog
type ProblemStorage interface {
	// ProblemsByTemplate returns the catalog of a template version in order
	// Returns ErrTemplateNotFound if the version is unknown
	ProblemsByTemplate(ctx context.Context, templateVersion string) ([]models.CatalogProblem, error)

	// ProblemExists reports whether a problem id belongs to the template
	ProblemExists(ctx context.Context, templateVersion string, problemID int) (bool, error)
}
