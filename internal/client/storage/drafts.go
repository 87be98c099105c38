package storage

import (
	"context"

	"github.com/iudanet/codeclimb/internal/models"
)

// CachedDraft хранит несохраненный draft вместе с адресом задачи
type CachedDraft struct {
	Draft     *models.AttemptDraft `json:"draft"`
	ListID    string               `json:"list_id"`
	ProblemID int                  `json:"problem_id"`
}

//go:generate moq -out drafts_mock.go . DraftStorage

// DraftStorage defines interface for the offline draft cache.
// Правки записываются сюда синхронно с редактированием и удаляются после
// подтвержденного сервером сохранения: незаконченная сессия добивается
// при следующем запуске.
type DraftStorage interface {
	// SaveDraft stores or replaces the cached draft for a list/problem pair
	SaveDraft(ctx context.Context, draft *CachedDraft) error

	// PendingDrafts returns all cached drafts for the list
	PendingDrafts(ctx context.Context, listID string) ([]*CachedDraft, error)

	// DeleteDraft removes the cached draft for a list/problem pair
	// Missing draft is not an error
	DeleteDraft(ctx context.Context, listID string, problemID int) error
}
