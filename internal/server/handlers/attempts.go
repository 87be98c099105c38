package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
	"github.com/iudanet/codeclimb/internal/validation"
	"github.com/iudanet/codeclimb/pkg/api"
)

// AttemptsHandler обрабатывает запросы записей попыток
type AttemptsHandler struct {
	logger         *slog.Logger
	listStorage    storage.ListStorage
	problemStorage storage.ProblemStorage
	attemptStorage storage.AttemptStorage
}

// NewAttemptsHandler создает новый handler для попыток
func NewAttemptsHandler(logger *slog.Logger, listStorage storage.ListStorage, problemStorage storage.ProblemStorage, attemptStorage storage.AttemptStorage) *AttemptsHandler {
	return &AttemptsHandler{
		logger:         logger,
		listStorage:    listStorage,
		problemStorage: problemStorage,
		attemptStorage: attemptStorage,
	}
}

// History обрабатывает GET /api/v1/lists/{listID}/problems/{problemID}/attempts
// Все попытки по задаче, новые первыми
func (h *AttemptsHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	listID, problemID, ok := h.resolveProblem(w, r, userID)
	if !ok {
		return
	}

	entries, err := h.attemptStorage.AttemptHistory(ctx, userID, listID, problemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get history", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	attempts := make([]api.Attempt, 0, len(entries))
	for i := range entries {
		attempts = append(attempts, *entries[i].ToAPI())
	}

	sendJSON(h.logger, w, attempts, http.StatusOK)
}

// Create обрабатывает POST /api/v1/lists/{listID}/problems/{problemID}/attempts
// Создает новую запись попытки
func (h *AttemptsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	listID, problemID, ok := h.resolveProblem(w, r, userID)
	if !ok {
		return
	}

	var req api.UpsertAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateAttemptPayload(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	entry := &models.AttemptEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ListID:    listID,
		ProblemID: problemID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUpsert(entry, &req)

	if err := h.attemptStorage.CreateAttempt(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to create attempt", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "attempt created",
		slog.String("attempt_id", entry.ID),
		slog.Int("problem_id", problemID))

	sendJSON(h.logger, w, entry.ToAPI(), http.StatusCreated)
}

// Patch обрабатывает PATCH /api/v1/attempts/{attemptID}
// Перезаписывает изменяемые поля записи
func (h *AttemptsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attemptID := chi.URLParam(r, "attemptID")

	var req api.UpsertAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateAttemptPayload(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.attemptStorage.GetAttempt(ctx, attemptID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrAttemptNotFound) {
			sendError(h.logger, w, "Attempt not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get attempt", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	applyUpsert(entry, &req)
	entry.UpdatedAt = time.Now().UTC()

	if err := h.attemptStorage.UpdateAttempt(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to update attempt", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, entry.ToAPI(), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/attempts/{attemptID}
func (h *AttemptsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attemptID := chi.URLParam(r, "attemptID")

	if err := h.attemptStorage.DeleteAttempt(ctx, attemptID, userID); err != nil {
		if errors.Is(err, storage.ErrAttemptNotFound) {
			sendError(h.logger, w, "Attempt not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete attempt", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "attempt deleted", slog.String("attempt_id", attemptID))

	w.WriteHeader(http.StatusNoContent)
}

// resolveProblem проверяет, что список принадлежит пользователю и задача
// есть в каталоге его версии. Пишет ошибку в ResponseWriter сама.
func (h *AttemptsHandler) resolveProblem(w http.ResponseWriter, r *http.Request, userID string) (string, int, bool) {
	ctx := r.Context()

	listID := chi.URLParam(r, "listID")
	problemID, err := strconv.Atoi(chi.URLParam(r, "problemID"))
	if err != nil {
		sendError(h.logger, w, "Problem not found", http.StatusBadRequest)
		return "", 0, false
	}

	list, err := h.listStorage.GetList(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			sendError(h.logger, w, "List not found", http.StatusBadRequest)
			return "", 0, false
		}
		h.logger.ErrorContext(ctx, "failed to get list", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return "", 0, false
	}

	exists, err := h.problemStorage.ProblemExists(ctx, list.TemplateVersion, problemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check problem", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return "", 0, false
	}
	if !exists {
		sendError(h.logger, w, "Problem not found", http.StatusBadRequest)
		return "", 0, false
	}

	return listID, problemID, true
}

// applyUpsert переносит поля запроса в запись. Сервер авторитетен по
// нормализации: complexity приводится к канонической записи, пустые
// строки становятся NULL.
func applyUpsert(entry *models.AttemptEntry, req *api.UpsertAttemptRequest) {
	entry.Solved = req.Solved
	entry.DateSolved = validation.NormalizeNullable(req.DateSolved)
	entry.TimeMinutes = req.TimeMinutes
	entry.Attempts = req.Attempts
	entry.Confidence = validation.NormalizeNullable(req.Confidence)
	entry.TimeComplexity = normalizeComplexityField(req.TimeComplexity)
	entry.SpaceComplexity = normalizeComplexityField(req.SpaceComplexity)
	entry.Notes = validation.NormalizeNullable(req.Notes)
	entry.ProblemURL = validation.NormalizeNullable(req.ProblemURL)
}

func normalizeComplexityField(value *string) *string {
	normalized := validation.NormalizeNullable(value)
	if normalized == nil {
		return nil
	}
	canonical := validation.NormalizeComplexity(*normalized)
	return &canonical
}
