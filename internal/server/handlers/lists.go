package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
	"github.com/iudanet/codeclimb/pkg/api"
)

// ListsHandler обрабатывает запросы списков задач и их каталогов
type ListsHandler struct {
	logger         *slog.Logger
	listStorage    storage.ListStorage
	problemStorage storage.ProblemStorage
	attemptStorage storage.AttemptStorage
}

// NewListsHandler создает новый handler для списков
func NewListsHandler(logger *slog.Logger, listStorage storage.ListStorage, problemStorage storage.ProblemStorage, attemptStorage storage.AttemptStorage) *ListsHandler {
	return &ListsHandler{
		logger:         logger,
		listStorage:    listStorage,
		problemStorage: problemStorage,
		attemptStorage: attemptStorage,
	}
}

// List обрабатывает GET /api/v1/lists
// Возвращает все списки текущего пользователя
func (h *ListsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	lists, err := h.listStorage.ListsByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list lists", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]api.ListItem, 0, len(lists))
	for _, list := range lists {
		items = append(items, toListItem(&list))
	}

	sendJSON(h.logger, w, items, http.StatusOK)
}

// Create обрабатывает POST /api/v1/lists
// Создает новый список по версии каталога
func (h *ListsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create list request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		sendError(h.logger, w, "Name is required", http.StatusBadRequest)
		return
	}

	templateVersion := strings.TrimSpace(req.TemplateVersion)
	if templateVersion == "" {
		templateVersion = defaultTemplateVersion
	}

	now := time.Now().UTC()
	list := &models.List{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            name,
		TemplateVersion: templateVersion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.listStorage.CreateList(ctx, list); err != nil {
		if errors.Is(err, storage.ErrTemplateNotFound) {
			sendError(h.logger, w, "Template not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create list", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "list created",
		slog.String("list_id", list.ID),
		slog.String("template_version", templateVersion))

	sendJSON(h.logger, w, toListItem(list), http.StatusCreated)
}

// Problems обрабатывает GET /api/v1/lists/{listID}/problems
// Каталог задач списка вместе с последней попыткой по каждой задаче
func (h *ListsHandler) Problems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	listID := chi.URLParam(r, "listID")

	list, err := h.listStorage.GetList(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			sendError(h.logger, w, "List not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get list", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	catalog, err := h.problemStorage.ProblemsByTemplate(ctx, list.TemplateVersion)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get catalog", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	latest, err := h.attemptStorage.LatestAttempts(ctx, userID, listID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get latest attempts", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	problems := make([]api.Problem, 0, len(catalog))
	for _, p := range catalog {
		problem := api.Problem{
			ProblemID:  p.ProblemID,
			OrderIndex: p.OrderIndex,
			Title:      p.Title,
			Category:   p.Category,
			Difficulty: p.Difficulty,
		}
		if entry, ok := latest[p.ProblemID]; ok {
			problem.LatestAttempt = &api.LatestAttempt{
				UpdatedAt:       entry.UpdatedAt,
				Solved:          entry.Solved,
				DateSolved:      entry.DateSolved,
				TimeMinutes:     entry.TimeMinutes,
				Attempts:        entry.Attempts,
				Confidence:      entry.Confidence,
				TimeComplexity:  entry.TimeComplexity,
				SpaceComplexity: entry.SpaceComplexity,
				Notes:           entry.Notes,
				ProblemURL:      entry.ProblemURL,
			}
		}
		problems = append(problems, problem)
	}

	sendJSON(h.logger, w, problems, http.StatusOK)
}

func toListItem(list *models.List) api.ListItem {
	return api.ListItem{
		ID:              list.ID,
		Name:            list.Name,
		TemplateVersion: list.TemplateVersion,
		Deprecated:      list.Deprecated,
	}
}
