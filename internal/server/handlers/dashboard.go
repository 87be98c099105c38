package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/codeclimb/internal/server/storage"
	"github.com/iudanet/codeclimb/pkg/api"
)

const solvedDateLayout = "2006-01-02"

// DashboardHandler обрабатывает запросы сводной статистики
type DashboardHandler struct {
	logger           *slog.Logger
	userStorage      storage.UserStorage
	dashboardStorage storage.DashboardStorage
}

// NewDashboardHandler создает новый handler для dashboard
func NewDashboardHandler(logger *slog.Logger, userStorage storage.UserStorage, dashboardStorage storage.DashboardStorage) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		userStorage:      userStorage,
		dashboardStorage: dashboardStorage,
	}
}

// Dashboard обрабатывает GET /api/v1/dashboard
// Статистика считается по списку с последней активностью
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	listID, lastActivity, err := h.dashboardStorage.LatestActivity(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get latest activity", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Активности не было: пустой dashboard вместо ошибки
	if listID == "" {
		sendJSON(h.logger, w, api.Dashboard{PerCategory: []api.CategoryStat{}}, http.StatusOK)
		return
	}

	dashboard := api.Dashboard{
		LatestListID: &listID,
		PerCategory:  []api.CategoryStat{},
	}

	lastActivityStr := lastActivity.UTC().Format(time.RFC3339)
	dashboard.LastActivityAt = &lastActivityStr

	stats, err := h.dashboardStorage.CategoryStats(ctx, userID, listID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get category stats", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	for _, agg := range stats {
		dashboard.PerCategory = append(dashboard.PerCategory, api.CategoryStat{
			Category:       agg.Category,
			SolvedCount:    agg.SolvedCount,
			AvgTimeMinutes: agg.AvgTimeMinutes,
		})
	}

	farthest, err := h.dashboardStorage.Farthest(ctx, userID, listID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get farthest solved", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if farthest != nil {
		dashboard.FarthestCategory = &farthest.Category
		dashboard.FarthestOrderIndex = &farthest.OrderIndex
	}

	dates, err := h.dashboardStorage.SolvedDates(ctx, userID, listID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get solved dates", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	dashboard.StreakCurrent = currentStreak(dates, h.userLocation(r, userID), time.Now())

	sendJSON(h.logger, w, dashboard, http.StatusOK)
}

// userLocation возвращает часовой пояс пользователя, UTC при любой проблеме
func (h *DashboardHandler) userLocation(r *http.Request, userID string) *time.Location {
	user, err := h.userStorage.GetUserByID(r.Context(), userID)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// currentStreak считает текущую серию дней с решенными задачами.
// dates содержит отсортированные по убыванию уникальные даты (YYYY-MM-DD).
// Серия живет, пока последнее решение было сегодня или вчера
// в часовом поясе пользователя.
func currentStreak(dates []string, loc *time.Location, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := now.In(loc)
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	first, err := time.Parse(solvedDateLayout, dates[0])
	if err != nil {
		return 0
	}
	if !first.Equal(expected) {
		// Сегодня еще не решали: серия может продолжаться со вчера
		expected = expected.AddDate(0, 0, -1)
		if !first.Equal(expected) {
			return 0
		}
	}

	streak := 0
	for _, raw := range dates {
		date, err := time.Parse(solvedDateLayout, raw)
		if err != nil {
			break
		}
		if !date.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}
