package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
	"github.com/iudanet/codeclimb/pkg/api"
)

// mockProblemStorage is a mock implementation of ProblemStorage for testing
type mockProblemStorage struct {
	catalog map[string][]models.CatalogProblem // templateVersion -> problems
}

func (m *mockProblemStorage) ProblemsByTemplate(ctx context.Context, templateVersion string) ([]models.CatalogProblem, error) {
	problems, ok := m.catalog[templateVersion]
	if !ok {
		return nil, storage.ErrTemplateNotFound
	}
	return problems, nil
}

func (m *mockProblemStorage) ProblemExists(ctx context.Context, templateVersion string, problemID int) (bool, error) {
	for _, p := range m.catalog[templateVersion] {
		if p.ProblemID == problemID {
			return true, nil
		}
	}
	return false, nil
}

// mockAttemptStorage is a mock implementation of AttemptStorage for testing
type mockAttemptStorage struct {
	attempts    map[string]*models.AttemptEntry // id -> entry
	createError error
}

func newMockAttemptStorage() *mockAttemptStorage {
	return &mockAttemptStorage{attempts: make(map[string]*models.AttemptEntry)}
}

func (m *mockAttemptStorage) CreateAttempt(ctx context.Context, entry *models.AttemptEntry) error {
	if m.createError != nil {
		return m.createError
	}
	m.attempts[entry.ID] = entry
	return nil
}

func (m *mockAttemptStorage) GetAttempt(ctx context.Context, attemptID, userID string) (*models.AttemptEntry, error) {
	entry, ok := m.attempts[attemptID]
	if !ok || entry.UserID != userID {
		return nil, storage.ErrAttemptNotFound
	}
	clone := *entry
	return &clone, nil
}

func (m *mockAttemptStorage) UpdateAttempt(ctx context.Context, entry *models.AttemptEntry) error {
	existing, ok := m.attempts[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return storage.ErrAttemptNotFound
	}
	m.attempts[entry.ID] = entry
	return nil
}

func (m *mockAttemptStorage) DeleteAttempt(ctx context.Context, attemptID, userID string) error {
	entry, ok := m.attempts[attemptID]
	if !ok || entry.UserID != userID {
		return storage.ErrAttemptNotFound
	}
	delete(m.attempts, attemptID)
	return nil
}

func (m *mockAttemptStorage) AttemptHistory(ctx context.Context, userID, listID string, problemID int) ([]models.AttemptEntry, error) {
	var entries []models.AttemptEntry
	for _, entry := range m.attempts {
		if entry.UserID == userID && entry.ListID == listID && entry.ProblemID == problemID {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (m *mockAttemptStorage) LatestAttempts(ctx context.Context, userID, listID string) (map[int]*models.AttemptEntry, error) {
	latest := make(map[int]*models.AttemptEntry)
	for _, entry := range m.attempts {
		if entry.UserID != userID || entry.ListID != listID {
			continue
		}
		if cur, ok := latest[entry.ProblemID]; !ok || entry.UpdatedAt.After(cur.UpdatedAt) {
			latest[entry.ProblemID] = entry
		}
	}
	return latest, nil
}

// withUser кладет user_id в контекст запроса, как это делает auth middleware
func withUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

// withURLParams добавляет chi route params в контекст запроса
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

type attemptsFixture struct {
	handler  *AttemptsHandler
	lists    *mockListStorage
	attempts *mockAttemptStorage
}

func newAttemptsFixture(t *testing.T) *attemptsFixture {
	t.Helper()

	lists := newMockListStorage()
	lists.lists["list-1"] = &models.List{
		ID:              "list-1",
		UserID:          "user-1",
		TemplateVersion: defaultTemplateVersion,
	}

	problems := &mockProblemStorage{
		catalog: map[string][]models.CatalogProblem{
			defaultTemplateVersion: {
				{TemplateVersion: defaultTemplateVersion, ProblemID: 1, OrderIndex: 1, Title: "Two Sum", Category: "Arrays & Hashing", Difficulty: "E"},
				{TemplateVersion: defaultTemplateVersion, ProblemID: 2, OrderIndex: 2, Title: "3Sum", Category: "Two Pointers", Difficulty: "M"},
			},
		},
	}

	attempts := newMockAttemptStorage()
	handler := NewAttemptsHandler(setupTestLogger(), lists, problems, attempts)
	return &attemptsFixture{handler: handler, lists: lists, attempts: attempts}
}

func createRequest(t *testing.T, payload any, listID, problemID string) *http.Request {
	t.Helper()

	req := postJSON(t, "/api/v1/lists/"+listID+"/problems/"+problemID+"/attempts", payload)
	req = withUser(req, "user-1")
	return withURLParams(req, map[string]string{"listID": listID, "problemID": problemID})
}

func TestAttemptsHandler_Create_Success(t *testing.T) {
	f := newAttemptsFixture(t)

	req := createRequest(t, api.UpsertAttemptRequest{
		Solved:         boolPtr(true),
		Attempts:       intPtr(2),
		TimeComplexity: strPtr("nlogn"),
		Notes:          strPtr("  sort first  "),
	}, "list-1", "1")

	w := httptest.NewRecorder()
	f.handler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.Attempt
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "list-1", resp.ListID)
	assert.Equal(t, 1, resp.ProblemID)
	require.NotNil(t, resp.Solved)
	assert.True(t, *resp.Solved)
	// Сервер авторитетен по нормализации complexity и строк
	require.NotNil(t, resp.TimeComplexity)
	assert.Equal(t, "O(n log n)", *resp.TimeComplexity)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "sort first", *resp.Notes)

	assert.Len(t, f.attempts.attempts, 1)
}

func TestAttemptsHandler_Create_EmptyPayload(t *testing.T) {
	f := newAttemptsFixture(t)

	w := httptest.NewRecorder()
	f.handler.Create(w, createRequest(t, api.UpsertAttemptRequest{}, "list-1", "1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "at least one meaningful field")
	assert.Empty(t, f.attempts.attempts)
}

func TestAttemptsHandler_Create_ListNotFound(t *testing.T) {
	f := newAttemptsFixture(t)

	w := httptest.NewRecorder()
	f.handler.Create(w, createRequest(t, api.UpsertAttemptRequest{Solved: boolPtr(true)}, "list-404", "1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "List not found", decodeError(t, w))
}

func TestAttemptsHandler_Create_ProblemNotInCatalog(t *testing.T) {
	f := newAttemptsFixture(t)

	tests := []struct {
		name      string
		problemID string
	}{
		{name: "unknown id", problemID: "999"},
		{name: "not a number", problemID: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			f.handler.Create(w, createRequest(t, api.UpsertAttemptRequest{Solved: boolPtr(true)}, "list-1", tt.problemID))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Problem not found", decodeError(t, w))
		})
	}
}

func TestAttemptsHandler_Create_Unauthorized(t *testing.T) {
	f := newAttemptsFixture(t)

	req := postJSON(t, "/api/v1/lists/list-1/problems/1/attempts", api.UpsertAttemptRequest{Solved: boolPtr(true)})
	req = withURLParams(req, map[string]string{"listID": "list-1", "problemID": "1"})

	w := httptest.NewRecorder()
	f.handler.Create(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAttemptsHandler_Patch_OverwritesMutableFields(t *testing.T) {
	f := newAttemptsFixture(t)

	f.attempts.attempts["att-1"] = &models.AttemptEntry{
		ID:        "att-1",
		UserID:    "user-1",
		ListID:    "list-1",
		ProblemID: 1,
		Solved:    boolPtr(true),
		Notes:     strPtr("old notes"),
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	req := postJSON(t, "/api/v1/attempts/att-1", api.UpsertAttemptRequest{
		Solved:     boolPtr(true),
		Confidence: strPtr("HIGH"),
	})
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"attemptID": "att-1"})

	w := httptest.NewRecorder()
	f.handler.Patch(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.Attempt
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	// PATCH перезаписывает все изменяемые поля: notes очищаются
	assert.Nil(t, resp.Notes)
	require.NotNil(t, resp.Confidence)
	assert.Equal(t, "HIGH", *resp.Confidence)

	stored := f.attempts.attempts["att-1"]
	assert.Nil(t, stored.Notes)
	assert.WithinDuration(t, time.Now(), stored.UpdatedAt, 5*time.Second)
}

func TestAttemptsHandler_Patch_NotFound(t *testing.T) {
	f := newAttemptsFixture(t)

	req := postJSON(t, "/api/v1/attempts/att-404", api.UpsertAttemptRequest{Solved: boolPtr(true)})
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"attemptID": "att-404"})

	w := httptest.NewRecorder()
	f.handler.Patch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Attempt not found", decodeError(t, w))
}

func TestAttemptsHandler_Patch_OtherUsersAttempt(t *testing.T) {
	f := newAttemptsFixture(t)

	f.attempts.attempts["att-1"] = &models.AttemptEntry{
		ID:     "att-1",
		UserID: "user-2",
		ListID: "list-1",
	}

	req := postJSON(t, "/api/v1/attempts/att-1", api.UpsertAttemptRequest{Solved: boolPtr(true)})
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"attemptID": "att-1"})

	w := httptest.NewRecorder()
	f.handler.Patch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Attempt not found", decodeError(t, w))
}

func TestAttemptsHandler_Delete(t *testing.T) {
	f := newAttemptsFixture(t)

	f.attempts.attempts["att-1"] = &models.AttemptEntry{
		ID:     "att-1",
		UserID: "user-1",
		ListID: "list-1",
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attempts/att-1", nil)
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"attemptID": "att-1"})

	w := httptest.NewRecorder()
	f.handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, f.attempts.attempts)
}

func TestAttemptsHandler_Delete_NotFound(t *testing.T) {
	f := newAttemptsFixture(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attempts/att-404", nil)
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"attemptID": "att-404"})

	w := httptest.NewRecorder()
	f.handler.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Attempt not found", decodeError(t, w))
}

func TestAttemptsHandler_History(t *testing.T) {
	f := newAttemptsFixture(t)

	f.attempts.attempts["att-1"] = &models.AttemptEntry{
		ID:        "att-1",
		UserID:    "user-1",
		ListID:    "list-1",
		ProblemID: 1,
		Solved:    boolPtr(true),
	}
	// Попытка по другой задаче не попадает в историю
	f.attempts.attempts["att-2"] = &models.AttemptEntry{
		ID:        "att-2",
		UserID:    "user-1",
		ListID:    "list-1",
		ProblemID: 2,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/list-1/problems/1/attempts", nil)
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"listID": "list-1", "problemID": "1"})

	w := httptest.NewRecorder()
	f.handler.History(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var attempts []api.Attempt
	require.NoError(t, json.NewDecoder(w.Body).Decode(&attempts))
	require.Len(t, attempts, 1)
	assert.Equal(t, "att-1", attempts[0].ID)
}

func TestAttemptsHandler_Create_InvalidJSON(t *testing.T) {
	f := newAttemptsFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/list-1/problems/1/attempts", bytes.NewReader([]byte("not json")))
	req = withUser(req, "user-1")
	req = withURLParams(req, map[string]string{"listID": "list-1", "problemID": "1"})

	w := httptest.NewRecorder()
	f.handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
