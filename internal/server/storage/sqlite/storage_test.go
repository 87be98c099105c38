package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
)

const testTemplate = "neet250.v1"

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "server.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func createTestUser(t *testing.T, s *Storage, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "hash",
		Timezone:     "UTC",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func createTestList(t *testing.T, s *Storage, userID string) *models.List {
	t.Helper()

	now := time.Now().UTC()
	list := &models.List{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            "NeetCode 250",
		TemplateVersion: testTemplate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, s.CreateList(context.Background(), list))
	return list
}

func newAttempt(userID, listID string, problemID int, at time.Time) *models.AttemptEntry {
	return &models.AttemptEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ListID:    listID,
		ProblemID: problemID,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestUser(t, s, "user@example.com")

	dup := &models.User{
		ID:           uuid.New().String(),
		Email:        "user@example.com",
		PasswordHash: "other",
		Timezone:     "UTC",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestGetUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")

	byEmail, err := s.GetUserByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestCreateList_UnknownTemplate(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "user@example.com")

	list := &models.List{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		Name:            "custom",
		TemplateVersion: "neet250.v99",
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	err := s.CreateList(context.Background(), list)
	assert.ErrorIs(t, err, storage.ErrTemplateNotFound)
}

func TestGetList_ScopedToOwner(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "owner@example.com")
	stranger := createTestUser(t, s, "stranger@example.com")
	list := createTestList(t, s, owner.ID)

	got, err := s.GetList(ctx, list.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, testTemplate, got.TemplateVersion)

	// Чужой список недоступен
	_, err = s.GetList(ctx, list.ID, stranger.ID)
	assert.ErrorIs(t, err, storage.ErrListNotFound)
}

func TestListsByUser(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "user@example.com")
	createTestList(t, s, user.ID)

	lists, err := s.ListsByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "NeetCode 250", lists[0].Name)
}

func TestProblemsByTemplate_SeededCatalog(t *testing.T) {
	s := newTestStorage(t)

	problems, err := s.ProblemsByTemplate(context.Background(), testTemplate)
	require.NoError(t, err)
	require.NotEmpty(t, problems)

	// Каталог упорядочен по order_index
	assert.Equal(t, "Contains Duplicate", problems[0].Title)
	assert.Equal(t, "Arrays & Hashing", problems[0].Category)
	assert.Equal(t, "E", problems[0].Difficulty)
	for i := 1; i < len(problems); i++ {
		assert.Greater(t, problems[i].OrderIndex, problems[i-1].OrderIndex)
	}

	_, err = s.ProblemsByTemplate(context.Background(), "nope.v0")
	assert.ErrorIs(t, err, storage.ErrTemplateNotFound)
}

func TestProblemExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ok, err := s.ProblemExists(ctx, testTemplate, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ProblemExists(ctx, testTemplate, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttempt_CRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	solved := true
	notes := "two pointers"
	minutes := 25
	entry := newAttempt(user.ID, list.ID, 3, time.Now().UTC())
	entry.Solved = &solved
	entry.TimeMinutes = &minutes
	entry.Notes = &notes

	require.NoError(t, s.CreateAttempt(ctx, entry))

	got, err := s.GetAttempt(ctx, entry.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Solved)
	assert.True(t, *got.Solved)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "two pointers", *got.Notes)
	assert.Nil(t, got.Confidence)

	// Обновление затирает все изменяемые поля
	got.Notes = nil
	conf := "HIGH"
	got.Confidence = &conf
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.UpdateAttempt(ctx, got))

	updated, err := s.GetAttempt(ctx, entry.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Notes)
	require.NotNil(t, updated.Confidence)
	assert.Equal(t, "HIGH", *updated.Confidence)

	require.NoError(t, s.DeleteAttempt(ctx, entry.ID, user.ID))
	_, err = s.GetAttempt(ctx, entry.ID, user.ID)
	assert.ErrorIs(t, err, storage.ErrAttemptNotFound)
}

func TestAttempt_NotFoundPaths(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")

	_, err := s.GetAttempt(ctx, "missing", user.ID)
	assert.ErrorIs(t, err, storage.ErrAttemptNotFound)

	err = s.UpdateAttempt(ctx, &models.AttemptEntry{ID: "missing", UserID: user.ID, UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, storage.ErrAttemptNotFound)

	err = s.DeleteAttempt(ctx, "missing", user.ID)
	assert.ErrorIs(t, err, storage.ErrAttemptNotFound)
}

func TestAttemptHistory_NewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	base := time.Now().UTC().Truncate(time.Second)
	var ids []string
	for i := 0; i < 3; i++ {
		entry := newAttempt(user.ID, list.ID, 5, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.CreateAttempt(ctx, entry))
		ids = append(ids, entry.ID)
	}
	// Попытка по другой задаче не должна попасть в историю
	require.NoError(t, s.CreateAttempt(ctx, newAttempt(user.ID, list.ID, 6, base)))

	history, err := s.AttemptHistory(ctx, user.ID, list.ID, 5)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, ids[2], history[0].ID)
	assert.Equal(t, ids[0], history[2].ID)
}

func TestLatestAttempts_OnePerProblem(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	base := time.Now().UTC().Truncate(time.Second)

	old := newAttempt(user.ID, list.ID, 1, base)
	fresh := newAttempt(user.ID, list.ID, 1, base.Add(time.Minute))
	other := newAttempt(user.ID, list.ID, 2, base)
	require.NoError(t, s.CreateAttempt(ctx, old))
	require.NoError(t, s.CreateAttempt(ctx, fresh))
	require.NoError(t, s.CreateAttempt(ctx, other))

	latest, err := s.LatestAttempts(ctx, user.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Contains(t, latest, 1)
	assert.Equal(t, fresh.ID, latest[1].ID)
	assert.Equal(t, other.ID, latest[2].ID)
}

func TestLatestActivity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")

	// Без активности возвращаются пустой список и нулевое время
	listID, at, err := s.LatestActivity(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, listID)
	assert.True(t, at.IsZero())

	list := createTestList(t, s, user.ID)
	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.CreateAttempt(ctx, newAttempt(user.ID, list.ID, 1, base)))
	require.NoError(t, s.CreateAttempt(ctx, newAttempt(user.ID, list.ID, 2, base.Add(time.Minute))))

	listID, at, err = s.LatestActivity(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, listID)
	assert.True(t, at.Equal(base.Add(time.Minute)))
}

func TestSolvedDates_LatestAttemptWins(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	base := time.Now().UTC().Truncate(time.Second)
	solved := true
	unsolved := false

	// Задача 1: решена
	first := newAttempt(user.ID, list.ID, 1, base)
	first.Solved = &solved
	d1 := "2026-08-30"
	first.DateSolved = &d1
	require.NoError(t, s.CreateAttempt(ctx, first))

	// Задача 2: решена, потом отметка снята, в статистику не попадает
	second := newAttempt(user.ID, list.ID, 2, base)
	second.Solved = &solved
	d2 := "2026-08-29"
	second.DateSolved = &d2
	require.NoError(t, s.CreateAttempt(ctx, second))

	retract := newAttempt(user.ID, list.ID, 2, base.Add(time.Minute))
	retract.Solved = &unsolved
	require.NoError(t, s.CreateAttempt(ctx, retract))

	dates, err := s.SolvedDates(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-30"}, dates)
}

func TestCategoryStats(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	base := time.Now().UTC().Truncate(time.Second)
	solved := true

	// Две решенные задачи из Arrays & Hashing, одна из Two Pointers
	for i, problemID := range []int{1, 3, 10} {
		entry := newAttempt(user.ID, list.ID, problemID, base.Add(time.Duration(i)*time.Second))
		entry.Solved = &solved
		minutes := 20 + i*10
		entry.TimeMinutes = &minutes
		require.NoError(t, s.CreateAttempt(ctx, entry))
	}

	stats, err := s.CategoryStats(ctx, user.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Arrays & Hashing", stats[0].Category)
	assert.Equal(t, 2, stats[0].SolvedCount)
	require.NotNil(t, stats[0].AvgTimeMinutes)
	assert.InDelta(t, 25.0, *stats[0].AvgTimeMinutes, 0.001)

	assert.Equal(t, "Two Pointers", stats[1].Category)
	assert.Equal(t, 1, stats[1].SolvedCount)
}

func TestFarthest(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "user@example.com")
	list := createTestList(t, s, user.ID)

	got, err := s.Farthest(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	solved := true
	for _, problemID := range []int{3, 12} {
		entry := newAttempt(user.ID, list.ID, problemID, time.Now().UTC())
		entry.Solved = &solved
		require.NoError(t, s.CreateAttempt(ctx, entry))
	}

	got, err = s.Farthest(ctx, user.ID, list.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Two Pointers", got.Category)
	assert.Equal(t, 12, got.OrderIndex)
}
