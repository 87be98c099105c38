package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/pkg/api"
)

func TestStore_DraftNeverFails(t *testing.T) {
	s := NewStore()

	// Неизвестная задача отдает пустой sentinel, а не nil
	draft := s.Draft(99)
	require.NotNil(t, draft)
	assert.True(t, draft.IsEmpty())
}

func TestStore_ApplyEditResetsError(t *testing.T) {
	s := NewStore()

	s.MarkError(1, "save failed")
	require.Equal(t, StatusError, s.Row(1).Status)

	snapshot := s.ApplyEdit(1, func(d *models.AttemptDraft) {
		d.Notes = strPtr("new note")
	})

	require.NotNil(t, snapshot.Notes)
	assert.Equal(t, "new note", *snapshot.Notes)

	row := s.Row(1)
	assert.Equal(t, StatusIdle, row.Status)
	assert.Empty(t, row.ErrMessage)
}

func TestStore_ApplyEditReturnsDetachedSnapshot(t *testing.T) {
	s := NewStore()

	snapshot := s.ApplyEdit(1, func(d *models.AttemptDraft) {
		d.Notes = strPtr("original")
	})

	// Мутация снапшота не влияет на store
	*snapshot.Notes = "mutated"
	assert.Equal(t, "original", *s.Draft(1).Notes)
}

func TestStore_ApplyServerRecord(t *testing.T) {
	s := NewStore()

	s.ApplyEdit(1, func(d *models.AttemptDraft) { d.TimeComplexity = strPtr("nlogn") })
	s.MarkSaving(1)

	s.ApplyServerRecord(1, &api.Attempt{
		ID:             "att-1",
		TimeComplexity: strPtr("O(n log n)"),
	})

	row := s.Row(1)
	assert.Equal(t, "att-1", row.RecordID)
	assert.True(t, row.HasServerData)
	assert.Equal(t, StatusIdle, row.Status)
	require.NotNil(t, row.Draft.TimeComplexity)
	assert.Equal(t, "O(n log n)", *row.Draft.TimeComplexity)
}

func TestStore_ClearRecord(t *testing.T) {
	s := NewStore()

	s.ApplyServerRecord(1, &api.Attempt{ID: "att-1", Notes: strPtr("note")})

	// Откат на fallback запись (голова истории после удаления)
	s.ClearRecord(1, &models.AttemptDraft{Notes: strPtr("older")}, "att-0")

	row := s.Row(1)
	assert.Equal(t, "att-0", row.RecordID)
	assert.True(t, row.HasServerData)
	assert.Equal(t, "older", *row.Draft.Notes)

	// Откат в пустоту
	s.ClearRecord(1, nil, "")

	row = s.Row(1)
	assert.Empty(t, row.RecordID)
	assert.False(t, row.HasServerData)
	assert.True(t, row.Draft.IsEmpty())
}

func TestStore_Hydrate(t *testing.T) {
	s := NewStore()

	s.ApplyEdit(7, func(d *models.AttemptDraft) { d.Notes = strPtr("gone after hydrate") })

	s.Hydrate([]api.Problem{
		{ProblemID: 1, LatestAttempt: &api.LatestAttempt{Solved: boolPtr(true)}},
		{ProblemID: 2, LatestAttempt: nil},
	})

	rows := s.Rows()
	require.Len(t, rows, 2)

	// Задача с сохраненной попыткой: HasServerData, id пока неизвестен
	assert.True(t, rows[1].HasServerData)
	assert.Empty(t, rows[1].RecordID)
	require.NotNil(t, rows[1].Draft.Solved)
	assert.True(t, *rows[1].Draft.Solved)

	// Задача без попыток
	assert.False(t, rows[2].HasServerData)
	assert.True(t, rows[2].Draft.IsEmpty())
}

func TestHistory_ApplySavedRequiresLoad(t *testing.T) {
	h := NewHistory()

	// До первого Load кеш не создается
	h.ApplySaved(1, api.Attempt{ID: "att-1"})
	_, ok := h.Entries(1)
	assert.False(t, ok)

	h.ReplaceAll(1, []api.Attempt{{ID: "att-1", Notes: strPtr("v1")}})

	// Замена записи с тем же id
	h.ApplySaved(1, api.Attempt{ID: "att-1", Notes: strPtr("v2")})
	entries, ok := h.Entries(1)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "v2", *entries[0].Notes)

	// Новая запись вставляется в голову
	h.ApplySaved(1, api.Attempt{ID: "att-2"})
	entries, _ = h.Entries(1)
	require.Len(t, entries, 2)
	assert.Equal(t, "att-2", entries[0].ID)
}

func TestHistory_Remove(t *testing.T) {
	h := NewHistory()

	h.ReplaceAll(1, []api.Attempt{{ID: "att-2"}, {ID: "att-1"}})

	head := h.Remove(1, "att-2")
	require.NotNil(t, head)
	assert.Equal(t, "att-1", head.ID)

	head = h.Remove(1, "att-1")
	assert.Nil(t, head)

	// Незагруженная история
	assert.Nil(t, h.Remove(2, "att-9"))
}
