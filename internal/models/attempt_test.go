package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/pkg/api"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestAttemptDraft_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		draft AttemptDraft
		want  bool
	}{
		{name: "zero value", draft: AttemptDraft{}, want: true},
		{name: "blank strings count as empty", draft: AttemptDraft{Notes: strPtr("   "), Confidence: strPtr("")}, want: true},
		{name: "solved set", draft: AttemptDraft{Solved: boolPtr(false)}, want: false},
		{name: "attempts set", draft: AttemptDraft{Attempts: intPtr(1)}, want: false},
		{name: "notes set", draft: AttemptDraft{Notes: strPtr("note")}, want: false},
		{name: "date set", draft: AttemptDraft{DateSolved: strPtr("2026-09-01")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.IsEmpty())
		})
	}
}

func TestAttemptDraft_CloneIsDeep(t *testing.T) {
	original := &AttemptDraft{
		Solved:      boolPtr(true),
		Attempts:    intPtr(2),
		Notes:       strPtr("original"),
		TimeMinutes: intPtr(25),
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.Notes = "mutated"
	*clone.Attempts = 99

	assert.Equal(t, "original", *original.Notes)
	assert.Equal(t, 2, *original.Attempts)
}

func TestDraftFromAttempt_RoundTrip(t *testing.T) {
	attempt := &api.Attempt{
		ID:             "att-1",
		ProblemID:      42,
		UpdatedAt:      time.Now(),
		Solved:         boolPtr(true),
		Attempts:       intPtr(3),
		Confidence:     strPtr(ConfidenceHigh),
		TimeComplexity: strPtr("O(n)"),
		Notes:          strPtr("sliding window"),
	}

	draft := DraftFromAttempt(attempt)
	req := draft.ToRequest()

	assert.Equal(t, attempt.Solved, req.Solved)
	assert.Equal(t, attempt.Attempts, req.Attempts)
	assert.Equal(t, attempt.Confidence, req.Confidence)
	assert.Equal(t, attempt.TimeComplexity, req.TimeComplexity)
	assert.Equal(t, attempt.Notes, req.Notes)

	// Draft отвязан от исходной записи
	*draft.Notes = "changed"
	assert.Equal(t, "sliding window", *attempt.Notes)
}

func TestDraftFromLatest(t *testing.T) {
	assert.True(t, DraftFromLatest(nil).IsEmpty())

	latest := &api.LatestAttempt{
		Solved:   boolPtr(true),
		Attempts: intPtr(2),
	}
	draft := DraftFromLatest(latest)
	require.NotNil(t, draft.Solved)
	assert.True(t, *draft.Solved)
	assert.Equal(t, 2, *draft.Attempts)
}
