package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/internal/models"
)

func TestParseFieldEdit(t *testing.T) {
	tests := []struct {
		check         func(t *testing.T, d *models.AttemptDraft)
		name          string
		input         string
		wantErr       bool
		wantImmediate bool
	}{
		{
			name:          "solved true",
			input:         "solved=true",
			wantImmediate: true,
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.Solved)
				assert.True(t, *d.Solved)
			},
		},
		{
			name:          "solved clear",
			input:         "solved=",
			wantImmediate: true,
			check: func(t *testing.T, d *models.AttemptDraft) {
				assert.Nil(t, d.Solved)
			},
		},
		{
			name:    "solved garbage",
			input:   "solved=yep",
			wantErr: true,
		},
		{
			name:          "attempts set",
			input:         "attempts=3",
			wantImmediate: true,
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.Attempts)
				assert.Equal(t, 3, *d.Attempts)
			},
		},
		{
			name:    "attempts zero rejected",
			input:   "attempts=0",
			wantErr: true,
		},
		{
			name:  "time minutes",
			input: "time=25",
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.TimeMinutes)
				assert.Equal(t, 25, *d.TimeMinutes)
			},
		},
		{
			name:    "time negative rejected",
			input:   "time=-1",
			wantErr: true,
		},
		{
			name:  "confidence uppercased",
			input: "confidence=medium",
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.Confidence)
				assert.Equal(t, "MEDIUM", *d.Confidence)
			},
		},
		{
			name:  "tc alias",
			input: "tc=nlogn",
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.TimeComplexity)
				assert.Equal(t, "nlogn", *d.TimeComplexity)
			},
		},
		{
			name:  "notes with equals sign",
			input: "notes=time=money",
			check: func(t *testing.T, d *models.AttemptDraft) {
				require.NotNil(t, d.Notes)
				assert.Equal(t, "time=money", *d.Notes)
			},
		},
		{
			name:  "notes clear",
			input: "notes=",
			check: func(t *testing.T, d *models.AttemptDraft) {
				assert.Nil(t, d.Notes)
			},
		},
		{
			name:    "unknown field",
			input:   "mood=great",
			wantErr: true,
		},
		{
			name:    "missing equals",
			input:   "solved",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit, err := parseFieldEdit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantImmediate, edit.immediate)

			if tt.check != nil {
				draft := &models.AttemptDraft{}
				edit.apply(draft)
				tt.check(t, draft)
			}
		})
	}
}

func TestParseFieldEdit_AttemptsIncrement(t *testing.T) {
	edit, err := parseFieldEdit("attempts+")
	require.NoError(t, err)
	assert.True(t, edit.immediate)

	draft := &models.AttemptDraft{}
	edit.apply(draft)
	require.NotNil(t, draft.Attempts)
	assert.Equal(t, 1, *draft.Attempts)

	edit.apply(draft)
	assert.Equal(t, 2, *draft.Attempts)
}

func TestParseFieldEdit_ClearedFieldOverwritesExisting(t *testing.T) {
	notes := "old notes"
	draft := &models.AttemptDraft{Notes: &notes}

	edit, err := parseFieldEdit("notes=")
	require.NoError(t, err)
	edit.apply(draft)
	assert.Nil(t, draft.Notes)
}
