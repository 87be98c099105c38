package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codeclimb/pkg/api"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestNormalizeComplexity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "   ", want: ""},
		{input: "n", want: "O(n)"},
		{input: "N", want: "O(n)"},
		{input: "o(n)", want: "O(n)"},
		{input: "nlogn", want: "O(n log n)"},
		{input: "o(n log n)", want: "O(n log n)"},
		{input: "n^2", want: "O(n^2)"},
		{input: "n2", want: "O(n^2)"},
		{input: "2^n * n", want: "O(2^n*n)"},
		{input: "1", want: "O(1)"},
		{input: "logn", want: "O(log n)"},
		// Неизвестная запись возвращается как есть
		{input: "O(V+E)", want: "O(V+E)"},
		{input: "  O(V+E)  ", want: "O(V+E)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeComplexity(tt.input))
		})
	}
}

func TestNormalizeNullable(t *testing.T) {
	assert.Nil(t, NormalizeNullable(nil))
	assert.Nil(t, NormalizeNullable(strPtr("")))
	assert.Nil(t, NormalizeNullable(strPtr("   ")))

	got := NormalizeNullable(strPtr("  value  "))
	require.NotNil(t, got)
	assert.Equal(t, "value", *got)
}

func TestValidateConfidence(t *testing.T) {
	assert.NoError(t, ValidateConfidence(nil))
	assert.NoError(t, ValidateConfidence(strPtr("")))
	assert.NoError(t, ValidateConfidence(strPtr("LOW")))
	assert.NoError(t, ValidateConfidence(strPtr("MEDIUM")))
	assert.NoError(t, ValidateConfidence(strPtr("HIGH")))
	assert.Error(t, ValidateConfidence(strPtr("low")))
	assert.Error(t, ValidateConfidence(strPtr("MAYBE")))
}

func TestValidateAttemptPayload(t *testing.T) {
	tests := []struct {
		name    string
		req     api.UpsertAttemptRequest
		wantErr string
	}{
		{
			name:    "empty payload rejected",
			req:     api.UpsertAttemptRequest{},
			wantErr: "attempt payload must include at least one meaningful field",
		},
		{
			name:    "blank strings are still empty",
			req:     api.UpsertAttemptRequest{Notes: strPtr("  "), Confidence: strPtr("")},
			wantErr: "attempt payload must include at least one meaningful field",
		},
		{
			name:    "zero attempts rejected",
			req:     api.UpsertAttemptRequest{Attempts: intPtr(0)},
			wantErr: "attempts must be >= 1",
		},
		{
			name:    "negative time rejected",
			req:     api.UpsertAttemptRequest{TimeMinutes: intPtr(-5)},
			wantErr: "timeMinutes must be >= 0",
		},
		{
			name:    "bad confidence rejected",
			req:     api.UpsertAttemptRequest{Confidence: strPtr("SOMEWHAT")},
			wantErr: "confidence must be LOW, MEDIUM, or HIGH",
		},
		{
			name: "solved false alone is meaningful",
			req:  api.UpsertAttemptRequest{Solved: boolPtr(false)},
		},
		{
			name: "full payload",
			req: api.UpsertAttemptRequest{
				Solved:      boolPtr(true),
				Attempts:    intPtr(1),
				TimeMinutes: intPtr(0),
				Confidence:  strPtr("HIGH"),
				Notes:       strPtr("done"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttemptPayload(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password123"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, ValidateTimezone("UTC"))
	assert.NoError(t, ValidateTimezone("America/Chicago"))
	assert.NoError(t, ValidateTimezone("Europe/Moscow"))
	assert.Error(t, ValidateTimezone("Mars/Olympus"))
}
