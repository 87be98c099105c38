package models

import (
	"strings"

	"github.com/iudanet/codeclimb/pkg/api"
)

// Confidence уровни уверенности в решении
const (
	ConfidenceLow    = "LOW"
	ConfidenceMedium = "MEDIUM"
	ConfidenceHigh   = "HIGH"
)

// AttemptDraft представляет локальное, возможно еще не сохраненное,
// состояние попытки по одной задаче. Все поля независимо nullable.
// Draft с полностью пустыми полями играет роль sentinel "попытка не записана",
// такой draft никогда не отправляется на сервер как новая запись.
type AttemptDraft struct {
	Solved          *bool
	DateSolved      *string
	TimeMinutes     *int
	Attempts        *int
	Confidence      *string
	TimeComplexity  *string
	SpaceComplexity *string
	Notes           *string
	ProblemURL      *string
}

// blank сообщает, пустое ли строковое поле: nil или одни пробелы
func blank(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}

// IsEmpty сообщает, является ли draft пустым sentinel-значением.
// Строковые поля считаются пустыми и при nil, и при пустой/пробельной строке.
func (d *AttemptDraft) IsEmpty() bool {
	return d.Solved == nil &&
		d.DateSolved == nil &&
		d.TimeMinutes == nil &&
		d.Attempts == nil &&
		blank(d.Confidence) &&
		blank(d.TimeComplexity) &&
		blank(d.SpaceComplexity) &&
		blank(d.Notes) &&
		blank(d.ProblemURL)
}

// Clone создает глубокую копию draft
func (d *AttemptDraft) Clone() *AttemptDraft {
	clone := &AttemptDraft{}
	clone.Solved = cloneBool(d.Solved)
	clone.DateSolved = cloneString(d.DateSolved)
	clone.TimeMinutes = cloneInt(d.TimeMinutes)
	clone.Attempts = cloneInt(d.Attempts)
	clone.Confidence = cloneString(d.Confidence)
	clone.TimeComplexity = cloneString(d.TimeComplexity)
	clone.SpaceComplexity = cloneString(d.SpaceComplexity)
	clone.Notes = cloneString(d.Notes)
	clone.ProblemURL = cloneString(d.ProblemURL)
	return clone
}

// ToRequest конвертирует draft в API payload
func (d *AttemptDraft) ToRequest() api.UpsertAttemptRequest {
	return api.UpsertAttemptRequest{
		Solved:          d.Solved,
		DateSolved:      d.DateSolved,
		TimeMinutes:     d.TimeMinutes,
		Attempts:        d.Attempts,
		Confidence:      d.Confidence,
		TimeComplexity:  d.TimeComplexity,
		SpaceComplexity: d.SpaceComplexity,
		Notes:           d.Notes,
		ProblemURL:      d.ProblemURL,
	}
}

// DraftFromAttempt строит draft из сохраненной записи сервера.
// Сервер авторитетен: значения берутся как есть, без локальной нормализации.
func DraftFromAttempt(attempt *api.Attempt) *AttemptDraft {
	if attempt == nil {
		return &AttemptDraft{}
	}
	draft := &AttemptDraft{
		Solved:          attempt.Solved,
		DateSolved:      attempt.DateSolved,
		TimeMinutes:     attempt.TimeMinutes,
		Attempts:        attempt.Attempts,
		Confidence:      attempt.Confidence,
		TimeComplexity:  attempt.TimeComplexity,
		SpaceComplexity: attempt.SpaceComplexity,
		Notes:           attempt.Notes,
		ProblemURL:      attempt.ProblemURL,
	}
	return draft.Clone()
}

// DraftFromLatest строит draft из поля latestAttempt каталога задач
func DraftFromLatest(latest *api.LatestAttempt) *AttemptDraft {
	if latest == nil {
		return &AttemptDraft{}
	}
	draft := &AttemptDraft{
		Solved:          latest.Solved,
		DateSolved:      latest.DateSolved,
		TimeMinutes:     latest.TimeMinutes,
		Attempts:        latest.Attempts,
		Confidence:      latest.Confidence,
		TimeComplexity:  latest.TimeComplexity,
		SpaceComplexity: latest.SpaceComplexity,
		Notes:           latest.Notes,
		ProblemURL:      latest.ProblemURL,
	}
	return draft.Clone()
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
