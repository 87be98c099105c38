package validation

import (
	"fmt"
	"strings"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/pkg/api"
)

// complexityAliases отображает упрощенную запись сложности в каноническую.
// Ключ: нижний регистр без пробелов и звездочек.
var complexityAliases = map[string]string{
	"1":        "O(1)",
	"o(1)":     "O(1)",
	"logn":     "O(log n)",
	"o(logn)":  "O(log n)",
	"n":        "O(n)",
	"o(n)":     "O(n)",
	"nlogn":    "O(n log n)",
	"onlogn":   "O(n log n)",
	"o(nlogn)": "O(n log n)",
	"n^2":      "O(n^2)",
	"n2":       "O(n^2)",
	"o(n^2)":   "O(n^2)",
	"2^n":      "O(2^n)",
	"o(2^n)":   "O(2^n)",
	"n!":       "O(n!)",
	"o(n!)":    "O(n!)",
	"2^nn":     "O(2^n*n)",
	"2^n*n":    "O(2^n*n)",
	"o(2^n*n)": "O(2^n*n)",
}

// NormalizeComplexity приводит строку сложности к канонической форме.
// Неизвестные записи возвращаются как есть (trimmed), пустые как "".
func NormalizeComplexity(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	simplified := strings.ToLower(trimmed)
	simplified = strings.ReplaceAll(simplified, " ", "")
	simplified = strings.ReplaceAll(simplified, "*", "")

	if canonical, ok := complexityAliases[simplified]; ok {
		return canonical
	}
	return trimmed
}

// NormalizeNullable убирает пробелы и превращает пустую строку в nil
func NormalizeNullable(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValidateConfidence проверяет, что уровень уверенности из допустимого набора
func ValidateConfidence(confidence *string) error {
	value := NormalizeNullable(confidence)
	if value == nil {
		return nil
	}
	switch *value {
	case models.ConfidenceLow, models.ConfidenceMedium, models.ConfidenceHigh:
		return nil
	}
	return fmt.Errorf("confidence must be LOW, MEDIUM, or HIGH")
}

// ValidateAttemptPayload проверяет payload создания/обновления попытки.
// Пустой payload отклоняется: пустой draft это sentinel "нет попытки",
// он не должен порождать записи на сервере.
func ValidateAttemptPayload(req *api.UpsertAttemptRequest) error {
	if req.Attempts != nil && *req.Attempts < 1 {
		return fmt.Errorf("attempts must be >= 1")
	}
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		return fmt.Errorf("timeMinutes must be >= 0")
	}
	if err := ValidateConfidence(req.Confidence); err != nil {
		return err
	}
	if isEmptyPayload(req) {
		return fmt.Errorf("attempt payload must include at least one meaningful field")
	}
	return nil
}

// isEmptyPayload повторяет семантику models.AttemptDraft.IsEmpty для wire типа
func isEmptyPayload(req *api.UpsertAttemptRequest) bool {
	draft := models.AttemptDraft{
		Solved:          req.Solved,
		DateSolved:      req.DateSolved,
		TimeMinutes:     req.TimeMinutes,
		Attempts:        req.Attempts,
		Confidence:      req.Confidence,
		TimeComplexity:  req.TimeComplexity,
		SpaceComplexity: req.SpaceComplexity,
		Notes:           req.Notes,
		ProblemURL:      req.ProblemURL,
	}
	return draft.IsEmpty()
}
