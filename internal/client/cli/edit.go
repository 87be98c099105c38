package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/codeclimb/internal/models"
)

// fieldEdit описывает разобранную правку одного поля draft
type fieldEdit struct {
	apply func(*models.AttemptDraft)
	// immediate true для дискретных действий (solved, attempts):
	// они сохраняются без debounce
	immediate bool
}

// parseFieldEdit разбирает присваивание вида "field=value".
// Пустое значение очищает поле (nil). Специальная форма "attempts+"
// инкрементирует счетчик попыток.
func parseFieldEdit(input string) (*fieldEdit, error) {
	if input == "attempts+" {
		return &fieldEdit{
			immediate: true,
			apply: func(d *models.AttemptDraft) {
				next := 1
				if d.Attempts != nil {
					next = *d.Attempts + 1
				}
				d.Attempts = &next
			},
		}, nil
	}

	field, value, found := strings.Cut(input, "=")
	if !found {
		return nil, fmt.Errorf("expected field=value, got %q", input)
	}
	field = strings.ToLower(strings.TrimSpace(field))

	switch field {
	case "solved":
		if value == "" {
			return &fieldEdit{immediate: true, apply: func(d *models.AttemptDraft) { d.Solved = nil }}, nil
		}
		solved, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("solved must be true or false")
		}
		return &fieldEdit{immediate: true, apply: func(d *models.AttemptDraft) { d.Solved = &solved }}, nil

	case "attempts":
		if value == "" {
			return &fieldEdit{immediate: true, apply: func(d *models.AttemptDraft) { d.Attempts = nil }}, nil
		}
		count, err := strconv.Atoi(value)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("attempts must be a number >= 1")
		}
		return &fieldEdit{immediate: true, apply: func(d *models.AttemptDraft) { d.Attempts = &count }}, nil

	case "time":
		if value == "" {
			return &fieldEdit{apply: func(d *models.AttemptDraft) { d.TimeMinutes = nil }}, nil
		}
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			return nil, fmt.Errorf("time must be a number of minutes >= 0")
		}
		return &fieldEdit{apply: func(d *models.AttemptDraft) { d.TimeMinutes = &minutes }}, nil

	case "date":
		return &fieldEdit{apply: stringSetter(value, func(d *models.AttemptDraft) **string { return &d.DateSolved })}, nil
	case "confidence":
		upper := strings.ToUpper(strings.TrimSpace(value))
		return &fieldEdit{apply: stringSetter(upper, func(d *models.AttemptDraft) **string { return &d.Confidence })}, nil
	case "tc", "timecomplexity":
		return &fieldEdit{apply: stringSetter(value, func(d *models.AttemptDraft) **string { return &d.TimeComplexity })}, nil
	case "sc", "spacecomplexity":
		return &fieldEdit{apply: stringSetter(value, func(d *models.AttemptDraft) **string { return &d.SpaceComplexity })}, nil
	case "notes":
		return &fieldEdit{apply: stringSetter(value, func(d *models.AttemptDraft) **string { return &d.Notes })}, nil
	case "url":
		return &fieldEdit{apply: stringSetter(value, func(d *models.AttemptDraft) **string { return &d.ProblemURL })}, nil
	}

	return nil, fmt.Errorf("unknown field %q", field)
}

// stringSetter возвращает apply-функцию для строкового поля.
// Пустая строка очищает поле.
func stringSetter(value string, target func(*models.AttemptDraft) **string) func(*models.AttemptDraft) {
	return func(d *models.AttemptDraft) {
		field := target(d)
		if strings.TrimSpace(value) == "" {
			*field = nil
			return
		}
		v := value
		*field = &v
	}
}
