package api

import "time"

// UpsertAttemptRequest представляет payload создания/обновления попытки.
// Все поля независимо nullable: nil означает "поле не заполнено".
type UpsertAttemptRequest struct {
	Solved          *bool   `json:"solved"`
	DateSolved      *string `json:"dateSolved"` // дата решения в формате YYYY-MM-DD
	TimeMinutes     *int    `json:"timeMinutes"`
	Attempts        *int    `json:"attempts"`
	Confidence      *string `json:"confidence"` // LOW, MEDIUM или HIGH
	TimeComplexity  *string `json:"timeComplexity"`
	SpaceComplexity *string `json:"spaceComplexity"`
	Notes           *string `json:"notes"`
	ProblemURL      *string `json:"problemUrl"`
}

// Attempt представляет сохраненную попытку, как ее возвращает сервер.
// Поля complexity приходят уже нормализованными сервером.
type Attempt struct {
	UpdatedAt       time.Time `json:"updatedAt"`
	ID              string    `json:"id"`     // UUID записи
	ListID          string    `json:"listId"` // UUID списка
	DateSolved      *string   `json:"dateSolved"`
	Solved          *bool     `json:"solved"`
	TimeMinutes     *int      `json:"timeMinutes"`
	Attempts        *int      `json:"attempts"`
	Confidence      *string   `json:"confidence"`
	TimeComplexity  *string   `json:"timeComplexity"`
	SpaceComplexity *string   `json:"spaceComplexity"`
	Notes           *string   `json:"notes"`
	ProblemURL      *string   `json:"problemUrl"`
	ProblemID       int       `json:"problemId"` // стабильный id задачи в каталоге
}
