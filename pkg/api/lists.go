package api

import "time"

// ListItem представляет список задач пользователя
type ListItem struct {
	ID              string `json:"id"`   // UUID списка
	Name            string `json:"name"` // имя, заданное пользователем
	TemplateVersion string `json:"templateVersion"`
	Deprecated      bool   `json:"deprecated"`
}

// CreateListRequest представляет запрос на создание списка
type CreateListRequest struct {
	Name            string `json:"name"`
	TemplateVersion string `json:"templateVersion"`
}

// LatestAttempt содержит поля последней попытки для строки каталога.
// nil целиком, если по задаче нет ни одной попытки.
type LatestAttempt struct {
	UpdatedAt       time.Time `json:"updatedAt"`
	Solved          *bool     `json:"solved"`
	DateSolved      *string   `json:"dateSolved"`
	TimeMinutes     *int      `json:"timeMinutes"`
	Attempts        *int      `json:"attempts"`
	Confidence      *string   `json:"confidence"`
	TimeComplexity  *string   `json:"timeComplexity"`
	SpaceComplexity *string   `json:"spaceComplexity"`
	Notes           *string   `json:"notes"`
	ProblemURL      *string   `json:"problemUrl"`
}

// Problem представляет задачу каталога вместе с последней попыткой пользователя
type Problem struct {
	LatestAttempt *LatestAttempt `json:"latestAttempt"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Difficulty    string         `json:"difficulty"`
	ProblemID     int            `json:"problemId"`
	OrderIndex    int            `json:"orderIndex"`
}
