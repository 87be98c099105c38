package api

// CategoryStat содержит агрегаты по одной категории задач
type CategoryStat struct {
	Category       string   `json:"category"`
	SolvedCount    int      `json:"solvedCount"`
	AvgTimeMinutes *float64 `json:"avgTimeMinutes"`
}

// Dashboard представляет сводную статистику пользователя
type Dashboard struct {
	LatestListID       *string        `json:"latestListId"`     // список с последней активностью
	LastActivityAt     *string        `json:"lastActivityAt"`   // RFC3339, nil если активности не было
	FarthestCategory   *string        `json:"farthestCategory"` // категория самой дальней решенной задачи
	FarthestOrderIndex *int           `json:"farthestOrderIndex"`
	PerCategory        []CategoryStat `json:"perCategory"`
	StreakCurrent      int            `json:"streakCurrent"` // текущий streak в днях
}
