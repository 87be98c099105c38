package models

// CatalogProblem is a single problem from a versioned problem catalog.
// Каталог неизменяемый: задачи сидируются миграциями и не редактируются.
type CatalogProblem struct {
	TemplateVersion string `json:"template_version"`
	Title           string `json:"title"`
	URL             string `json:"url"`
	Category        string `json:"category"`
	Difficulty      string `json:"difficulty"`
	ProblemID       int    `json:"problem_id"`
	OrderIndex      int    `json:"order_index"`
}
