package models

import "time"

// List represents a problem list owned by a user.
// TemplateVersion связывает список с версией каталога задач.
type List struct {
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	TemplateVersion string    `json:"template_version"`
	Deprecated      bool      `json:"deprecated"`
}
