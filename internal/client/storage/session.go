package storage

import (
	"context"
	"time"
)

// Session представляет сохраненную сессию пользователя.
// Хранится локально между запусками CLI.
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	ServerURL   string    `json:"server_url"`
	Timezone    string    `json:"timezone"`
}

// Expired сообщает, истек ли токен сессии
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the CLI session
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the saved session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the saved session (logout)
	DeleteSession(ctx context.Context) error
}
