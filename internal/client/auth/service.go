// Package auth управляет локальной сессией CLI: логин, логаут, статус.
// Токен хранится в локальной базе клиента; ядро автосохранения получает
// его уже готовым и сессией не управляет.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	clientapi "github.com/iudanet/codeclimb/internal/client/api"
	"github.com/iudanet/codeclimb/internal/client/storage"
	"github.com/iudanet/codeclimb/pkg/api"
)

// Service provides session management on top of SessionStorage
type Service struct {
	client  clientapi.ClientAPI
	storage storage.SessionStorage
}

// NewService creates a new auth service
func NewService(client clientapi.ClientAPI, sessionStorage storage.SessionStorage) *Service {
	return &Service{
		client:  client,
		storage: sessionStorage,
	}
}

// Signup регистрирует пользователя и сохраняет полученную сессию
func (s *Service) Signup(ctx context.Context, serverURL, email, password, timezone string) (*storage.Session, error) {
	resp, err := s.client.Signup(ctx, api.SignupRequest{
		Email:    email,
		Password: password,
		Timezone: timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	return s.saveSession(ctx, serverURL, resp)
}

// Login аутентифицирует пользователя и сохраняет сессию
func (s *Service) Login(ctx context.Context, serverURL, email, password string) (*storage.Session, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveSession(ctx, serverURL, resp)
}

// Logout удаляет сохраненную сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает активную сессию.
// Истекшая сессия приравнивается к отсутствующей.
func (s *Service) Session(ctx context.Context) (*storage.Session, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.Expired() {
		return nil, storage.ErrSessionNotFound
	}
	return session, nil
}

// IsAuthenticated сообщает, есть ли активная сессия
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	_, err := s.Session(ctx)
	return err == nil
}

func (s *Service) saveSession(ctx context.Context, serverURL string, resp *api.AuthResponse) (*storage.Session, error) {
	session := &storage.Session{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID,
		Email:       resp.Email,
		ServerURL:   serverURL,
		Timezone:    resp.Timezone,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresInSeconds) * time.Second),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// IsNotAuthenticated сообщает, является ли ошибка отсутствием сессии
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, storage.ErrSessionNotFound)
}
