package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
	"github.com/iudanet/codeclimb/internal/validation"
	"github.com/iudanet/codeclimb/pkg/api"
)

const (
	// Новому пользователю сразу создается список по актуальному каталогу
	defaultTemplateVersion = "neet250.v1"
	defaultListName        = "NeetCode 250"

	// Часовой пояс по умолчанию, если клиент не прислал свой
	defaultTimezone = "America/Chicago"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	listStorage storage.ListStorage
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, listStorage storage.ListStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		listStorage: listStorage,
		jwtConfig:   jwtConfig,
	}
}

// Signup обрабатывает POST /api/v1/auth/signup
// Регистрация нового пользователя
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.ValidateEmail(email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = defaultTimezone
	}
	if err := validation.ValidateTimezone(timezone); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Пароль хранится только как bcrypt хеш
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Timezone:     timezone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "signup: email already exists", slog.String("email", email))
			sendError(h.logger, w, "Email already exists", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Стартовый список создается сразу, чтобы клиенту было куда писать
	now := time.Now().UTC()
	list := &models.List{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		Name:            defaultListName,
		TemplateVersion: defaultTemplateVersion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.listStorage.CreateList(ctx, list); err != nil {
		h.logger.ErrorContext(ctx, "failed to create default list", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	h.respondWithToken(w, user, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			sendError(h.logger, w, "Invalid credentials", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
		sendError(h.logger, w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	h.respondWithToken(w, user, http.StatusOK)
}

// respondWithToken выписывает access token и отправляет AuthResponse
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *models.User, statusCode int) {
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.Error("failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.AuthResponse{
		AccessToken:      accessToken,
		ExpiresInSeconds: expiresIn,
		UserID:           user.ID,
		Email:            user.Email,
		Timezone:         user.Timezone,
	}

	sendJSON(h.logger, w, resp, statusCode)
}
