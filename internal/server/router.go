package server

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/codeclimb/internal/server/handlers"
	"github.com/iudanet/codeclimb/internal/server/middleware"
	"github.com/iudanet/codeclimb/internal/server/storage"
)

// Storage объединяет все хранилища, которые нужны обработчикам API
type Storage interface {
	storage.UserStorage
	storage.ListStorage
	storage.ProblemStorage
	storage.AttemptStorage
	storage.DashboardStorage
}

// Лимиты на попытки входа, отдельно от общего API лимита
const (
	authRateLimit  = 10
	authRateWindow = 5 * time.Minute

	apiRateLimit  = 600
	apiRateWindow = time.Minute
)

// NewRouter собирает chi router со всеми маршрутами API
func NewRouter(logger *slog.Logger, store Storage, jwtConfig handlers.JWTConfig, version string) chi.Router {
	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	listsHandler := handlers.NewListsHandler(logger, store, store, store)
	attemptsHandler := handlers.NewAttemptsHandler(logger, store, store, store)
	dashboardHandler := handlers.NewDashboardHandler(logger, store, store)
	healthHandler := handlers.NewHealthHandler(logger, version)

	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))

	// Health живет вне /api/v1: проба доступна без токена и версии API
	r.Get("/health", healthHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints с жестким rate limit против перебора паролей
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware(authRateLimit, authRateWindow, logger))
			r.Post("/auth/signup", authHandler.Signup)
			r.Post("/auth/login", authHandler.Login)
		})

		// Все остальное требует валидный access token
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware(apiRateLimit, apiRateWindow, logger))
			r.Use(middleware.AuthMiddleware(logger, jwtConfig))

			r.Get("/lists", listsHandler.List)
			r.Post("/lists", listsHandler.Create)
			r.Get("/lists/{listID}/problems", listsHandler.Problems)

			r.Get("/lists/{listID}/problems/{problemID}/attempts", attemptsHandler.History)
			r.Post("/lists/{listID}/problems/{problemID}/attempts", attemptsHandler.Create)

			r.Patch("/attempts/{attemptID}", attemptsHandler.Patch)
			r.Delete("/attempts/{attemptID}", attemptsHandler.Delete)

			r.Get("/dashboard", dashboardHandler.Dashboard)
		})
	})

	return r
}
