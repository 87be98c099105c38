package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error представляет ошибку запроса к серверу.
// Status == 0 означает transport-level ошибку: ответ не был получен
// (сеть недоступна, таймаут). Любой другой Status это HTTP статус ответа.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport error: %s", e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsTransport сообщает, является ли ошибка transport-level (ответа не было)
func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 0
}

// IsValidation сообщает, является ли ошибка ошибкой валидации (HTTP 400)
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// IsAuth сообщает, истекла ли сессия (HTTP 401/403).
// Такие ошибки обрабатываются вызывающим кодом, не reconciler'ом.
func IsAuth(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}
