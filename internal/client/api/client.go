package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/codeclimb/pkg/api"
)

// Таймаут запроса. Зависший запрос неотличим от недоступной сети,
// поэтому по истечении таймаута ошибка классифицируется как transport
// и попадает в retry-политику reconciler'а.
const requestTimeout = 30 * time.Second

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента CodeClimb API
type ClientAPI interface {
	Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)

	Lists(ctx context.Context, token string) ([]api.ListItem, error)
	CreateList(ctx context.Context, token string, req api.CreateListRequest) (*api.ListItem, error)
	Problems(ctx context.Context, token, listID string) ([]api.Problem, error)

	AttemptHistory(ctx context.Context, token, listID string, problemID int) ([]api.Attempt, error)
	CreateAttempt(ctx context.Context, token, listID string, problemID int, req api.UpsertAttemptRequest) (*api.Attempt, error)
	PatchAttempt(ctx context.Context, token, attemptID string, req api.UpsertAttemptRequest) (*api.Attempt, error)
	DeleteAttempt(ctx context.Context, token, attemptID string) error

	Dashboard(ctx context.Context, token string) (*api.Dashboard, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Signup регистрирует нового пользователя
func (c *Client) Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Lists возвращает списки пользователя
func (c *Client) Lists(ctx context.Context, token string) ([]api.ListItem, error) {
	var resp []api.ListItem
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/lists", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateList создает новый список задач
func (c *Client) CreateList(ctx context.Context, token string, req api.CreateListRequest) (*api.ListItem, error) {
	var resp api.ListItem
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/lists", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Problems возвращает каталог задач списка вместе с последними попытками
func (c *Client) Problems(ctx context.Context, token, listID string) ([]api.Problem, error) {
	var resp []api.Problem
	path := fmt.Sprintf("/api/v1/lists/%s/problems", url.PathEscape(listID))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AttemptHistory возвращает сохраненные попытки по задаче, новые первыми
func (c *Client) AttemptHistory(ctx context.Context, token, listID string, problemID int) ([]api.Attempt, error) {
	var resp []api.Attempt
	path := fmt.Sprintf("/api/v1/lists/%s/problems/%d/attempts", url.PathEscape(listID), problemID)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateAttempt создает новую запись попытки
func (c *Client) CreateAttempt(ctx context.Context, token, listID string, problemID int, req api.UpsertAttemptRequest) (*api.Attempt, error) {
	var resp api.Attempt
	path := fmt.Sprintf("/api/v1/lists/%s/problems/%d/attempts", url.PathEscape(listID), problemID)
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PatchAttempt обновляет существующую запись попытки по id
func (c *Client) PatchAttempt(ctx context.Context, token, attemptID string, req api.UpsertAttemptRequest) (*api.Attempt, error) {
	var resp api.Attempt
	path := fmt.Sprintf("/api/v1/attempts/%s", url.PathEscape(attemptID))
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAttempt удаляет запись попытки
func (c *Client) DeleteAttempt(ctx context.Context, token, attemptID string) error {
	path := fmt.Sprintf("/api/v1/attempts/%s", url.PathEscape(attemptID))
	return c.doRequest(ctx, http.MethodDelete, path, token, nil, nil)
}

// Dashboard возвращает сводную статистику пользователя
func (c *Client) Dashboard(ctx context.Context, token string) (*api.Dashboard, error) {
	var resp api.Dashboard
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/dashboard", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует результат.
// Ошибки до получения ответа заворачиваются в *Error со Status == 0,
// HTTP ошибки приходят в *Error со статусом и message из тела ответа.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Ответ не получен: сеть, DNS, таймаут
		return &Error{Status: 0, Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: 0, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil && errResp.Message != "" {
			return &Error{Status: resp.StatusCode, Message: errResp.Message}
		}
		return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	// 204 и отсутствие интереса к телу
	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
