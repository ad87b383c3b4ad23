package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	pkgapi "github.com/lilfaithontrack/abigail-admin/pkg/api"
)

// ErrNotAuthenticated возвращается, когда привилегированный запрос
// выполняется без сохранённого токена. Запрос на сервер не отправляется.
var ErrNotAuthenticated = errors.New("not authenticated: please log in again")

// TokenSource отдает сохранённый bearer token. Пустая строка означает,
// что пользователь не вошёл в систему.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с CMS API
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login выполняет вход администратора
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	var resp pkgapi.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", false, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// FilePart описывает файл, прикладываемый к multipart запросу
type FilePart struct {
	Field   string // имя поля формы, обычно "image"
	Name    string // имя файла
	Content []byte
}

// doJSON выполняет HTTP запрос с JSON телом
func (c *Client) doJSON(ctx context.Context, method, path string, authed bool, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, authed, result)
}

// doMultipart выполняет HTTP запрос с multipart/form-data телом
func (c *Client) doMultipart(
	ctx context.Context,
	method, path string,
	authed bool,
	fields map[string]string,
	file *FilePart,
	result any,
) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", key, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write form file: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, authed, result)
}

// send отправляет подготовленный запрос и декодирует ответ.
// Для authed запросов токен проверяется до выхода в сеть.
func (c *Client) send(req *http.Request, authed bool, result any) error {
	if authed {
		token, err := c.tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("failed to read stored token: %w", err)
		}
		if token == "" {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	slog.Debug("api request",
		"request_id", requestID,
		"method", req.Method,
		"path", req.URL.Path,
		"authed", authed,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("api request failed",
			"request_id", requestID,
			"status", resp.StatusCode,
		)
		return decodeError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ. Пустое тело не ошибка: вызывающий
	// увидит нетронутый result (список деградирует до пустого).
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeError извлекает message из тела ошибки, если оно есть
func decodeError(statusCode int, body []byte) error {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		message := errResp.Message
		if message == "" {
			message = errResp.Error
		}
		if message != "" {
			return fmt.Errorf("server error (%d): %s", statusCode, message)
		}
	}
	return fmt.Errorf("request failed with status %d", statusCode)
}
