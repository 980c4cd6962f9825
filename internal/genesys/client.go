package genesys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"webrtc-provisioner/internal/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// APIBaseURL возвращает базовый URL API для региона.
func APIBaseURL(environment string) string {
	return "https://api." + environment
}

// LoginBaseURL возвращает базовый URL auth-сервера для региона.
func LoginBaseURL(environment string) string {
	return "https://login." + environment
}

// Client — низкоуровневый клиент Genesys Cloud API с bearer-авторизацией.
// Все запросы проходят через общий rate limiter: одна фиксированная пауза
// между любыми обращениями к API, включая постраничные.
type Client struct {
	baseURL  string
	token    string
	pageSize int
	http     *http.Client
	limiter  *rate.Limiter
	logger   *logrus.Logger
}

// NewClient создает новый экземпляр Client.
func NewClient(baseURL string, cfg config.Config, token string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		token:    token,
		pageSize: cfg.PageSize,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:  rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
		logger:   logger,
	}
}

// Send выполняет запрос и возвращает код и тело ответа.
// Решение об успешности остается за вызывающим: допустимые коды
// различаются между операциями.
func (c *Client) Send(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Error("Genesys API request error")
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	if resp.StatusCode >= 400 {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"body":   truncateBody(respBody),
		}).Warn("Genesys API request failed")
	}

	return resp.StatusCode, respBody, nil
}

// GetJSON выполняет GET и декодирует ответ; любой код кроме 200 — ошибка.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	status, body, err := c.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return APIError("GET "+path, status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// APIError формирует ошибку удаленного вызова с кодом и телом ответа.
func APIError(op string, status int, body []byte) error {
	return fmt.Errorf("%s: status %d: %s", op, status, truncateBody(body))
}

// StatusIn проверяет вхождение кода в набор допустимых.
func StatusIn(status int, accepted ...int) bool {
	for _, code := range accepted {
		if status == code {
			return true
		}
	}
	return false
}

func truncateBody(body []byte) string {
	const limit = 512
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
