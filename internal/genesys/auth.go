package genesys

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/domain"
)

// TokenSource получает bearer token по client credentials.
// Токен не обновляется в течение запуска.
type TokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	http         *http.Client
}

// NewTokenSource создает новый экземпляр TokenSource.
func NewTokenSource(loginBaseURL string, cfg config.Config) *TokenSource {
	return &TokenSource{
		tokenURL:     loginBaseURL + "/oauth/token",
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Token выполняет client_credentials grant и возвращает access token.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {t.clientID},
		"client_secret": {t.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrAuthFailed, resp.StatusCode, truncateBody(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", domain.ErrAuthFailed)
	}

	return payload.AccessToken, nil
}
