package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type httpAuthClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewAuthClient constructs an HTTP/REST implementation of [AuthClient].
// baseURL may omit the scheme, in which case http is assumed. A zero
// timeout leaves requests bounded only by their context.
func NewAuthClient(baseURL string, timeout time.Duration, logger *logger.Logger) (AuthClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpAuthClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to POST /auth/register and keeps the returned token.
func (h *httpAuthClient) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/register", request)
}

// Login posts to POST /auth/login and keeps the returned token.
func (h *httpAuthClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", request)
}

// Me returns the user owning the current token via GET /auth/me.
func (h *httpAuthClient) Me(ctx context.Context) (models.UserResponse, error) {
	token := h.Token()
	if token == "" {
		return models.UserResponse{}, ErrNotLoggedIn
	}

	var result struct {
		Success bool                `json:"success"`
		Data    models.UserResponse `json:"data"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get("/auth/me")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return result.Data, nil
}

func (h *httpAuthClient) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("authentication rejected")
		return models.AuthResponse{}, err
	}
	if result.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: empty token in response", path)
	}

	h.SetToken(result.Token)
	return result, nil
}

