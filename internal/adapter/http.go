package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
	"github.com/go-resty/resty/v2"
)

type httpConsoleAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPConsoleAdapter constructs the HTTP implementation of
// [ConsoleAdapter]. The base URL comes from adapterCfg.HTTPAddress; a bare
// host:port gets an http:// scheme.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPConsoleAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConsoleAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpConsoleAdapter{client: client, logger: logger}, nil
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

func (h *httpConsoleAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpConsoleAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /api/auth/login. The bearer token is taken
// from the Authorization response header.
func (h *httpConsoleAdapter) Login(ctx context.Context, login, password string) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Login: login, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		if result.Token == "" {
			return models.LoginResult{}, fmt.Errorf("%w: %w", ErrNoBearerToken, err)
		}
		token = result.Token
	}
	h.SetToken(token)

	h.logger.Debug().Int64("user_id", result.UserID).Stringer("step", result.Step).Msg("logged in")
	return result, nil
}

func (h *httpConsoleAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpConsoleAdapter) Me(ctx context.Context) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/auth/me")
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatus{}, err
	}

	return status, nil
}

// Enroll POSTs the capture to /api/biometric/enroll. When the enrollment
// completed the login the refreshed credential replaces the held token.
func (h *httpConsoleAdapter) Enroll(ctx context.Context, capture models.CaptureRequest) (models.EnrollResult, error) {
	var result models.EnrollResult

	resp, err := h.authedRequest(ctx).
		SetBody(capture).
		SetResult(&result).
		Post("/api/biometric/enroll")
	if err != nil {
		return models.EnrollResult{}, fmt.Errorf("enroll request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EnrollResult{}, err
	}

	h.refreshToken(resp, result.Token)
	return result, nil
}

func (h *httpConsoleAdapter) Verify(ctx context.Context, capture models.CaptureRequest) (models.VerifyResult, error) {
	var result models.VerifyResult

	resp, err := h.authedRequest(ctx).
		SetBody(capture).
		SetResult(&result).
		Post("/api/biometric/verify")
	if err != nil {
		return models.VerifyResult{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResult{}, err
	}

	h.refreshToken(resp, result.Token)
	return result, nil
}

func (h *httpConsoleAdapter) Toggle(ctx context.Context, req models.ToggleRequest) (models.ToggleResult, error) {
	var result models.ToggleResult

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Put("/api/biometric/toggle")
	if err != nil {
		return models.ToggleResult{}, fmt.Errorf("toggle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ToggleResult{}, err
	}

	return result, nil
}

func (h *httpConsoleAdapter) DetectFace(ctx context.Context, payload string) (models.DetectFaceResult, error) {
	var result models.DetectFaceResult

	resp, err := h.authedRequest(ctx).
		SetBody(models.DetectFaceRequest{Payload: payload}).
		SetResult(&result).
		Post("/api/biometric/detect-face")
	if err != nil {
		return models.DetectFaceResult{}, fmt.Errorf("detect face request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DetectFaceResult{}, err
	}

	return result, nil
}

func (h *httpConsoleAdapter) ConsoleSession(ctx context.Context) (models.ConsoleSession, error) {
	var view models.ConsoleSession

	resp, err := h.authedRequest(ctx).
		SetResult(&view).
		Get("/api/console/session")
	if err != nil {
		return models.ConsoleSession{}, fmt.Errorf("console session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConsoleSession{}, err
	}

	return view, nil
}

// Health decodes the body of both 200 and 503 answers.
func (h *httpConsoleAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if resp.StatusCode() != http.StatusServiceUnavailable {
		if err = mapHTTPError(resp); err != nil {
			return models.HealthStatus{}, err
		}
	}

	var status models.HealthStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

func (h *httpConsoleAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpConsoleAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// refreshToken prefers the Authorization header and falls back to the body.
func (h *httpConsoleAdapter) refreshToken(resp *resty.Response, bodyToken string) {
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		h.SetToken(token)
		return
	}
	if bodyToken != "" {
		h.SetToken(bodyToken)
	}
}
