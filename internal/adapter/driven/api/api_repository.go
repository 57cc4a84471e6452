// Package api implements the driven adapter for the FinTeach REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// DefaultBaseURL matches the backend's development origin.
const DefaultBaseURL = "http://127.0.0.1:8000"

// APIRepositoryImpl implementa o APIRepository sobre net/http.
type APIRepositoryImpl struct {
	baseURL string
	client  *http.Client
}

// NewAPIRepository cria uma nova implementação do APIRepository.
func NewAPIRepository(baseURL string) repository.APIRepository {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APIRepositoryImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// errorDetail is the error envelope the backend returns on 4xx.
type errorDetail struct {
	Detail string `json:"detail"`
}

// apiError carries the status code of a rejected request so callers can
// match on it instead of parsing the message.
type apiError struct {
	method string
	path   string
	status int
	detail string
}

func (e *apiError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s %s: %s", e.method, e.path, e.detail)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.method, e.path, e.status)
}

// do issues one JSON request. A non-empty accessToken is sent as a bearer
// Authorization header; a 401 on such a request becomes ErrSessionExpired.
// When out is non-nil the response body is decoded into it.
func (r *APIRepositoryImpl) do(ctx context.Context, method, path, accessToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Get().Debugw("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && accessToken != "" {
		return types.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var detail errorDetail
		if json.Unmarshal(raw, &detail) == nil && detail.Detail != "" {
			logger.Get().Debugw("backend rejected request",
				"method", method, "path", path, "status", resp.StatusCode, "detail", detail.Detail)
			return &apiError{method: method, path: path, status: resp.StatusCode, detail: detail.Detail}
		}
		logger.Get().Debugw("backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "body", string(raw))
		return &apiError{method: method, path: path, status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Login exchanges credentials for a token pair.
func (r *APIRepositoryImpl) Login(ctx context.Context, username, password string) (entity.Session, error) {
	var session entity.Session
	body := map[string]string{"username": username, "password": password}
	err := r.do(ctx, http.MethodPost, "/accounts/api/token/", "", body, &session)
	if err != nil {
		// The token endpoint rejects bad credentials with a 401;
		// surface it as the one inline auth error.
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusUnauthorized {
			return entity.Session{}, types.ErrInvalidCredentials
		}
		return entity.Session{}, err
	}
	return session, nil
}

// RefreshToken exchanges a refresh token for a new access token.
func (r *APIRepositoryImpl) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	body := map[string]string{"refresh": refreshToken}
	if err := r.do(ctx, http.MethodPost, "/accounts/api/token/refresh/", "", body, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

// Register creates a new user account.
func (r *APIRepositoryImpl) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return r.do(ctx, http.MethodPost, "/accounts/api/register/", "", body, nil)
}

// GetUserProfile fetches the logged-in user's profile.
func (r *APIRepositoryImpl) GetUserProfile(ctx context.Context, accessToken string) (entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.do(ctx, http.MethodGet, "/accounts/api/user/", accessToken, nil, &profile)
	return profile, err
}

// GetSnapshot fetches the full dashboard snapshot.
func (r *APIRepositoryImpl) GetSnapshot(ctx context.Context, accessToken string) (entity.Snapshot, error) {
	var snapshot entity.Snapshot
	err := r.do(ctx, http.MethodGet, "/accounts/api/dashboard/", accessToken, nil, &snapshot)
	return snapshot, err
}

// SubmitTransaction records an expense or deposit. Callers must re-fetch
// the snapshot on success; the response body is not trusted.
func (r *APIRepositoryImpl) SubmitTransaction(ctx context.Context, accessToken string, tx entity.TransactionRequest) error {
	return r.do(ctx, http.MethodPost, "/accounts/api/transaction/", accessToken, tx, nil)
}

// UpdateBudget sets the monthly budget.
func (r *APIRepositoryImpl) UpdateBudget(ctx context.Context, accessToken string, monthlyBudget float64) error {
	body := map[string]float64{"monthly_budget": monthlyBudget}
	return r.do(ctx, http.MethodPatch, "/accounts/api/budget/", accessToken, body, nil)
}

// CreateGoal adds a new savings goal.
func (r *APIRepositoryImpl) CreateGoal(ctx context.Context, accessToken string, input entity.GoalInput) error {
	return r.do(ctx, http.MethodPost, "/accounts/api/goals/", accessToken, input, nil)
}

// UpdateGoal edits an existing goal.
func (r *APIRepositoryImpl) UpdateGoal(ctx context.Context, accessToken string, goalID int, input entity.GoalInput) error {
	path := fmt.Sprintf("/accounts/api/goals/%d/", goalID)
	return r.do(ctx, http.MethodPatch, path, accessToken, input, nil)
}

// DeleteGoal removes a goal.
func (r *APIRepositoryImpl) DeleteGoal(ctx context.Context, accessToken string, goalID int) error {
	path := fmt.Sprintf("/accounts/api/goals/%d/delete/", goalID)
	return r.do(ctx, http.MethodDelete, path, accessToken, nil, nil)
}

// SendChatMessage forwards a message to the AI advisor and returns the
// reply text. Transport and status failures come back as errors; the
// chat use case maps them to the user-visible fallback reply.
func (r *APIRepositoryImpl) SendChatMessage(ctx context.Context, accessToken string, message string) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	body := map[string]string{"message": message}
	if err := r.do(ctx, http.MethodPost, "/accounts/api/ai-chat/", accessToken, body, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}
