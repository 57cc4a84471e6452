package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// AuthUseCase handles login, registration and logout against the backend.
type AuthUseCase struct {
	guard   *SessionGuard
	apiRepo repository.APIRepository
	console types.ConsoleInterface
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(guard *SessionGuard, apiRepo repository.APIRepository, console types.ConsoleInterface) *AuthUseCase {
	return &AuthUseCase{guard: guard, apiRepo: apiRepo, console: console}
}

// Login exchanges credentials for a session and persists it. Auth
// failures are the one path that surfaces an inline message.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		uc.console.LogError("Username and password are required.")
		return types.ErrInvalidCredentials
	}

	session, err := uc.apiRepo.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			uc.console.LogError("Invalid username or password.")
		} else {
			uc.console.LogError("Login failed: %s", err)
		}
		return err
	}

	if err := uc.guard.SaveSession(session); err != nil {
		return err
	}
	if err := uc.guard.SetUsername(username); err != nil {
		return err
	}

	uc.console.LogSuccess("Welcome back, %s!", username)
	return nil
}

// Register creates a new account. The user still has to log in afterwards.
func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		uc.console.LogError("Username, email and password are required.")
		return types.ErrInvalidCredentials
	}

	if err := uc.apiRepo.Register(ctx, username, email, password); err != nil {
		uc.console.LogError("Registration failed: %s", err)
		return err
	}

	uc.console.LogSuccess("Account created. Run 'finteach login' to sign in.")
	return nil
}

// RefreshSession exchanges the stored refresh token for a new access
// token. Used when a command hits a stale token.
func (uc *AuthUseCase) RefreshSession(ctx context.Context) error {
	refresh, ok := uc.guard.RefreshToken()
	if !ok {
		return types.ErrNotAuthenticated
	}

	access, err := uc.apiRepo.RefreshToken(ctx, refresh)
	if err != nil {
		logger.Get().Debugw("token refresh failed", "error", err)
		return types.ErrSessionExpired
	}
	return uc.guard.SaveAccessToken(access)
}

// Logout clears the stored session locally.
func (uc *AuthUseCase) Logout() error {
	if err := uc.guard.Logout(); err != nil {
		return err
	}
	uc.console.LogSuccess("You have been logged out.")
	return nil
}
