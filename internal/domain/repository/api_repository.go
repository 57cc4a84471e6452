package repository

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/entity"
)

// APIRepository defines the interface for FinTeach backend interactions.
// Every call issues exactly one HTTP request; mutations are never retried.
type APIRepository interface {
	// Auth Operations
	Login(ctx context.Context, username, password string) (entity.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	Register(ctx context.Context, username, email, password string) error

	// Profile & Dashboard Operations
	GetUserProfile(ctx context.Context, accessToken string) (entity.UserProfile, error)
	GetSnapshot(ctx context.Context, accessToken string) (entity.Snapshot, error)

	// Mutation Operations
	SubmitTransaction(ctx context.Context, accessToken string, tx entity.TransactionRequest) error
	UpdateBudget(ctx context.Context, accessToken string, monthlyBudget float64) error
	CreateGoal(ctx context.Context, accessToken string, input entity.GoalInput) error
	UpdateGoal(ctx context.Context, accessToken string, goalID int, input entity.GoalInput) error
	DeleteGoal(ctx context.Context, accessToken string, goalID int) error

	// AI Chat
	SendChatMessage(ctx context.Context, accessToken string, message string) (string, error)
}
