package repository

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/entity"
)

// SnapshotCache holds the dashboard state between operations. Two
// strategies implement it and are never mixed within one deployment:
//
//   - authoritative: Refresh replaces the snapshot from the backend and
//     every mutation re-fetches on success, so the cache only ever shows
//     server-confirmed state.
//   - optimistic (offline): mutations are applied directly to the local
//     store and Refresh reloads from it; no network is involved.
//
// Goals are addressed by the server-assigned ID in the authoritative
// strategy and by snapshot index in the optimistic one; goalKey carries
// whichever applies.
type SnapshotCache interface {
	Refresh(ctx context.Context) error
	Snapshot() entity.Snapshot

	RecordExpense(ctx context.Context, amount float64, note string) error
	RecordDeposit(ctx context.Context, account string, amount float64, goalKey *int) error
	UpdateBudget(ctx context.Context, monthlyBudget float64) error
	AddGoal(ctx context.Context, input entity.GoalInput) error
	EditGoal(ctx context.Context, goalKey int, input entity.GoalInput) error
	DeleteGoal(ctx context.Context, goalKey int) error
}
