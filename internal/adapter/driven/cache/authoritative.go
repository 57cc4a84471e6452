// Package cache provides the two dashboard state strategies: the
// authoritative cache that re-fetches server-confirmed state after every
// mutation, and the optimistic cache that applies mutations to the local
// store directly. A deployment uses exactly one of them.
package cache

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
)

// AuthoritativeCache keeps the snapshot in memory and treats the backend
// as the single source of truth: Refresh replaces the snapshot wholesale,
// and every successful mutation triggers a re-fetch. No incremental
// response is trusted.
type AuthoritativeCache struct {
	apiRepo     repository.APIRepository
	accessToken string
	snapshot    entity.Snapshot
}

// NewAuthoritativeCache creates the server-backed cache. The access token
// comes from the session guard; the cache never reads the local store.
func NewAuthoritativeCache(apiRepo repository.APIRepository, accessToken string) *AuthoritativeCache {
	return &AuthoritativeCache{apiRepo: apiRepo, accessToken: accessToken}
}

// Refresh replaces the entire snapshot from the backend.
func (c *AuthoritativeCache) Refresh(ctx context.Context) error {
	snapshot, err := c.apiRepo.GetSnapshot(ctx, c.accessToken)
	if err != nil {
		return err
	}
	c.snapshot = snapshot
	return nil
}

// Snapshot returns the last fetched snapshot.
func (c *AuthoritativeCache) Snapshot() entity.Snapshot {
	return c.snapshot
}

// RecordExpense submits a checking expense and re-fetches on success.
func (c *AuthoritativeCache) RecordExpense(ctx context.Context, amount float64, note string) error {
	tx := entity.TransactionRequest{
		Type:    entity.ActivityTypeExpense,
		Account: entity.AccountChecking,
		Amount:  amount,
		Note:    note,
	}
	if err := c.apiRepo.SubmitTransaction(ctx, c.accessToken, tx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// RecordDeposit submits a deposit and re-fetches on success. goalKey is
// the server-assigned goal ID; it is only sent for savings deposits.
func (c *AuthoritativeCache) RecordDeposit(ctx context.Context, account string, amount float64, goalKey *int) error {
	tx := entity.TransactionRequest{
		Type:    entity.ActivityTypeDeposit,
		Account: account,
		Amount:  amount,
	}
	if account == entity.AccountSavings {
		tx.GoalID = goalKey
	}
	if err := c.apiRepo.SubmitTransaction(ctx, c.accessToken, tx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// UpdateBudget patches the monthly budget and re-fetches on success.
func (c *AuthoritativeCache) UpdateBudget(ctx context.Context, monthlyBudget float64) error {
	if err := c.apiRepo.UpdateBudget(ctx, c.accessToken, monthlyBudget); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// AddGoal creates a goal and re-fetches on success.
func (c *AuthoritativeCache) AddGoal(ctx context.Context, input entity.GoalInput) error {
	if err := c.apiRepo.CreateGoal(ctx, c.accessToken, input); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// EditGoal patches the goal with the given server ID and re-fetches.
func (c *AuthoritativeCache) EditGoal(ctx context.Context, goalKey int, input entity.GoalInput) error {
	if err := c.apiRepo.UpdateGoal(ctx, c.accessToken, goalKey, input); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// DeleteGoal removes the goal with the given server ID and re-fetches.
func (c *AuthoritativeCache) DeleteGoal(ctx context.Context, goalKey int) error {
	if err := c.apiRepo.DeleteGoal(ctx, c.accessToken, goalKey); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

var _ repository.SnapshotCache = (*AuthoritativeCache)(nil)
