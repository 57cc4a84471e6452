package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// OptimisticCache is the offline strategy: the snapshot lives in the
// local store and mutations are applied in place, with no network calls.
// Balances never go negative (expenses clamp at zero) and the activity
// feed keeps only the five most recent entries, newest first. Goals are
// addressed by their index in the snapshot.
type OptimisticCache struct {
	store    repository.LocalStoreRepository
	nowFn    func() time.Time
	snapshot entity.Snapshot
}

// NewOptimisticCache creates the local-store-backed cache.
func NewOptimisticCache(store repository.LocalStoreRepository) *OptimisticCache {
	return &OptimisticCache{store: store, nowFn: time.Now}
}

// Refresh reloads the snapshot from the local store. Missing keys fall
// back to zero values, so a first run starts from an empty dashboard.
func (c *OptimisticCache) Refresh(_ context.Context) error {
	snapshot := entity.Snapshot{
		CheckingBalance:   c.getFloat(repository.KeyCheckingBalance),
		SavingsBalance:    c.getFloat(repository.KeySavingsBalance),
		InvestmentBalance: c.getFloat(repository.KeyInvestmentBalance),
		MonthlyBudget:     c.getFloat(repository.KeyMonthlyBudget),
	}

	if raw, ok := c.store.Get(repository.KeyRecentActivity); ok {
		if err := json.Unmarshal([]byte(raw), &snapshot.RecentActivity); err != nil {
			return fmt.Errorf("parse stored activity: %w", err)
		}
	}
	if raw, ok := c.store.Get(repository.KeyGoals); ok {
		if err := json.Unmarshal([]byte(raw), &snapshot.Goals); err != nil {
			return fmt.Errorf("parse stored goals: %w", err)
		}
	}

	c.snapshot = snapshot
	return nil
}

// Snapshot returns the current in-memory snapshot.
func (c *OptimisticCache) Snapshot() entity.Snapshot {
	return c.snapshot
}

// RecordExpense decreases the checking balance, clamped at zero, and
// prepends one activity item embedding the spent amount.
func (c *OptimisticCache) RecordExpense(_ context.Context, amount float64, note string) error {
	c.snapshot.CheckingBalance -= amount
	if c.snapshot.CheckingBalance < 0 {
		c.snapshot.CheckingBalance = 0
	}
	c.snapshot.PrependActivity(entity.NewExpenseActivity(amount, note, c.nowFn()))
	return c.persist()
}

// RecordDeposit increases the target account balance and prepends one
// activity item. A savings deposit tied to a goal also advances that
// goal's current amount.
func (c *OptimisticCache) RecordDeposit(_ context.Context, account string, amount float64, goalKey *int) error {
	switch account {
	case entity.AccountChecking:
		c.snapshot.CheckingBalance += amount
	case entity.AccountSavings:
		c.snapshot.SavingsBalance += amount
	case entity.AccountInvestments:
		c.snapshot.InvestmentBalance += amount
	default:
		return fmt.Errorf("unknown account %q", account)
	}

	if account == entity.AccountSavings && goalKey != nil {
		if *goalKey < 0 || *goalKey >= len(c.snapshot.Goals) {
			return types.ErrGoalNotFound
		}
		c.snapshot.Goals[*goalKey].Current += amount
	}

	c.snapshot.PrependActivity(entity.NewDepositActivity(amount, account, c.nowFn()))
	return c.persist()
}

// UpdateBudget sets the monthly budget.
func (c *OptimisticCache) UpdateBudget(_ context.Context, monthlyBudget float64) error {
	c.snapshot.MonthlyBudget = monthlyBudget
	return c.persist()
}

// AddGoal appends a goal to the snapshot.
func (c *OptimisticCache) AddGoal(_ context.Context, input entity.GoalInput) error {
	c.snapshot.Goals = append(c.snapshot.Goals, entity.Goal{
		Name:    input.Name,
		Current: input.Current,
		Target:  input.Target,
	})
	return c.persist()
}

// EditGoal replaces the goal at the given index.
func (c *OptimisticCache) EditGoal(_ context.Context, goalKey int, input entity.GoalInput) error {
	if goalKey < 0 || goalKey >= len(c.snapshot.Goals) {
		return types.ErrGoalNotFound
	}
	c.snapshot.Goals[goalKey].Name = input.Name
	c.snapshot.Goals[goalKey].Target = input.Target
	c.snapshot.Goals[goalKey].Current = input.Current
	return c.persist()
}

// DeleteGoal removes the goal at the given index.
func (c *OptimisticCache) DeleteGoal(_ context.Context, goalKey int) error {
	if goalKey < 0 || goalKey >= len(c.snapshot.Goals) {
		return types.ErrGoalNotFound
	}
	c.snapshot.Goals = append(c.snapshot.Goals[:goalKey], c.snapshot.Goals[goalKey+1:]...)
	return c.persist()
}

func (c *OptimisticCache) getFloat(key string) float64 {
	raw, ok := c.store.Get(key)
	if !ok {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func (c *OptimisticCache) persist() error {
	activity, err := json.Marshal(c.snapshot.RecentActivity)
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}
	goals, err := json.Marshal(c.snapshot.Goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}

	pairs := map[string]string{
		repository.KeyCheckingBalance:   strconv.FormatFloat(c.snapshot.CheckingBalance, 'f', 2, 64),
		repository.KeySavingsBalance:    strconv.FormatFloat(c.snapshot.SavingsBalance, 'f', 2, 64),
		repository.KeyInvestmentBalance: strconv.FormatFloat(c.snapshot.InvestmentBalance, 'f', 2, 64),
		repository.KeyMonthlyBudget:     strconv.FormatFloat(c.snapshot.MonthlyBudget, 'f', 2, 64),
		repository.KeyRecentActivity:    string(activity),
		repository.KeyGoals:             string(goals),
	}
	for key, value := range pairs {
		if err := c.store.Set(key, value); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
	}
	return nil
}

var _ repository.SnapshotCache = (*OptimisticCache)(nil)
