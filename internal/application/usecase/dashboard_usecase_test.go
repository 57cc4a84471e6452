package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

func TestMonthlySpendingWorkedExample(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	activity := []entity.ActivityItem{
		{Type: entity.ActivityTypeExpense, Detail: "Spent ₱10.25 from Checking", Date: "2026-08-10T09:00:00Z"},
		{Type: entity.ActivityTypeExpense, Detail: "Spent ₱15.25 from Checking (groceries)", Date: "2026-08-22T18:30:00Z"},
		{Type: entity.ActivityTypeDeposit, Detail: "Deposited ₱50.00 to Savings", Date: "2026-08-23T10:00:00Z"},
		{Type: entity.ActivityTypeExpense, Detail: "Spent ₱99.00 from Checking", Date: "2026-07-31T23:00:00Z"},
	}

	if got := MonthlySpending(activity, now); got != 25.50 {
		t.Fatalf("MonthlySpending = %v, want 25.50", got)
	}
}

func TestMonthlySpendingParsesThousands(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	activity := []entity.ActivityItem{
		{Type: entity.ActivityTypeExpense, Detail: "Spent ₱1,250.00 from Checking", Date: "2026-08-01T00:00:00Z"},
	}

	if got := MonthlySpending(activity, now); got != 1250 {
		t.Fatalf("MonthlySpending = %v, want 1250", got)
	}
}

func TestMonthlySpendingSkipsUnparsableDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	activity := []entity.ActivityItem{
		{Type: entity.ActivityTypeExpense, Detail: "Spent ₱10.00 from Checking", Date: "not a date"},
	}

	if got := MonthlySpending(activity, now); got != 0 {
		t.Fatalf("MonthlySpending = %v, want 0", got)
	}
}

type dashboardFixture struct {
	uc            *DashboardUseCase
	api           *fakeAPI
	console       *fakeConsole
	cache         *fakeCache
	cacheRequests int
}

func newDashboardFixture(t *testing.T, snapshot entity.Snapshot, loggedIn, offline bool) *dashboardFixture {
	t.Helper()

	store := newMemStore()
	if loggedIn {
		store.Set(repository.KeyAccessToken, "token")
		store.Set(repository.KeyRefreshToken, "refresh")
	}
	guard := NewSessionGuard(store, newMemStore())

	fx := &dashboardFixture{
		api:     &fakeAPI{},
		console: &fakeConsole{},
		cache:   newFakeCache(snapshot),
	}
	cacheFor := func(accessToken string) repository.SnapshotCache {
		fx.cacheRequests++
		return fx.cache
	}
	fx.uc = NewDashboardUseCase(guard, fx.api, nil, fx.console, cacheFor, offline)
	return fx
}

func TestRunDashboardRequiresLogin(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, false, false)

	err := fx.uc.RunDashboard(context.Background(), &types.CLIArgs{})
	if !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if fx.api.calls != 0 {
		t.Fatalf("expected no backend call without a token, got %d", fx.api.calls)
	}
	if fx.cacheRequests != 0 {
		t.Fatal("expected no cache to be opened without a token")
	}
}

func TestRunDashboardSurfacesExpiredSession(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, true, false)
	fx.api.profileFn = func() (entity.UserProfile, error) {
		return entity.UserProfile{}, types.ErrSessionExpired
	}

	err := fx.uc.RunDashboard(context.Background(), &types.CLIArgs{})
	if !errors.Is(err, types.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestRecordExpenseValidatesBeforeAnyRequest(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, true, false)

	for _, amount := range []float64{0, -25, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := fx.uc.RecordExpense(context.Background(), amount, ""); !errors.Is(err, types.ErrInvalidAmount) {
			t.Fatalf("RecordExpense(%v): expected ErrInvalidAmount, got %v", amount, err)
		}
		if err := fx.uc.RecordDeposit(context.Background(), "checking", amount, ""); !errors.Is(err, types.ErrInvalidAmount) {
			t.Fatalf("RecordDeposit(%v): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if fx.cacheRequests != 0 {
		t.Fatal("expected no cache to be opened for an invalid amount")
	}
}

func TestRecordDepositResolvesGoalByServerID(t *testing.T) {
	t.Parallel()

	snapshot := entity.Snapshot{Goals: []entity.Goal{
		{ID: 7, Name: "Car", Current: 200, Target: 1000},
		{ID: 9, Name: "Trip", Current: 50, Target: 500},
	}}
	fx := newDashboardFixture(t, snapshot, true, false)

	if err := fx.uc.RecordDeposit(context.Background(), entity.AccountSavings, 100, "trip"); err != nil {
		t.Fatalf("record deposit: %v", err)
	}

	if len(fx.cache.deposits) != 1 {
		t.Fatalf("expected one deposit, got %d", len(fx.cache.deposits))
	}
	got := fx.cache.deposits[0]
	if got.goalKey == nil || *got.goalKey != 9 {
		t.Fatalf("expected goal key 9, got %v", got.goalKey)
	}
}

func TestRecordDepositResolvesGoalByIndexOffline(t *testing.T) {
	t.Parallel()

	snapshot := entity.Snapshot{Goals: []entity.Goal{
		{ID: 7, Name: "Car", Current: 200, Target: 1000},
		{ID: 9, Name: "Trip", Current: 50, Target: 500},
	}}
	fx := newDashboardFixture(t, snapshot, true, true)

	if err := fx.uc.RecordDeposit(context.Background(), entity.AccountSavings, 100, "trip"); err != nil {
		t.Fatalf("record deposit: %v", err)
	}

	got := fx.cache.deposits[0]
	if got.goalKey == nil || *got.goalKey != 1 {
		t.Fatalf("expected goal index 1 in offline mode, got %v", got.goalKey)
	}
}

func TestRecordDepositIgnoresGoalOutsideSavings(t *testing.T) {
	t.Parallel()

	snapshot := entity.Snapshot{Goals: []entity.Goal{{ID: 7, Name: "Car"}}}
	fx := newDashboardFixture(t, snapshot, true, false)

	if err := fx.uc.RecordDeposit(context.Background(), entity.AccountChecking, 100, "car"); err != nil {
		t.Fatalf("record deposit: %v", err)
	}

	if fx.cache.deposits[0].goalKey != nil {
		t.Fatal("expected no goal key for a checking deposit")
	}
	if len(fx.console.warnings) == 0 {
		t.Fatal("expected a warning about the ignored goal")
	}
}

func TestRecordDepositRejectsUnknownAccount(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, true, false)

	if err := fx.uc.RecordDeposit(context.Background(), "crypto", 100, ""); err == nil {
		t.Fatal("expected an error for an unknown account")
	}
	if len(fx.cache.deposits) != 0 {
		t.Fatal("expected no deposit for an unknown account")
	}
}

func TestSetBudgetFlowsThroughPanel(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{MonthlyBudget: 500}, true, false)

	if err := fx.uc.SetBudget(context.Background(), 750); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	if len(fx.cache.budgets) != 1 || fx.cache.budgets[0] != 750 {
		t.Fatalf("expected one budget update of 750, got %v", fx.cache.budgets)
	}
}

func TestEditGoalKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	snapshot := entity.Snapshot{Goals: []entity.Goal{{ID: 7, Name: "Car", Current: 200, Target: 1000}}}
	fx := newDashboardFixture(t, snapshot, true, false)

	input := entity.GoalInput{Name: "", Target: 0, Current: -1}
	if err := fx.uc.EditGoal(context.Background(), "car", input); err != nil {
		t.Fatalf("edit goal: %v", err)
	}

	committed, ok := fx.cache.edits[7]
	if !ok {
		t.Fatal("expected a commit for goal 7")
	}
	want := entity.GoalInput{Name: "Car", Target: 1000, Current: 200}
	if committed != want {
		t.Fatalf("unexpected committed goal\nwant: %+v\ngot:  %+v", want, committed)
	}
}

func TestDeleteGoalUnknownName(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, true, false)

	if err := fx.uc.DeleteGoal(context.Background(), "yacht"); !errors.Is(err, types.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestAddGoalValidation(t *testing.T) {
	t.Parallel()

	fx := newDashboardFixture(t, entity.Snapshot{}, true, false)

	if err := fx.uc.AddGoal(context.Background(), entity.GoalInput{Name: " ", Target: 100}); err == nil {
		t.Fatal("expected an error for a blank goal name")
	}
	if err := fx.uc.AddGoal(context.Background(), entity.GoalInput{Name: "Car", Target: 0}); !errors.Is(err, types.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero target, got %v", err)
	}
	if err := fx.uc.AddGoal(context.Background(), entity.GoalInput{Name: "Car", Target: math.NaN()}); !errors.Is(err, types.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for NaN target, got %v", err)
	}
	if err := fx.uc.AddGoal(context.Background(), entity.GoalInput{Name: "Car", Target: 100, Current: math.Inf(1)}); !errors.Is(err, types.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for infinite current, got %v", err)
	}
	if len(fx.cache.added) != 0 {
		t.Fatalf("expected no goals added, got %v", fx.cache.added)
	}
}
