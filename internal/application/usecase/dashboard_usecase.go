package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// CacheFactory builds the deployment's snapshot cache for a guarded
// access token. main wires either the authoritative or the optimistic
// strategy; the use case never mixes them.
type CacheFactory func(accessToken string) repository.SnapshotCache

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	guard      *SessionGuard
	apiRepo    repository.APIRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	cacheFor   CacheFactory
	offline    bool
	nowFn      func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	guard *SessionGuard,
	apiRepo repository.APIRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	cacheFor CacheFactory,
	offline bool,
) *DashboardUseCase {
	return &DashboardUseCase{
		guard:      guard,
		apiRepo:    apiRepo,
		exportRepo: exportRepo,
		console:    console,
		cacheFor:   cacheFor,
		offline:    offline,
		nowFn:      time.Now,
	}
}

// positiveAmount reports whether amount is finite and greater than zero.
// strconv.ParseFloat accepts "NaN" and "Inf", and NaN slips past a plain
// <= 0 comparison, so every amount check goes through here.
func positiveAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// nonNegativeAmount is positiveAmount relaxed to allow zero.
func nonNegativeAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

// MonthlySpending derives this month's spending from the activity feed:
// the sum of amounts parsed out of expense items dated in the current
// calendar month. It is never stored.
func MonthlySpending(activity []entity.ActivityItem, now time.Time) float64 {
	var total float64
	for _, item := range activity {
		if item.Type != entity.ActivityTypeExpense {
			continue
		}
		when, err := item.Time()
		if err != nil {
			continue
		}
		if when.Year() == now.Year() && when.Month() == now.Month() {
			total += item.Amount()
		}
	}
	return total
}

// openCache guards the session and returns a refreshed cache. The guard
// check comes first: without a token no fetch is ever attempted.
func (uc *DashboardUseCase) openCache(ctx context.Context) (repository.SnapshotCache, error) {
	token, err := uc.guard.AccessToken()
	if err != nil {
		return nil, err
	}
	cache := uc.cacheFor(token)
	if err := cache.Refresh(ctx); err != nil {
		return nil, err
	}
	return cache, nil
}

// RunDashboard fetches the snapshot and renders the full dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	token, err := uc.guard.AccessToken()
	if err != nil {
		return err
	}

	status := uc.console.Status("Loading your dashboard...")

	username := uc.lookupUsername(ctx, token)
	if username == "" {
		// A 401 on the profile call is the reactive invalid-token signal.
		status.Stop()
		return types.ErrSessionExpired
	}

	status.Update("Fetching account data...")
	cache := uc.cacheFor(token)
	if err := cache.Refresh(ctx); err != nil {
		status.Stop()
		return err
	}
	status.Stop()

	snapshot := cache.Snapshot()
	uc.console.Printf("\nHi! %s, this is your personalized financial dashboard.\n\n", username)
	uc.renderBalances(snapshot)
	uc.renderActivity(snapshot)
	uc.renderBudget(cache, snapshot)
	uc.renderGoals(snapshot)

	if args != nil && args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(snapshot, username, args)
	}

	return nil
}

// lookupUsername resolves the display name. Offline deployments use the
// session-scoped name; otherwise the profile endpoint is asked. Returns
// "" only when the token was rejected.
func (uc *DashboardUseCase) lookupUsername(ctx context.Context, token string) string {
	if name, ok := uc.guard.Username(); ok {
		return name
	}
	if uc.offline {
		return "there"
	}

	profile, err := uc.apiRepo.GetUserProfile(ctx, token)
	if err != nil {
		if errors.Is(err, types.ErrSessionExpired) {
			return ""
		}
		logger.Get().Debugw("profile fetch failed", "error", err)
		return "there"
	}
	_ = uc.guard.SetUsername(profile.Username)
	return profile.Username
}

func (uc *DashboardUseCase) renderBalances(snapshot entity.Snapshot) {
	table := uc.console.CreateTable()
	table.AddColumn("Checking Balance")
	table.AddColumn("Savings Balance")
	table.AddColumn("Investments")
	table.AddRow(
		fmt.Sprintf("₱%.2f", snapshot.CheckingBalance),
		fmt.Sprintf("₱%.2f", snapshot.SavingsBalance),
		fmt.Sprintf("₱%.2f", snapshot.InvestmentBalance),
	)
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderActivity(snapshot entity.Snapshot) {
	uc.console.Println("\nRecent Activity")
	if len(snapshot.RecentActivity) == 0 {
		uc.console.Println("  No recent activity yet.")
	} else {
		for _, item := range snapshot.RecentActivity {
			uc.console.Printf("  %-50s %s\n", item.Detail, formatActivityDate(item))
		}
	}
	uc.console.LogInfo("Tip: Stay on track with your monthly budget!")
}

func (uc *DashboardUseCase) renderBudget(cache repository.SnapshotCache, snapshot entity.Snapshot) {
	now := uc.nowFn()
	uc.console.Printf("\nBudget Summary for %s\n", now.Format("January 2006"))

	panel := NewBudgetPanel(cache)
	if panel.State() == BudgetPanelEditing {
		uc.console.LogInfo("No monthly budget set. Add one with 'finteach budget <amount>'.")
		return
	}

	spent := MonthlySpending(snapshot.RecentActivity, now)
	uc.console.DisplayBudgetBar(spent, snapshot.MonthlyBudget)
}

func (uc *DashboardUseCase) renderGoals(snapshot entity.Snapshot) {
	uc.console.Println("\nFinancial Goals")
	if len(snapshot.Goals) == 0 {
		uc.console.Println("  No goals yet. Start by adding a financial goal!")
		return
	}
	uc.console.DisplayGoalBars(snapshot.Goals)
}

func formatActivityDate(item entity.ActivityItem) string {
	when, err := item.Time()
	if err != nil {
		return item.Date
	}
	return when.Format("Jan 2, 2006 15:04")
}

// RecordExpense validates and records a checking expense. Validation
// happens before any request is issued.
func (uc *DashboardUseCase) RecordExpense(ctx context.Context, amount float64, note string) error {
	if !positiveAmount(amount) {
		return types.ErrInvalidAmount
	}

	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}
	if err := cache.RecordExpense(ctx, amount, note); err != nil {
		return err
	}

	uc.console.LogSuccess("Recorded expense of ₱%.2f.", amount)
	return nil
}

// RecordDeposit validates and records a deposit. A goal selection is
// only honored for savings deposits; selecting none omits the goal from
// the request entirely.
func (uc *DashboardUseCase) RecordDeposit(ctx context.Context, account string, amount float64, goalName string) error {
	if !positiveAmount(amount) {
		return types.ErrInvalidAmount
	}
	if !entity.ValidAccount(account) {
		return fmt.Errorf("unknown account %q (expected checking, savings or investments)", account)
	}

	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}

	var goalKey *int
	if goalName != "" {
		if account != entity.AccountSavings {
			uc.console.LogWarning("Goals only apply to savings deposits; ignoring goal %q.", goalName)
		} else {
			key, _, err := uc.resolveGoal(cache.Snapshot(), goalName)
			if err != nil {
				return err
			}
			goalKey = &key
		}
	}

	if err := cache.RecordDeposit(ctx, account, amount, goalKey); err != nil {
		return err
	}

	uc.console.LogSuccess("Deposited ₱%.2f to %s.", amount, account)
	return nil
}

// SetBudget drives the budget panel: an existing budget goes back to
// Editing first, then the new value is submitted.
func (uc *DashboardUseCase) SetBudget(ctx context.Context, amount float64) error {
	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}

	panel := NewBudgetPanel(cache)
	if panel.State() == BudgetPanelDisplay {
		panel.Edit()
	}
	if err := panel.Submit(ctx, amount); err != nil {
		return err
	}

	uc.console.LogSuccess("Monthly budget set to ₱%.2f.", amount)
	return nil
}

// AddGoal creates a new goal.
func (uc *DashboardUseCase) AddGoal(ctx context.Context, input entity.GoalInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("goal name is required")
	}
	if !positiveAmount(input.Target) {
		return types.ErrInvalidAmount
	}
	if !nonNegativeAmount(input.Current) {
		return types.ErrInvalidAmount
	}

	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}
	if err := cache.AddGoal(ctx, input); err != nil {
		return err
	}

	uc.console.LogSuccess("Added goal %q.", input.Name)
	return nil
}

// EditGoal drives the goal editor: Begin with the stored values, replace
// the draft, Save. Zero-valued input fields keep the stored value
// (negative Current means unchanged).
func (uc *DashboardUseCase) EditGoal(ctx context.Context, goalName string, input entity.GoalInput) error {
	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}

	key, current, err := uc.resolveGoal(cache.Snapshot(), goalName)
	if err != nil {
		return err
	}

	if strings.TrimSpace(input.Name) == "" {
		input.Name = current.Name
	}
	if input.Target == 0 {
		input.Target = current.Target
	}
	if input.Current < 0 {
		input.Current = current.Current
	}
	if !positiveAmount(input.Target) {
		return types.ErrInvalidAmount
	}
	if !nonNegativeAmount(input.Current) {
		return types.ErrInvalidAmount
	}

	editor := NewGoalEditor(cache)
	if err := editor.Begin(key, current); err != nil {
		return err
	}
	editor.SetDraft(input)
	if err := editor.Save(ctx); err != nil {
		return err
	}

	uc.console.LogSuccess("Updated goal %q.", input.Name)
	return nil
}

// DeleteGoal removes a goal by name.
func (uc *DashboardUseCase) DeleteGoal(ctx context.Context, goalName string) error {
	cache, err := uc.openCache(ctx)
	if err != nil {
		return err
	}

	key, current, err := uc.resolveGoal(cache.Snapshot(), goalName)
	if err != nil {
		return err
	}
	if err := cache.DeleteGoal(ctx, key); err != nil {
		return err
	}

	uc.console.LogSuccess("Deleted goal %q.", current.Name)
	return nil
}

// resolveGoal maps a user-supplied goal name (or numeric id/index) onto
// the cache's goal key: the server-assigned ID in the remote deployment,
// the snapshot index in the offline one.
func (uc *DashboardUseCase) resolveGoal(snapshot entity.Snapshot, name string) (int, entity.GoalInput, error) {
	for idx, goal := range snapshot.Goals {
		if strings.EqualFold(goal.Name, name) {
			key := goal.ID
			if uc.offline {
				key = idx
			}
			return key, entity.GoalInput{Name: goal.Name, Target: goal.Target, Current: goal.Current}, nil
		}
	}

	if numeric, err := strconv.Atoi(name); err == nil {
		for idx, goal := range snapshot.Goals {
			key := goal.ID
			if uc.offline {
				key = idx
			}
			if key == numeric {
				return key, entity.GoalInput{Name: goal.Name, Target: goal.Target, Current: goal.Current}, nil
			}
		}
	}

	return 0, entity.GoalInput{}, types.ErrGoalNotFound
}

// exportReports writes the requested snapshot reports, logging each
// outcome the way the dashboard logs everything else.
func (uc *DashboardUseCase) exportReports(snapshot entity.Snapshot, username string, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(snapshot, username, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(snapshot, username, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(snapshot, username, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type %q (expected csv, json or pdf).", reportType)
		}
	}
}
