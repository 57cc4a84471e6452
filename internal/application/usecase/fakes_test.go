package usecase

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// memStore is an in-memory LocalStoreRepository for tests.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Get(key string) (string, bool) {
	value, ok := s.data[key]
	return value, ok
}

func (s *memStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Remove(key string) error {
	delete(s.data, key)
	return nil
}

// fakeConsole records log lines and applied themes without printing.
type fakeConsole struct {
	infos     []string
	warnings  []string
	errors    []string
	successes []string
	themes    []entity.Theme
}

func (c *fakeConsole) Print(a ...interface{})                  {}
func (c *fakeConsole) Printf(format string, a ...interface{})  {}
func (c *fakeConsole) Println(a ...interface{})                {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) { c.infos = append(c.infos, format) }
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, format)
}
func (c *fakeConsole) LogError(format string, a ...interface{}) { c.errors = append(c.errors, format) }
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, format)
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return &fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface        { return &fakeTable{} }
func (c *fakeConsole) DisplayBudgetBar(spent, budget float64)   {}
func (c *fakeConsole) DisplayGoalBars(goals []entity.Goal)      {}
func (c *fakeConsole) ApplyTheme(theme entity.Theme)            { c.themes = append(c.themes, theme) }

type fakeStatus struct{}

func (s *fakeStatus) Update(message string) {}
func (s *fakeStatus) Stop()                 {}

type fakeTable struct{}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   {}
func (t *fakeTable) Render() string                                { return "" }

// fakeAPI counts calls and lets each operation be stubbed per test.
type fakeAPI struct {
	calls int

	loginFn    func(username, password string) (entity.Session, error)
	refreshFn  func(refreshToken string) (string, error)
	profileFn  func() (entity.UserProfile, error)
	snapshotFn func() (entity.Snapshot, error)
	chatFn     func(message string) (string, error)
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (entity.Session, error) {
	f.calls++
	if f.loginFn != nil {
		return f.loginFn(username, password)
	}
	return entity.Session{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (f *fakeAPI) RefreshToken(_ context.Context, refreshToken string) (string, error) {
	f.calls++
	if f.refreshFn != nil {
		return f.refreshFn(refreshToken)
	}
	return "access2", nil
}

func (f *fakeAPI) Register(_ context.Context, username, email, password string) error {
	f.calls++
	return nil
}

func (f *fakeAPI) GetUserProfile(_ context.Context, _ string) (entity.UserProfile, error) {
	f.calls++
	if f.profileFn != nil {
		return f.profileFn()
	}
	return entity.UserProfile{Username: "alex"}, nil
}

func (f *fakeAPI) GetSnapshot(_ context.Context, _ string) (entity.Snapshot, error) {
	f.calls++
	if f.snapshotFn != nil {
		return f.snapshotFn()
	}
	return entity.Snapshot{}, nil
}

func (f *fakeAPI) SubmitTransaction(_ context.Context, _ string, _ entity.TransactionRequest) error {
	f.calls++
	return nil
}

func (f *fakeAPI) UpdateBudget(_ context.Context, _ string, _ float64) error {
	f.calls++
	return nil
}

func (f *fakeAPI) CreateGoal(_ context.Context, _ string, _ entity.GoalInput) error {
	f.calls++
	return nil
}

func (f *fakeAPI) UpdateGoal(_ context.Context, _ string, _ int, _ entity.GoalInput) error {
	f.calls++
	return nil
}

func (f *fakeAPI) DeleteGoal(_ context.Context, _ string, _ int) error {
	f.calls++
	return nil
}

func (f *fakeAPI) SendChatMessage(_ context.Context, _ string, message string) (string, error) {
	f.calls++
	if f.chatFn != nil {
		return f.chatFn(message)
	}
	return "reply", nil
}

type depositCall struct {
	account string
	amount  float64
	goalKey *int
}

// fakeCache records every mutation so tests can assert on what the use
// cases asked for.
type fakeCache struct {
	snapshot  entity.Snapshot
	err       error
	refreshes int
	expenses  []float64
	deposits  []depositCall
	budgets   []float64
	added     []entity.GoalInput
	edits     map[int]entity.GoalInput
	deleted   []int
}

func newFakeCache(snapshot entity.Snapshot) *fakeCache {
	return &fakeCache{snapshot: snapshot, edits: map[int]entity.GoalInput{}}
}

func (c *fakeCache) Refresh(_ context.Context) error {
	c.refreshes++
	return c.err
}

func (c *fakeCache) Snapshot() entity.Snapshot {
	return c.snapshot
}

func (c *fakeCache) RecordExpense(_ context.Context, amount float64, _ string) error {
	c.expenses = append(c.expenses, amount)
	return c.err
}

func (c *fakeCache) RecordDeposit(_ context.Context, account string, amount float64, goalKey *int) error {
	c.deposits = append(c.deposits, depositCall{account: account, amount: amount, goalKey: goalKey})
	return c.err
}

func (c *fakeCache) UpdateBudget(_ context.Context, monthlyBudget float64) error {
	if c.err != nil {
		return c.err
	}
	c.budgets = append(c.budgets, monthlyBudget)
	c.snapshot.MonthlyBudget = monthlyBudget
	return nil
}

func (c *fakeCache) AddGoal(_ context.Context, input entity.GoalInput) error {
	c.added = append(c.added, input)
	return c.err
}

func (c *fakeCache) EditGoal(_ context.Context, goalKey int, input entity.GoalInput) error {
	if c.err != nil {
		return c.err
	}
	c.edits[goalKey] = input
	return nil
}

func (c *fakeCache) DeleteGoal(_ context.Context, goalKey int) error {
	c.deleted = append(c.deleted, goalKey)
	return c.err
}
