package usecase

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// BudgetPanelState is the budget panel's display mode.
type BudgetPanelState int

const (
	BudgetPanelEditing BudgetPanelState = iota
	BudgetPanelDisplay
)

// BudgetPanel is the budget summary's two-state machine. It starts in
// Editing exactly when no budget has been set yet; submitting a value
// moves to Display, and an explicit Edit action moves back.
type BudgetPanel struct {
	cache repository.SnapshotCache
	state BudgetPanelState
}

// NewBudgetPanel derives the initial state from the cached snapshot.
func NewBudgetPanel(cache repository.SnapshotCache) *BudgetPanel {
	state := BudgetPanelDisplay
	if cache.Snapshot().MonthlyBudget == 0 {
		state = BudgetPanelEditing
	}
	return &BudgetPanel{cache: cache, state: state}
}

// State returns the current panel state.
func (p *BudgetPanel) State() BudgetPanelState {
	return p.state
}

// Edit switches the panel back to Editing.
func (p *BudgetPanel) Edit() {
	p.state = BudgetPanelEditing
}

// Submit commits a new monthly budget and moves to Display. Non-positive
// and non-finite amounts are rejected before any request is issued.
func (p *BudgetPanel) Submit(ctx context.Context, amount float64) error {
	if !positiveAmount(amount) {
		return types.ErrInvalidAmount
	}
	if err := p.cache.UpdateBudget(ctx, amount); err != nil {
		return err
	}
	p.state = BudgetPanelDisplay
	return nil
}
