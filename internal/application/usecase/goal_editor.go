package usecase

import (
	"context"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// GoalEditor is the per-goal edit state machine. At most one goal is in
// Editing at a time; Save commits the draft through the cache (which
// refreshes), Cancel discards it without touching the cache.
type GoalEditor struct {
	cache   repository.SnapshotCache
	editing *int
	draft   entity.GoalInput
}

// NewGoalEditor creates an editor with no goal in edit mode.
func NewGoalEditor(cache repository.SnapshotCache) *GoalEditor {
	return &GoalEditor{cache: cache}
}

// Editing returns the key of the goal currently in edit mode, if any.
func (e *GoalEditor) Editing() (int, bool) {
	if e.editing == nil {
		return 0, false
	}
	return *e.editing, true
}

// Begin puts the given goal into edit mode, seeding the draft with its
// stored values. Fails when another goal is already being edited.
func (e *GoalEditor) Begin(goalKey int, current entity.GoalInput) error {
	if e.editing != nil && *e.editing != goalKey {
		return types.ErrGoalEditInProgress
	}
	key := goalKey
	e.editing = &key
	e.draft = current
	return nil
}

// SetDraft replaces the in-progress draft.
func (e *GoalEditor) SetDraft(input entity.GoalInput) {
	e.draft = input
}

// Draft returns the in-progress draft.
func (e *GoalEditor) Draft() entity.GoalInput {
	return e.draft
}

// Save commits the draft and exits edit mode. The cache refreshes as
// part of the commit.
func (e *GoalEditor) Save(ctx context.Context) error {
	if e.editing == nil {
		return types.ErrGoalNotFound
	}
	if err := e.cache.EditGoal(ctx, *e.editing, e.draft); err != nil {
		return err
	}
	e.editing = nil
	return nil
}

// Cancel discards the draft and exits edit mode without any cache call.
func (e *GoalEditor) Cancel() {
	e.editing = nil
	e.draft = entity.GoalInput{}
}
