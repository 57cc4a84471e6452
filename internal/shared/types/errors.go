package types

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not logged in. Run 'finteach login' first")
	ErrSessionExpired     = errors.New("session expired or token invalid. Please log in again")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrGoalNotFound       = errors.New("no goal with that name or id")
	ErrGoalEditInProgress = errors.New("another goal is already being edited")
)
