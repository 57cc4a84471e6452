package usecase

import (
	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// ThemeStore persists the light/dark preference and applies it to the
// console. Applying the same preference twice is a no-op in effect.
type ThemeStore struct {
	store   repository.LocalStoreRepository
	console types.ConsoleInterface
}

// NewThemeStore creates the theme store.
func NewThemeStore(store repository.LocalStoreRepository, console types.ConsoleInterface) *ThemeStore {
	return &ThemeStore{store: store, console: console}
}

// Current returns the persisted preference, defaulting to light.
func (s *ThemeStore) Current() entity.Theme {
	raw, _ := s.store.Get(repository.KeyTheme)
	return entity.ParseTheme(raw)
}

// Apply pushes the persisted preference onto the console. Called once on
// startup.
func (s *ThemeStore) Apply() {
	s.console.ApplyTheme(s.Current())
}

// Toggle flips the preference, applies it, and persists the new value.
func (s *ThemeStore) Toggle() (entity.Theme, error) {
	next := s.Current().Toggle()
	s.console.ApplyTheme(next)
	if err := s.store.Set(repository.KeyTheme, string(next)); err != nil {
		return next, err
	}
	return next, nil
}
