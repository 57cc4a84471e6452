package usecase

import (
	"testing"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
)

func TestThemeDefaultsToLight(t *testing.T) {
	t.Parallel()

	store := NewThemeStore(newMemStore(), &fakeConsole{})
	if got := store.Current(); got != entity.ThemeLight {
		t.Fatalf("expected light default, got %s", got)
	}
}

func TestThemeUnknownValueFallsBackToLight(t *testing.T) {
	t.Parallel()

	mem := newMemStore()
	mem.Set(repository.KeyTheme, "solarized")

	store := NewThemeStore(mem, &fakeConsole{})
	if got := store.Current(); got != entity.ThemeLight {
		t.Fatalf("expected light for unknown value, got %s", got)
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	t.Parallel()

	mem := newMemStore()
	console := &fakeConsole{}
	store := NewThemeStore(mem, console)
	before := store.Current()

	first, err := store.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if first != entity.ThemeDark {
		t.Fatalf("expected dark after first toggle, got %s", first)
	}
	if raw, _ := mem.Get(repository.KeyTheme); raw != "dark" {
		t.Fatalf("expected persisted value dark, got %q", raw)
	}

	second, err := store.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if second != before {
		t.Fatalf("expected two toggles to restore %s, got %s", before, second)
	}

	if len(console.themes) != 2 {
		t.Fatalf("expected the console to be restyled on every toggle, got %d", len(console.themes))
	}
}
