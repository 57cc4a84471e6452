package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, ok := store.Get("theme"); ok {
		t.Fatal("expected empty store at first")
	}

	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, ok := store.Get("theme"); !ok || got != "dark" {
		t.Fatalf("expected dark, got %q (ok=%v)", got, ok)
	}

	if err := store.Remove("theme"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := store.Get("theme"); ok {
		t.Fatal("expected key to be gone after remove")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first, err := New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	first.Set("accessToken", "abc123")
	first.Set("checkingBalance", "500.00")

	second, err := New(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if got, ok := second.Get("accessToken"); !ok || got != "abc123" {
		t.Fatalf("expected persisted token, got %q (ok=%v)", got, ok)
	}
	if got, _ := second.Get("checkingBalance"); got != "500.00" {
		t.Fatalf("expected persisted balance, got %q", got)
	}
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := New(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
}

func TestMemoryStoreIsIsolated(t *testing.T) {
	t.Parallel()

	a := NewMemory()
	b := NewMemory()

	a.Set("username", "alex")
	if _, ok := b.Get("username"); ok {
		t.Fatal("expected stores to be independent")
	}

	if err := a.Remove("missing"); err != nil {
		t.Fatalf("remove missing key: %v", err)
	}
}
