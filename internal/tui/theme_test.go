package tui

import (
	"path/filepath"
	"testing"

	"github.com/charadex/charadex/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferredUsesPersistedValue(t *testing.T) {
	s := testStore(t)

	if err := s.Write(themeKey, []byte("light")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Preferred(s); got.Name != "light" {
		t.Errorf("expected persisted light theme, got %q", got.Name)
	}

	if err := s.Write(themeKey, []byte("dark")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Preferred(s); got.Name != "dark" {
		t.Errorf("expected persisted dark theme, got %q", got.Name)
	}
}

func TestPreferredIgnoresInvalidValue(t *testing.T) {
	s := testStore(t)
	if err := s.Write(themeKey, []byte("solarized")); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Falls back to the ambient default; either way it is a valid theme.
	got := Preferred(s)
	if got.Name != "light" && got.Name != "dark" {
		t.Errorf("expected a valid theme for an invalid persisted value, got %q", got.Name)
	}
}

func TestPreferredWithoutStore(t *testing.T) {
	got := Preferred(nil)
	if got.Name != "light" && got.Name != "dark" {
		t.Errorf("expected a valid theme without a store, got %q", got.Name)
	}
}

func TestOpposite(t *testing.T) {
	if Dark().Opposite().Name != "light" {
		t.Error("expected opposite of dark to be light")
	}
	if Light().Opposite().Name != "dark" {
		t.Error("expected opposite of light to be dark")
	}
}

func TestToggleThemePersists(t *testing.T) {
	s := testStore(t)
	if err := s.Write(themeKey, []byte("dark")); err != nil {
		t.Fatalf("write: %v", err)
	}

	a := NewApp(RunOpts{Store: s})
	a.toggleTheme()

	if a.theme.Name != "light" {
		t.Errorf("expected toggle to apply light, got %q", a.theme.Name)
	}
	payload, ok := s.Read(themeKey, 0)
	if !ok || string(payload) != "light" {
		t.Errorf("expected toggle to persist light, got %q ok=%v", payload, ok)
	}

	if got := Preferred(s); got.Name != "light" {
		t.Errorf("expected next launch to see light, got %q", got.Name)
	}
}
