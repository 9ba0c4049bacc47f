package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charadex/charadex/internal/api"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestFormatCreated(t *testing.T) {
	created := time.Date(2017, 11, 4, 18, 48, 46, 0, time.UTC)
	if got := formatCreated(created); got != "Nov 4, 2017" {
		t.Errorf("formatCreated = %q, want %q", got, "Nov 4, 2017")
	}
}

func TestRenderListEmptyState(t *testing.T) {
	st := Dark().Styles()
	out := renderList(nil, 0, 10, 40, st)
	if !strings.Contains(out, "No characters found") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderListShowsRows(t *testing.T) {
	st := Dark().Styles()
	chars := []api.Character{
		{ID: 1, Name: "Rick Sanchez", Species: "Human", Created: time.Date(2017, 11, 4, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Morty Smith", Species: "Human", Created: time.Date(2017, 11, 4, 0, 0, 0, 0, time.UTC)},
	}
	out := renderList(chars, 1, 12, 40, st)
	if !strings.Contains(out, "Rick Sanchez") || !strings.Contains(out, "Morty Smith") {
		t.Errorf("expected both rows rendered, got %q", out)
	}
	if !strings.Contains(out, "> Morty Smith") {
		t.Errorf("expected cursor marker on selected row, got %q", out)
	}
	if !strings.Contains(out, "Nov 4, 2017") {
		t.Errorf("expected formatted creation date, got %q", out)
	}
}

func TestRenderListUnknownSpecies(t *testing.T) {
	st := Dark().Styles()
	chars := []api.Character{{ID: 1, Name: "Glootie", Created: time.Now()}}
	out := renderList(chars, 0, 12, 40, st)
	if !strings.Contains(out, "Unknown") {
		t.Errorf("expected placeholder for empty species, got %q", out)
	}
}
