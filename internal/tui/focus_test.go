package tui

import "testing"

func TestFocusRingWrapsForward(t *testing.T) {
	r := newFocusRing("close", "image", "link")

	if r.Current() != "close" {
		t.Errorf("expected initial focus on first target, got %q", r.Current())
	}
	r.Next()
	r.Next()
	if r.Current() != "link" {
		t.Errorf("expected focus on last target, got %q", r.Current())
	}
	// Forward from the last target wraps to the first.
	if got := r.Next(); got != "close" {
		t.Errorf("expected wrap to first target, got %q", got)
	}
}

func TestFocusRingWrapsBackward(t *testing.T) {
	r := newFocusRing("close", "image")

	// Backward from the first target wraps to the last.
	if got := r.Prev(); got != "image" {
		t.Errorf("expected wrap to last target, got %q", got)
	}
	if got := r.Prev(); got != "close" {
		t.Errorf("expected focus back on first target, got %q", got)
	}
}

func TestFocusRingSingleTarget(t *testing.T) {
	r := newFocusRing("close")

	if got := r.Next(); got != "close" {
		t.Errorf("expected single target to keep focus, got %q", got)
	}
	if got := r.Prev(); got != "close" {
		t.Errorf("expected single target to keep focus, got %q", got)
	}
}

func TestFocusRingFocus(t *testing.T) {
	r := newFocusRing("close", "image")

	if !r.Focus("image") {
		t.Fatal("expected Focus to find a ring member")
	}
	if r.Current() != "image" {
		t.Errorf("expected focus on image, got %q", r.Current())
	}
	if r.Focus("outside") {
		t.Error("expected Focus to reject a target outside the ring")
	}
	if r.Current() != "image" {
		t.Errorf("expected rejected Focus to leave focus unchanged, got %q", r.Current())
	}
}

func TestFocusRingEmpty(t *testing.T) {
	var r focusRing
	if r.Current() != "" || r.Next() != "" || r.Prev() != "" {
		t.Error("expected empty ring to stay empty")
	}
}
