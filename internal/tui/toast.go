package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastError
)

const (
	// toastEnterDelay keeps a new toast invisible for one beat so its
	// appearance reads as an entry transition rather than a flicker.
	toastEnterDelay = 150 * time.Millisecond
	toastDuration   = 5 * time.Second
)

type toast struct {
	id      int
	message string
	level   toastLevel
	visible bool
}

// notify replaces the current toast. It becomes visible after the entry
// delay and removes itself after toastDuration regardless of later events;
// expiry messages carry the toast id so a superseded toast cannot dismiss
// its successor.
func (a *App) notify(message string, level toastLevel) tea.Cmd {
	a.toastSeq++
	id := a.toastSeq
	a.toast = &toast{id: id, message: message, level: level}
	return tea.Batch(
		tea.Tick(toastEnterDelay, func(time.Time) tea.Msg { return toastShowMsg{id: id} }),
		tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpireMsg{id: id} }),
	)
}

// dismissToast removes the current toast immediately.
func (a *App) dismissToast() {
	a.toast = nil
}

func renderToast(t *toast, st styles, width int) string {
	if t == nil || !t.visible {
		return ""
	}
	style := st.toastInfo
	if t.level == toastError {
		style = st.toastError
	}
	msg := truncateStr(t.message, max(width-4, 10))
	return style.Render(msg)
}
