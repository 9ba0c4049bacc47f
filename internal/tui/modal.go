package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/charadex/charadex/internal/api"
)

type modalState int

const (
	modalOpening modalState = iota
	modalOpen
	modalClosing
)

// modalTransition paces the opening and closing states; input is ignored
// until the entry transition completes.
const modalTransition = 120 * time.Millisecond

const (
	focusClose = "close"
	focusImage = "image"
)

// detailModal shows one character's full record. While it exists it owns
// keyboard focus: tab and shift+tab cycle its focus ring and wrap at both
// ends. On close the list cursor is restored to returnCursor and the modal
// is dropped entirely.
type detailModal struct {
	state        modalState
	character    api.Character
	ring         focusRing
	returnCursor int
}

func newDetailModal(c api.Character, returnCursor int) *detailModal {
	targets := []string{focusClose}
	if c.Image != "" {
		targets = append(targets, focusImage)
	}
	return &detailModal{
		state:        modalOpening,
		character:    c,
		ring:         newFocusRing(targets...),
		returnCursor: returnCursor,
	}
}

func modalTick() tea.Cmd {
	return tea.Tick(modalTransition, func(time.Time) tea.Msg { return modalTickMsg{} })
}

// handleModalKey routes keys while the modal is up. Closing can start from
// esc (the global cancel), q (the overlay), or activating the close
// affordance.
func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.modal
	if m.state != modalOpen {
		return a, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.state = modalClosing
		return a, modalTick()
	case "tab", "right", "l":
		m.ring.Next()
		return a, nil
	case "shift+tab", "left", "h":
		m.ring.Prev()
		return a, nil
	case "o":
		if m.character.Image != "" {
			return a, openImageCmd(m.character.Image)
		}
		return a, nil
	case "enter", " ":
		switch m.ring.Current() {
		case focusClose:
			m.state = modalClosing
			return a, modalTick()
		case focusImage:
			return a, openImageCmd(m.character.Image)
		}
	}
	return a, nil
}

// advanceModal moves the transition state machine one step.
func (a *App) advanceModal() {
	m := a.modal
	if m == nil {
		return
	}
	switch m.state {
	case modalOpening:
		m.state = modalOpen
	case modalClosing:
		// Teardown: focus returns to the control that had it before
		// opening, and no modal state survives.
		a.cursor = m.returnCursor
		a.modal = nil
	}
}

func renderModal(m *detailModal, st styles, width, height int) string {
	c := m.character

	cardWidth := min(width-8, 64)
	if cardWidth < 24 {
		cardWidth = 24
	}
	inner := cardWidth - 6

	title := st.modalTitle.Render(truncateStr(c.Name, inner))

	label := func(s string) string { return st.modalLabel.Render(fmt.Sprintf("%-9s", s)) }
	value := func(s string) string { return st.modalValue.Render(truncateStr(s, inner-10)) }

	lines := []string{
		title,
		label("ID") + value(fmt.Sprintf("%d", c.ID)),
		label("Species") + value(c.Species),
		label("Created") + value(c.Created.Format("Jan 2, 2006 15:04 MST")),
	}
	if c.Image != "" {
		lines = append(lines, label("Image")+value(c.Image))
	}

	buttons := renderModalButtons(m, st)
	lines = append(lines, "", buttons)

	card := st.modalCard.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderModalButtons(m *detailModal, st styles) string {
	style := func(target, label string) string {
		if m.ring.Current() == target {
			return st.modalButtonFocus.Render(label)
		}
		return st.modalButton.Render(label)
	}

	row := style(focusClose, "Close")
	if m.character.Image != "" {
		row += "  " + style(focusImage, "Open image")
	}
	return row
}
