package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(st styles, shown, total int, filterLabel string, width int, mode mode, refreshing bool) string {
	left := fmt.Sprintf(" %d/%d characters", shown, total)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if refreshing {
		left += " (refreshing...)"
	}

	var right string
	switch mode {
	case modeSearch:
		right = " esc clear  enter done "
	case modeFilter:
		right = " tab field  ←/→ species  esc done "
	default:
		right = " / search  f filter  t theme  r refresh  ? help  q quit "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return st.statusBar.Width(width).Render(bar)
}
