package tui

import (
	"strings"
	"time"

	"github.com/charadex/charadex/internal/api"
)

func formatCreated(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func renderListItem(c api.Character, selected bool, width int, st styles) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = st.itemSelected.Render("> " + truncateStr(c.Name, width-4))
	} else {
		title = st.itemTitle.Render("  " + truncateStr(c.Name, width-4))
	}

	species := c.Species
	if species == "" {
		species = "Unknown"
	}
	meta := "  " + st.itemSpecies.Render(species) + " " + st.itemTime.Render("· "+formatCreated(c.Created))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList shows the filtered view, one two-line row per character, with
// a scroll window following the cursor. An empty view gets a single
// empty-state line.
func renderList(chars []api.Character, cursor int, height int, width int, st styles) string {
	if len(chars) == 0 {
		return centerText(st.emptyText.Render("No characters found"), width, height)
	}

	// Each item is 2 lines + 1 blank line
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(chars) {
		end = len(chars)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(chars[i], i == cursor, width, st))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", max(height/3, 0)) + strings.Repeat(" ", pad) + s
}
