package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// filterField is which control the filter form is editing.
type filterField int

const (
	fieldSpecies filterField = iota
	fieldFrom
	fieldTo
)

// filterBar is the species selector: the sorted distinct species of the
// canonical set behind an "All" option. Selection is exclusive.
type filterBar struct {
	species    []string
	selected   string // "" selects all
	cursor     int    // 0 is All, i+1 is species[i]
	filterMode bool
}

func newFilterBar() filterBar {
	return filterBar{}
}

// setSpecies replaces the options after a fetch, keeping the selection if
// it still exists.
func (f *filterBar) setSpecies(species []string) {
	f.species = species
	if f.selected == "" {
		return
	}
	for _, s := range species {
		if s == f.selected {
			return
		}
	}
	f.selected = ""
	f.cursor = 0
}

func (f *filterBar) moveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *filterBar) moveRight() {
	if f.cursor < len(f.species) {
		f.cursor++
	}
}

// selectCurrent makes the option under the cursor the active species.
func (f *filterBar) selectCurrent() {
	if f.cursor == 0 {
		f.selected = ""
		return
	}
	f.selected = f.species[f.cursor-1]
}

func (f *filterBar) activeLabel() string {
	if f.selected == "" {
		return "All"
	}
	return f.selected
}

func (f *filterBar) render(width int, st styles, focused bool) string {
	sep := st.tabSeparator.Render(" · ")

	labels := append([]string{"All"}, f.species...)
	var parts []string
	for i, label := range labels {
		style := st.tabInactive
		active := (i == 0 && f.selected == "") || (i > 0 && f.species[i-1] == f.selected)
		if active {
			style = st.tabActive
		}
		if f.filterMode && focused && i == f.cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return st.filterBar.Width(width).Render(row)
}

func nextField(f filterField) filterField {
	switch f {
	case fieldSpecies:
		return fieldFrom
	case fieldFrom:
		return fieldTo
	default:
		return fieldSpecies
	}
}

// renderDateRow shows the two date bounds; the focused field is bracketed.
func (a *App) renderDateRow(width int) string {
	st := a.styles
	from := a.fromInput.View()
	to := a.toInput.View()

	fromLabel := "from "
	toLabel := "  to "
	if a.mode == modeFilter {
		switch a.filterField {
		case fieldFrom:
			fromLabel = "[from] "
		case fieldTo:
			toLabel = " [to] "
		}
	}

	row := st.itemTime.Render(fromLabel) + from + st.itemTime.Render(toLabel) + to
	return st.filterBar.Width(width).Render(strings.TrimRight(row, " "))
}
