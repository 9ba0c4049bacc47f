package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/charadex/charadex/internal/store"
)

// themeKey is the persisted preference key, independent of the character
// cache key.
const themeKey = "theme-preference"

// Theme is a named palette. Exactly two exist; anything else persisted
// under themeKey is ignored.
type Theme struct {
	Name string

	Primary   string
	Secondary string
	Dim       string
	Accent    string
	Green     string
	Border    string
	ActiveBdr string
	TabBg     string
	StatusBg  string
	StatusFg  string
	Danger    string
}

func Dark() Theme {
	return Theme{
		Name:      "dark",
		Primary:   "#7571F9",
		Secondary: "#ABABAB",
		Dim:       "#626262",
		Accent:    "#F25D94",
		Green:     "#25D366",
		Border:    "#383838",
		ActiveBdr: "#7571F9",
		TabBg:     "#2A2A3E",
		StatusBg:  "#16213E",
		StatusFg:  "#ABABAB",
		Danger:    "#FF5F5F",
	}
}

func Light() Theme {
	return Theme{
		Name:      "light",
		Primary:   "#5A56E0",
		Secondary: "#3D3D3D",
		Dim:       "#9B9B9B",
		Accent:    "#F25D94",
		Green:     "#04B575",
		Border:    "#DBDBDB",
		ActiveBdr: "#5A56E0",
		TabBg:     "#EEEEEE",
		StatusBg:  "#E8E8E8",
		StatusFg:  "#3D3D3D",
		Danger:    "#D70000",
	}
}

func (t Theme) Opposite() Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}

// Preferred returns the persisted theme when it is one of the two valid
// names; otherwise the theme implied by the terminal background. There is
// no error case.
func Preferred(st *store.Store) Theme {
	if st != nil {
		if payload, ok := st.Read(themeKey, 0); ok {
			switch string(payload) {
			case "dark":
				return Dark()
			case "light":
				return Light()
			}
		}
	}
	if lipgloss.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

func persistTheme(st *store.Store, t Theme) {
	if st != nil {
		// Losing the preference only costs the next launch its choice.
		_ = st.Write(themeKey, []byte(t.Name))
	}
}
