package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header     lipgloss.Style
	headerDate lipgloss.Style

	listPane       lipgloss.Style
	listPaneActive lipgloss.Style
	itemTitle      lipgloss.Style
	itemSelected   lipgloss.Style
	itemSpecies    lipgloss.Style
	itemTime       lipgloss.Style
	emptyText      lipgloss.Style
	errorText      lipgloss.Style

	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	tabSeparator lipgloss.Style
	filterBar    lipgloss.Style

	statusBar    lipgloss.Style
	spinner      lipgloss.Style
	searchPrompt lipgloss.Style

	modalCard        lipgloss.Style
	modalTitle       lipgloss.Style
	modalLabel       lipgloss.Style
	modalValue       lipgloss.Style
	modalButton      lipgloss.Style
	modalButtonFocus lipgloss.Style

	toastInfo  lipgloss.Style
	toastError lipgloss.Style
}

// Styles builds the style set for a theme. The app swaps the whole set on
// toggle.
func (t Theme) Styles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			PaddingLeft(1),

		headerDate: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dim)),

		listPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		listPaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.ActiveBdr)),

		itemTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		itemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		itemSpecies: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Green)),

		itemTime: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dim)),

		emptyText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dim)),

		errorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		tabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 1).
			Bold(true),

		tabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Background(lipgloss.Color(t.TabBg)).
			Padding(0, 1),

		tabSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dim)),

		filterBar: lipgloss.NewStyle().
			PaddingLeft(1),

		statusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBg)).
			Foreground(lipgloss.Color(t.StatusFg)).
			PaddingLeft(1).
			PaddingRight(1),

		spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		searchPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		modalCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.ActiveBdr)).
			Padding(1, 2),

		modalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			MarginBottom(1),

		modalLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dim)),

		modalValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		modalButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Background(lipgloss.Color(t.TabBg)).
			Padding(0, 1),

		modalButtonFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 1).
			Bold(true),

		toastInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Background(lipgloss.Color(t.TabBg)).
			Padding(0, 1),

		toastError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.Danger)).
			Padding(0, 1),
	}
}
