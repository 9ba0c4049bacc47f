package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/charadex/charadex/internal/api"
	"github.com/charadex/charadex/internal/browser"
	"github.com/charadex/charadex/internal/config"
	"github.com/charadex/charadex/internal/dataset"
	"github.com/charadex/charadex/internal/store"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHelp
)

// searchDebounce is how long the keyword input stays quiet before the view
// recomputes. Species and date changes recompute immediately.
const searchDebounce = 300 * time.Millisecond

// App owns all mutable state: the dataset, the active filter controls, the
// toast, the modal. Nothing lives at package level, so independent
// instances tear down cleanly.
type App struct {
	cfg    *config.Config
	st     *store.Store
	client *api.Client
	data   *dataset.Dataset

	mode   mode
	cursor int

	width  int
	height int

	searchInput textinput.Model
	fromInput   textinput.Model
	toInput     textinput.Model
	filterBar   filterBar
	filterField filterField
	spinner     spinner.Model

	theme  Theme
	styles styles

	loading    bool
	refreshing bool
	loadFailed bool
	searchGen  int

	toast    *toast
	toastSeq int
	modal    *detailModal
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	Store  *store.Store // nil disables caching and theme persistence
	Client *api.Client
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search characters..."
	ti.CharLimit = 100

	dateInput := func() textinput.Model {
		di := textinput.New()
		di.Placeholder = "YYYY-MM-DD"
		di.CharLimit = 10
		di.Width = 10
		return di
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	theme := Preferred(opts.Store)
	st := theme.Styles()
	ti.Prompt = st.searchPrompt.Render("/ ")
	sp.Style = st.spinner

	return &App{
		cfg:         opts.Cfg,
		st:          opts.Store,
		client:      opts.Client,
		data:        dataset.New(),
		searchInput: ti,
		fromInput:   dateInput(),
		toInput:     dateInput(),
		filterBar:   newFilterBar(),
		spinner:     sp,
		theme:       theme,
		styles:      st,
		loading:     true,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

// fetchCmd captures the client into the closure; page requests run
// strictly one after another inside FetchAll.
func (a *App) fetchCmd() tea.Cmd {
	client := a.client
	timeout := a.cfg.RequestTimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		chars, err := client.FetchAll(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return charactersLoadedMsg{characters: chars}
	}
}

type browseErrMsg struct {
	err error
}

func openImageCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenImage(url); err != nil {
			return browseErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case charactersLoadedMsg:
		a.loading = false
		a.refreshing = false
		a.loadFailed = false
		a.data.SetCharacters(msg.characters)
		a.filterBar.setSpecies(a.data.Species())
		if a.cursor >= len(a.data.View()) {
			a.cursor = max(0, len(a.data.View())-1)
		}
		return a, a.emptyViewToast()

	case fetchErrMsg:
		a.loading = false
		a.refreshing = false
		// Without data the list area degrades to a static failure state.
		a.loadFailed = a.data.Len() == 0
		return a, a.notify(msg.err.Error(), toastError)

	case browseErrMsg:
		return a, a.notify(msg.err.Error(), toastError)

	case searchDebounceMsg:
		if msg.gen == a.searchGen {
			return a, a.applyCriteria()
		}
		return a, nil

	case toastShowMsg:
		if a.toast != nil && a.toast.id == msg.id {
			a.toast.visible = true
		}
		return a, nil

	case toastExpireMsg:
		if a.toast != nil && a.toast.id == msg.id {
			a.toast = nil
		}
		return a, nil

	case modalTickMsg:
		a.advanceModal()
		return a, nil

	case spinner.TickMsg:
		if a.loading || a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// An open modal owns all input.
	if a.modal != nil {
		return a.handleModalKey(msg)
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		if s := msg.String(); s == "?" || s == "esc" || s == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	view := a.data.View()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(view)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "enter":
		if len(view) > 0 && a.cursor < len(view) {
			a.modal = newDetailModal(view[a.cursor], a.cursor)
			return a, modalTick()
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		a.filterField = fieldSpecies
		return a, nil
	case "t":
		a.toggleTheme()
		return a, nil
	case "r":
		return a, a.refresh()
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.searchGen++ // cancel any pending debounce
		return a, a.applyCriteria()
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() == before {
		// Cursor moves and the like don't restart the debounce.
		return a, cmd
	}

	a.searchGen++
	gen := a.searchGen
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{gen: gen}
	})
	return a, tea.Batch(cmd, debounce)
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.filterBar.filterMode = false
		a.fromInput.Blur()
		a.toInput.Blur()
		return a, nil
	case "tab":
		a.filterField = nextField(a.filterField)
		a.fromInput.Blur()
		a.toInput.Blur()
		switch a.filterField {
		case fieldFrom:
			a.fromInput.Focus()
			return a, textinput.Blink
		case fieldTo:
			a.toInput.Focus()
			return a, textinput.Blink
		}
		return a, nil
	}

	if a.filterField == fieldSpecies {
		switch msg.String() {
		case "f":
			a.mode = modeNormal
			a.filterBar.filterMode = false
			return a, nil
		case "left", "h":
			a.filterBar.moveLeft()
			return a, nil
		case "right", "l":
			a.filterBar.moveRight()
			return a, nil
		case " ", "enter":
			a.filterBar.selectCurrent()
			return a, a.applyCriteria()
		}
		return a, nil
	}

	// Date fields: every change recomputes immediately.
	input := &a.fromInput
	if a.filterField == fieldTo {
		input = &a.toInput
	}
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() != before {
		return a, tea.Batch(cmd, a.applyCriteria())
	}
	return a, cmd
}

// currentCriteria derives FilterCriteria from the control state. A
// date-only "to" bound covers its whole day.
func (a *App) currentCriteria() dataset.Criteria {
	cr := dataset.Criteria{
		Keyword: a.searchInput.Value(),
		Species: a.filterBar.selected,
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(a.fromInput.Value())); err == nil {
		cr.From = &t
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(a.toInput.Value())); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		cr.To = &end
	}
	return cr
}

func (a *App) applyCriteria() tea.Cmd {
	a.data.SetCriteria(a.currentCriteria())
	a.cursor = 0
	return a.emptyViewToast()
}

// emptyViewToast raises the informational no-results toast whenever the
// view is empty, and clears it otherwise.
func (a *App) emptyViewToast() tea.Cmd {
	if len(a.data.View()) == 0 {
		return a.notify("No characters match the current filters", toastInfo)
	}
	if a.toast != nil && a.toast.level == toastInfo {
		a.dismissToast()
	}
	return nil
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Opposite()
	a.styles = a.theme.Styles()
	a.searchInput.Prompt = a.styles.searchPrompt.Render("/ ")
	a.spinner.Style = a.styles.spinner
	persistTheme(a.st, a.theme)
}

// refresh drops the cached set and refetches. A fetch already in flight
// absorbs repeated presses.
func (a *App) refresh() tea.Cmd {
	if a.refreshing || a.loading {
		return nil
	}
	a.refreshing = true
	a.client.Invalidate()
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

func (a *App) View() string {
	if a.width == 0 {
		return a.styles.header.Render("charadex")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerLeft := a.styles.header.Render("charadex")
	headerRight := a.styles.headerDate.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	speciesRow := a.filterBar.render(a.width, a.styles, a.filterField == fieldSpecies)

	var secondRow string
	if a.mode == modeSearch {
		secondRow = a.searchInput.View()
	} else {
		secondRow = a.renderDateRow(a.width)
	}

	headerHeight := 1
	rowsHeight := 2
	toastHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - rowsHeight - toastHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	innerW := a.width - 4
	var content string
	switch {
	case a.loading:
		content = centerText(a.spinner.View()+" Loading characters...", innerW, contentHeight)
	case a.loadFailed:
		content = centerText(
			a.styles.errorText.Render("Failed to load characters.")+
				a.styles.emptyText.Render("  Press r to retry."),
			innerW, contentHeight)
	default:
		content = renderList(a.data.View(), a.cursor, contentHeight, innerW, a.styles)
	}

	pane := a.styles.listPane.Width(a.width - 2).Height(contentHeight).Render(content)
	if a.modal != nil {
		pane = renderModal(a.modal, a.styles, a.width, contentHeight+2)
	}

	toastLine := renderToast(a.toast, a.styles, a.width)

	status := renderStatusBar(
		a.styles,
		len(a.data.View()),
		a.data.Len(),
		a.filterBar.activeLabel(),
		a.width,
		a.mode,
		a.refreshing,
	)
	if a.refreshing {
		status = a.spinner.View() + " " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, speciesRow, secondRow, pane, toastLine, status)
}

func (a *App) renderHelp() string {
	title := a.styles.header.Render("charadex")
	dim := a.styles.emptyText

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the character list\n" +
		"  enter         Open character details\n\n" +
		dim.Render("Filtering") + "\n" +
		"  /             Search by name (300ms debounce)\n" +
		"  f             Filter by species and date range\n" +
		"  tab           Next filter field\n" +
		"  ←/→, h/l     Choose species\n" +
		"  space/enter   Apply species\n\n" +
		dim.Render("Details") + "\n" +
		"  tab/shift+tab Cycle dialog focus (wraps)\n" +
		"  enter         Activate focused control\n" +
		"  o             Open character image\n" +
		"  esc, q        Close dialog\n\n" +
		dim.Render("General") + "\n" +
		"  t             Toggle light/dark theme\n" +
		"  r             Refresh from the API\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := a.styles.modalCard.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
