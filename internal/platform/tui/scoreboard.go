package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/rules"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 20  // Width of the tab sidebar
	maxScores          = 100 // Max scores to load
	maxSessions        = 50  // Max placement sessions to load
	dateFormat         = "Jan 02 15:04"
)

// Scoreboard colors
var (
	accentColor = lipgloss.Color("229")
	borderColor = lipgloss.Color("240")
	mutedColor  = lipgloss.Color("241")
	selectColor = lipgloss.Color("57")
)

// scoreTab is one page of the scoreboard: a game's scores, the best times or
// the recorded layouts.
type scoreTab struct {
	id      string
	title   string
	columns []table.Column
	empty   string
	load    func(store *storage.Store) ([]table.Row, error)
}

func scoreTabs() []scoreTab {
	games := registry.List()
	tabs := make([]scoreTab, 0, len(games)+2)
	for _, g := range games {
		tabs = append(tabs, gameTab(g))
	}
	return append(tabs, bestTimesTab(), layoutsTab())
}

func gameTab(g registry.GameInfo) scoreTab {
	return scoreTab{
		id:    g.ID,
		title: g.Title,
		columns: []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: 20},
		},
		empty: "No scores recorded yet.\nPlay a game to set a high score!",
		load: func(store *storage.Store) ([]table.Row, error) {
			scores, err := store.TopScores(g.ID, maxScores)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, len(scores))
			for i, s := range scores {
				rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", s.Score), s.CreatedAt.Format(dateFormat)}
			}
			return rows, nil
		},
	}
}

func bestTimesTab() scoreTab {
	return scoreTab{
		id:    "_best_times",
		title: "Best Times",
		columns: []table.Column{
			{Title: "Course", Width: 14},
			{Title: "Time", Width: 12},
			{Title: "Date", Width: 20},
		},
		empty: "No best times yet.\nClear a time trial to set one!",
		load: func(store *storage.Store) ([]table.Row, error) {
			times, err := store.AllBestTimes()
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, len(times))
			for i, b := range times {
				rows[i] = table.Row{b.Key, rules.FormatTime(b.Seconds), b.UpdatedAt.Format(dateFormat)}
			}
			return rows, nil
		},
	}
}

func layoutsTab() scoreTab {
	return scoreTab{
		id:    "_layouts",
		title: "Layouts",
		columns: []table.Column{
			{Title: "Game", Width: 10},
			{Title: "Seed", Width: 20},
			{Title: "Placed", Width: 8},
			{Title: "Fallbacks", Width: 10},
			{Title: "Date", Width: 14},
		},
		empty: "No layouts recorded.\nRun `arcade layout --save` to record one.",
		load: func(store *storage.Store) ([]table.Row, error) {
			sessions, err := store.RecentPlacementSessions("", maxSessions)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, len(sessions))
			for i, p := range sessions {
				rows[i] = table.Row{
					p.GameID,
					fmt.Sprintf("%d", p.Seed),
					fmt.Sprintf("%d/%d", p.Placed, p.Requested),
					fmt.Sprintf("%d", p.Fallbacks),
					p.CreatedAt.Format(dateFormat),
				}
			}
			return rows, nil
		},
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	tabs      []scoreTab
	current   int
	store     *storage.Store
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // back to the menu rather than quit
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tabs:   scoreTabs(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// load fetches the rows of the selected tab and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.loadErr = nil, nil
	if m.store != nil && m.current < len(m.tabs) {
		m.rows, m.loadErr = m.tabs[m.current].load(m.store)
	}
	m.rebuildTable()
}

// rebuildTable lays the loaded rows out for the current width.
func (m *ScoreboardModel) rebuildTable() {
	var columns []table.Column
	if m.current < len(m.tabs) {
		columns = fitColumns(m.tabs[m.current].columns, m.tableWidth())
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // title, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(selectColor).
		Bold(false)
	t.SetStyles(s)
	t.SetRows(m.rows)
	t.GotoTop()

	m.table = t
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.showSidebar() {
		w -= sidebarWidth + 3
	}
	return w
}

// fitColumns gives the spare width to the last column, capped at 20 cells.
func fitColumns(cols []table.Column, width int) []table.Column {
	out := make([]table.Column, len(cols))
	copy(out, cols)
	if len(out) == 0 {
		return out
	}
	used := 0
	for _, c := range out[:len(out)-1] {
		used += c.Width + 2
	}
	last := &out[len(out)-1]
	if spare := width - used; spare > last.Width {
		last.Width = min(spare, 20)
	}
	return out
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.tabs)) % len(m.tabs)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	title := "HIGH SCORES"
	if m.current < len(m.tabs) {
		title = "HIGH SCORES - " + m.tabs[m.current].title
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar() {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(0, 1)

// renderWideLayout puts the tab list in a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	active := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	for i, tab := range m.tabs {
		line := "  " + truncate(tab.title, sidebarWidth-6)
		if i == m.current {
			line = active.Render("> " + truncate(tab.title, sidebarWidth-6))
		}
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(sidebarWidth).Render(sidebar.String()),
		"  ",
		panelStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout puts the tabs in a row above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(mutedColor)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Background(selectColor).
		Padding(0, 1)

	labels := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		name := truncate(tab.title, 10)
		if i == m.current {
			labels[i] = activeStyle.Render(name)
		} else {
			labels[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(labels, " ")
	if lipgloss.Width(tabLine) > m.width-4 && m.current < len(m.tabs) {
		tabLine = fmt.Sprintf("< %s >", m.tabs[m.current].title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or the tab's empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}

	msg := "Nothing to show."
	switch {
	case m.loadErr != nil:
		msg = "Could not load this board:\n" + m.loadErr.Error()
	case m.current < len(m.tabs):
		msg = m.tabs[m.current].empty
	}
	return lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true).
		Padding(2, 4).
		Render(msg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
