package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-arcade/internal/registry"
	"github.com/vovakirdan/dash-arcade/internal/storage"
)

const (
	maxRuns         = 100 // Max runs to load per variant
	statsPanelWidth = 26
	minWidthForSide = 80 // Below this the stats panel moves under the table
)

// runFilter narrows the run table by outcome.
type runFilter int

const (
	filterAll runFilter = iota
	filterVictories
	filterBossReached
	filterCount
)

func (f runFilter) String() string {
	switch f {
	case filterVictories:
		return "victories"
	case filterBossReached:
		return "boss reached"
	default:
		return "all runs"
	}
}

func (f runFilter) keep(r storage.Run) bool {
	switch f {
	case filterVictories:
		return r.Outcome == storage.OutcomeVictory
	case filterBossReached:
		return r.BossReached
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the run history screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Filter   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Filter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.Filter},
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
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
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

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab  = sbTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	sbPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	runs       []storage.Run // Loaded runs, best first
	shown      []storage.Run // Runs passing the filter
	stats      *storage.GameStats
	filter     runFilter
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a run history screen for every registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()

	if len(m.games) > 0 {
		m.loadRuns(m.games[0].ID)
	}
	return m
}

// sideBySide reports whether the stats panel fits next to the table.
func (m ScoreboardModel) sideBySide() bool {
	return m.width >= minWidthForSide
}

// newTable builds the run table sized to the current window.
func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	avail := m.width - 8
	if m.sideBySide() {
		avail -= statsPanelWidth + 4
	}
	if extra := avail - (6 + 8 + 10 + 5 + dateWidth); extra > 0 {
		dateWidth += min(extra, 6)
	}

	tableHeight := m.height - 9
	if !m.sideBySide() {
		tableHeight -= 7
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Outcome", Width: 10},
			{Title: "Boss", Width: 5},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(tableHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and stats for the given variant.
func (m *ScoreboardModel) loadRuns(gameID string) {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.applyFilter()
}

// applyFilter rebuilds the visible rows from the loaded runs.
func (m *ScoreboardModel) applyFilter() {
	m.shown = make([]storage.Run, 0, len(m.runs))
	for _, r := range m.runs {
		if m.filter.keep(r) {
			m.shown = append(m.shown, r)
		}
	}
	m.table.SetRows(runRows(m.shown))
	m.table.GotoTop()
}

// runRows converts runs to table rows, ranked in the given order.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		boss := "-"
		if r.BossReached {
			boss = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			strings.ReplaceAll(r.Outcome, "_", " "),
			boss,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// selectGame moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) selectGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadRuns(m.games[m.gameCursor].ID)
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

		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % filterCount
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(runRows(m.shown))
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

	b.WriteString("\n")
	b.WriteString(sbTitleStyle.Render(centerText("BEST RUNS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tablePanel := sbPanelStyle.Render(m.renderTableContent())
	statsPanel := sbPanelStyle.Width(statsPanelWidth).Render(m.renderStats())
	if m.sideBySide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePanel, "  ", statsPanel))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tablePanel, statsPanel))
	}

	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.selectedDetail()))
	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per variant with the current one highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = sbActiveTab.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats summarizes the selected variant's run history.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsPanelWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.Runs == 0 {
		b.WriteString(sbDimStyle.Render("no runs yet"))
		return b.String()
	}

	line := func(label string, value any) {
		fmt.Fprintf(&b, "%-13s %v\n", label, value)
	}
	line("Runs", m.stats.Runs)
	line("Best", m.stats.HighScore)
	line("Average", fmt.Sprintf("%.0f", m.stats.AvgScore))
	line("Victories", m.stats.Victories)
	line("Boss reached", m.stats.BossReached)
	line("Last played", m.stats.LastPlayed.Format("Jan 02 15:04"))
	line("Filter", m.filter.String())

	return strings.TrimRight(b.String(), "\n")
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.shown) == 0 {
		msg := "No runs recorded yet.\nFinish a run to set a high score!"
		if len(m.runs) > 0 {
			msg = fmt.Sprintf("No runs match the %q filter.\nPress f to change it.", m.filter.String())
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render(msg)
	}
	return m.table.View()
}

// selectedDetail describes the run under the table cursor.
func (m ScoreboardModel) selectedDetail() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shown) {
		return ""
	}
	r := m.shown[i]
	return fmt.Sprintf("run %s  |  %d ticks  |  session %s", shortID(r.RunID), r.Ticks, shortID(r.SessionID))
}

// shortID trims a uuid to its first group.
func shortID(id string) string {
	if head, _, ok := strings.Cut(id, "-"); ok && len(head) >= 8 {
		return head
	}
	return id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the run history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
