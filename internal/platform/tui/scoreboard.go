package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-planetoids/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns          = 100 // Max runs to load
	completedOutcome = "journey_complete"
)

// ScoreboardView selects which runs are listed.
type ScoreboardView int

const (
	ViewTop  ScoreboardView = iota // Best runs of everyone
	ViewMine                       // Latest runs of the current player
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
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
		Switch: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("left/right", "top/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists journal runs. It is embedded in the game model and
// shown on demand rather than run as its own program.
type ScoreboardModel struct {
	store     *storage.Store
	gameID    string
	player    string
	view      ScoreboardView
	runs      []storage.Run
	stats     *storage.RunStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads the best runs.
func NewScoreboardModel(store *storage.Store, gameID, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Chapter", Width: 8},
		{Title: "Explored", Width: 9},
		{Title: "Outcome", Width: 26},
		{Title: "When", Width: 12},
	}

	// Drop the widest optional columns on narrow terminals.
	if m.width < 90 {
		columns = columns[:5]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// reload fetches runs and statistics for the current view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		switch m.view {
		case ViewMine:
			m.runs, m.loadErr = m.store.RecentRuns(m.player, maxRuns)
		default:
			m.runs, m.loadErr = m.store.TopRuns(m.gameID, maxRuns)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(m.gameID, completedOutcome)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	cols := len(m.table.Columns())
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Explored),
			strings.ReplaceAll(r.Outcome, "_", " "),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
		rows[i] = row[:cols]
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewTop {
				m.view = ViewMine
			} else {
				m.view = ViewTop
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "JOURNEYS - best of this session"
	if m.view == ViewMine {
		title = fmt.Sprintf("JOURNEYS - latest of %s", m.player)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if line := m.statsLine(); line != "" {
		b.WriteString(dim.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the journal of the game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  best %d  avg %.0f  most explored %d  journeys completed %d",
		m.stats.Runs, m.stats.BestScore, m.stats.AvgScore, m.stats.MaxExplored, m.stats.Completed)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The run journal is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the run journal:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No journeys recorded yet.\nFinish a run to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}
