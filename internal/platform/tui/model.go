package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-planetoids/internal/audio"
	"github.com/vovakirdan/tui-planetoids/internal/core"
	"github.com/vovakirdan/tui-planetoids/internal/registry"
	"github.com/vovakirdan/tui-planetoids/internal/storage"
)

// Options wires the collaborators of a play session. Every field is
// optional.
type Options struct {
	Player     string         // Name stored with finished runs
	Store      *storage.Store // Run journal
	Logger     *log.Logger
	Chimes     *audio.Chimes
	HoldWindow time.Duration // Key hold latch; zero uses DefaultHoldWindow
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	runSaved   bool // Whether the current finished run is in the journal
	scoreboard *ScoreboardModel
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "guest"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger.With("player", opts.Player),
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.Update(msg)
		switch {
		case sb.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case sb.IsGoingBack():
			m.scoreboard = nil
		default:
			m.scoreboard = &sb
		}
		return m, cmd
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScoreboard:
		sb := NewScoreboardModel(m.opts.Store, m.game.ID(), m.opts.Player, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.holds.Reset()
	case action.IsHeld():
		m.holds.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world is drawn in
// screen-relative coordinates, so the run continues undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The simulation is frozen while the scoreboard is open.
	if m.scoreboard != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	m.holds.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "detail", ev.String(), "tick", result.State.Ticks)
		if m.opts.Chimes != nil {
			m.opts.Chimes.Play(ev)
		}
	}

	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.logger.Info("run started", "game", m.game.ID())
	}

	if m.gameState.GameOver && !m.runSaved {
		m.finishRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun logs the result and records it in the journal.
func (m *Model) finishRun() {
	st := m.gameState
	m.logger.Info("run ended",
		"outcome", st.Outcome,
		"score", st.Score,
		"level", st.Level,
		"explored", st.Explored,
		"ticks", st.Ticks,
	)

	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRun(storage.Run{
		Player:   m.opts.Player,
		GameID:   m.game.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Explored: st.Explored,
		Outcome:  st.Outcome,
		Ticks:    st.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state after the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
