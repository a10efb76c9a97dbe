package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game session.
type Options struct {
	Width    int
	Height   int
	Interval time.Duration  // Zero means core.DefaultTickInterval
	Seed     int64          // Used for every round when set; zero picks a fresh seed per round
	Record   bool           // Save a replay when a round ends
	Store    *storage.Store // Replay store, may be nil
	Logger   *log.Logger    // May be nil
}

func (o Options) withDefaults() Options {
	def := core.DefaultConfig()
	if o.Width <= 0 {
		o.Width = def.ScreenW
	}
	if o.Height <= 0 {
		o.Height = def.ScreenH
	}
	if o.Interval <= 0 {
		o.Interval = def.TickInterval
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model hosting one game.
//
// The tick subscription is tracked by generation: every restart bumps gen and
// arms one new tick, ticks carrying an older generation are dropped, and no
// tick is re-armed once the round is over.
type Model struct {
	game     registry.Game
	opts     Options
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	recorder *replay.Recorder
	state    core.GameState
	gen      int
	saved    bool
	quitting bool
}

// NewModel creates a model and starts the first round.
func NewModel(game registry.Game, opts Options) Model {
	opts = opts.withDefaults()
	m := Model{
		game: game,
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	m.help.Width = opts.Width
	m.screen = core.NewScreen(opts.Width, m.boardHeight())
	m.restart()
	return m
}

// restart replaces the round and moves the tick subscription to a new generation.
func (m *Model) restart() {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.game.Reset(core.RuntimeConfig{
		ScreenW:      m.opts.Width,
		ScreenH:      m.opts.Height,
		TickInterval: m.opts.Interval,
		Seed:         seed,
	})
	m.recorder = replay.NewRecorder(m.game.ID(), seed)
	m.state = m.game.State()
	m.saved = false
	m.gen++

	m.opts.Logger.Debug("round started", "game", m.game.ID(), "seed", seed, "gen", m.gen)
}

// Init arms the first tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Directions apply immediately and are
// read by the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.opts.Width, m.boardHeight())
		return m, nil
	}

	switch a := m.keys.Action(msg); {
	case a == core.ActionQuit:
		m.quitting = true
		m.opts.Logger.Debug("quit", "game", m.game.ID(), "score", m.state.Score)
		return m, tea.Quit

	case a == core.ActionRestart:
		m.restart()
		return m, tickCmd(m.opts.Interval, m.gen)

	case a.IsDirectional():
		m.game.HandleInput(a)
		if !m.state.GameOver {
			m.recorder.Input(a)
		}
	}

	return m, nil
}

// handleTick runs one step for the current generation and re-arms the
// subscription while the round is active.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state.GameOver {
		return m, nil
	}

	result := m.game.Step()
	m.recorder.Tick()
	m.state = result.State

	if m.state.GameOver {
		m.finishRound()
		return m, nil
	}
	return m, tickCmd(m.opts.Interval, m.gen)
}

// finishRound logs the result and saves the replay once per round.
func (m *Model) finishRound() {
	rec := m.recorder.Recording()
	m.opts.Logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "ticks", rec.Ticks)
	if dbg, ok := m.game.(interface{ DebugState() string }); ok {
		m.opts.Logger.Debug("final state", "state", dbg.DebugState())
	}

	if !m.opts.Record || m.opts.Store == nil || m.saved {
		return
	}
	m.saved = true

	id, err := m.opts.Store.SaveReplay(rec)
	if err != nil {
		m.opts.Logger.Warn("could not save replay", "error", err)
		return
	}
	m.opts.Logger.Info("replay saved", "id", id, "seed", rec.Seed)
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	h := m.opts.Height - lipgloss.Height(m.help.View(m.keys))
	return max(h, 1)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Generation returns the current tick generation.
func (m Model) Generation() int {
	return m.gen
}

// GameState returns the state reported by the last step.
func (m Model) GameState() core.GameState {
	return m.state
}

// Recording returns what has been recorded for the current round.
func (m Model) Recording() replay.Recording {
	return m.recorder.Recording()
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
