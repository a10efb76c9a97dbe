package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

var playbackStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

// PlaybackModel animates a saved recording at the tick interval.
// Restart rewinds to the first tick.
type PlaybackModel struct {
	game     registry.Game
	rec      replay.Recording
	player   *replay.Player
	interval time.Duration
	screen   *core.Screen
	keys     KeyMap
	gen      int
	quitting bool
}

// NewPlaybackModel prepares g to play rec.
func NewPlaybackModel(g registry.Game, rec replay.Recording, interval time.Duration, width, height int) (PlaybackModel, error) {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	m := PlaybackModel{
		game:     g,
		rec:      rec,
		interval: interval,
		screen:   core.NewScreen(width, max(height-1, 1)),
		keys:     DefaultKeyMap(),
	}
	if err := m.rewind(); err != nil {
		return PlaybackModel{}, err
	}
	return m, nil
}

func (m *PlaybackModel) rewind() error {
	p, err := replay.NewPlayer(m.game, m.rec)
	if err != nil {
		return err
	}
	m.player = p
	m.gen++
	return nil
}

// Init arms the first tick.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and advances the playback.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			if err := m.rewind(); err != nil {
				return m, tea.Quit
			}
			return m, tickCmd(m.interval, m.gen)
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))

	case TickMsg:
		if msg.Gen != m.gen || !m.player.Step() {
			return m, nil
		}
		if m.player.Done() {
			return m, nil
		}
		return m, tickCmd(m.interval, m.gen)
	}

	return m, nil
}

// View renders the board and the playback position.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := fmt.Sprintf(" Replay %s  tick %d/%d", shortID(m.rec.ID), m.player.Tick(), m.rec.Ticks)
	if m.player.Done() {
		status += "  (end, r to rewind)"
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(playbackStatusStyle.Render(status))
	return b.String()
}

// Done reports whether the playback reached the last tick.
func (m PlaybackModel) Done() bool {
	return m.player.Done()
}

// RunPlayback animates rec on g until the user quits.
func RunPlayback(g registry.Game, rec replay.Recording, interval time.Duration, width, height int) error {
	m, err := NewPlaybackModel(g, rec, interval, width, height)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// shortID trims a replay ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
