// Package tui hosts a game in a Bubble Tea program: the tick subscription,
// key bindings, lipgloss rendering and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one firing of the tick subscription armed for generation Gen.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd arms a single tick for generation gen. The model re-arms it from
// Update, so a chain stops as soon as the model stops asking.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
