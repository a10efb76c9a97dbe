package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", keyRune('w'), core.ActionUp},
		{"a", keyRune('a'), core.ActionLeft},
		{"s", keyRune('s'), core.ActionDown},
		{"d", keyRune('d'), core.ActionRight},
		{"k", keyRune('k'), core.ActionUp},
		{"h", keyRune('h'), core.ActionLeft},
		{"j", keyRune('j'), core.ActionDown},
		{"l", keyRune('l'), core.ActionRight},
		{"r", keyRune('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q", keyRune('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", keyRune('?'), core.ActionNone},
		{"unbound", keyRune('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%s) = %v, expected %v", tc.msg, got, tc.want)
			}
		})
	}
}
