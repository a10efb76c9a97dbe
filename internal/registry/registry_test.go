package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string               { return s.id }
func (s *stubGame) Title() string            { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) HandleInput(core.Action)  {}
func (s *stubGame) Step() core.StepResult    { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)      {}
func (s *stubGame) State() core.GameState    { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-ok", func(config.SnakeConfig) (Game, error) {
		return &stubGame{id: "stub-ok"}, nil
	})

	if !Exists("stub-ok") {
		t.Fatal("Exists() = false after Register")
	}
	if !slices.Contains(IDs(), "stub-ok") {
		t.Errorf("IDs() = %v, missing stub-ok", IDs())
	}
	if !slices.IsSorted(IDs()) {
		t.Errorf("IDs() not sorted: %v", IDs())
	}

	g, err := Create("stub-ok", config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-ok" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-game", config.DefaultSnakeConfig()); err == nil {
		t.Error("Create() should fail for an unknown id")
	}

	boom := errors.New("boom")
	Register("stub-fail", func(config.SnakeConfig) (Game, error) {
		return nil, boom
	})
	if _, err := Create("stub-fail", config.DefaultSnakeConfig()); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(config.SnakeConfig) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("Registering the same id twice should panic")
		}
	}()
	Register("stub-dup", func(config.SnakeConfig) (Game, error) { return &stubGame{}, nil })
}
