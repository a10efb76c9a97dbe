package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(DefaultRules(), DefaultTheme())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

// playScript steers the snake around the board, eating the first food.
func playScript(g *Game) []Snapshot {
	script := map[int]core.Action{
		3:  core.ActionDown, // (5,2) -> column of the food
		10: core.ActionLeft,
		14: core.ActionUp,
		18: core.ActionRight,
	}

	var snaps []Snapshot
	for i := range 40 {
		if a, ok := script[i]; ok {
			g.HandleInput(a)
		}
		g.Step()
		snaps = append(snaps, g.Snapshot())
	}
	return snaps
}

func TestGameDeterminism(t *testing.T) {
	a := playScript(newTestGame(t, 12345))
	b := playScript(newTestGame(t, 12345))

	if len(a) != len(b) {
		t.Fatalf("Snapshot count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Snapshot %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestGameEatsFirstFood(t *testing.T) {
	g := newTestGame(t, 1)

	// (2,2) right x3 -> (5,2), then down x3 -> (5,5)
	for range 3 {
		g.Step()
	}
	g.HandleInput(core.ActionDown)
	for range 3 {
		g.Step()
	}

	if g.State().Score != 1 {
		t.Fatalf("Score = %d, expected 1", g.State().Score)
	}
	if got := len(g.Board().Snake); got != 2 {
		t.Errorf("Snake length = %d, expected 2", got)
	}
	if g.Ticks() != 6 {
		t.Errorf("Ticks = %d, expected 6", g.Ticks())
	}
}

func TestGameStopsCountingAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)

	var res core.StepResult
	for range 30 {
		res = g.Step()
	}
	if !res.State.GameOver {
		t.Fatal("Expected game over after running into the wall")
	}
	// Seven moves reach x=9, the eighth leaves the board.
	if g.Ticks() != 8 {
		t.Errorf("Ticks = %d, expected 8", g.Ticks())
	}
	if snap := g.Snapshot(); snap.State != PhaseGameOver || snap.HeadX != 9 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 1)
	for range 30 {
		g.Step()
	}

	g.Reset(core.RuntimeConfig{Seed: 99})
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("State after reset = %+v", g.State())
	}
	if g.Seed() != 99 {
		t.Errorf("Seed = %d, expected 99", g.Seed())
	}
	if !strings.Contains(g.DebugState(), "Phase: active") {
		t.Errorf("DebugState() = %q", g.DebugState())
	}
}

func TestRegistryCreatesSnake(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("snake should register itself")
	}

	g, err := registry.Create(GameID, config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Snake" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	bad := config.DefaultSnakeConfig()
	bad.Theme.Food = "ultraviolet"
	if _, err := registry.Create(GameID, bad); err == nil {
		t.Error("Create() should fail on an unknown theme color")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	w, h := g.MinScreenSize()
	if w != 22 || h != 16 {
		t.Errorf("MinScreenSize() = %dx%d, expected 22x16", w, h)
	}

	screen := core.NewScreen(40, 20)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Snake", "Score: 0", "█", "●", "·", "R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Game Over") {
		t.Error("Active game should not show Game Over")
	}

	for range 30 {
		g.Step()
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Errorf("Expected Game Over indicator:\n%s", screen.String())
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "too small") || !strings.Contains(out, "22x16") {
		t.Errorf("Expected size warning:\n%s", out)
	}
}
