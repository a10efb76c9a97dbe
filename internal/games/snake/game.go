// Package snake implements the grid snake game: a pure state engine (State,
// Tick, OnKey, food spawners) and a Game adapter the platform drives once per
// tick.
package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// GameID is the registry key of the snake game.
const GameID = "snake"

// Game owns one State and advances it on behalf of the platform.
type Game struct {
	rules   Rules
	theme   Theme
	state   State
	spawner FoodSpawner
	seed    int64
	tick    uint64
}

// New creates a game with the given rules and theme, already reset with the
// default runtime config. The platform resets it again with its own seed.
func New(rules Rules, theme Theme) *Game {
	g := &Game{
		rules: rules,
		theme: theme,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// NewFromConfig creates a game from a validated configuration.
func NewFromConfig(cfg config.SnakeConfig) (*Game, error) {
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	theme, err := ThemeFromConfig(cfg.Theme)
	if err != nil {
		return nil, err
	}
	return New(rules, theme), nil
}

func init() {
	registry.Register(GameID, func(cfg config.SnakeConfig) (registry.Game, error) {
		return NewFromConfig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset discards the current game and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.spawner = NewSpawner(g.rules, cfg.Seed)
	g.state = Reset(g.rules)
	g.tick = 0
}

// HandleInput applies an action immediately. It only ever changes the heading,
// which the next Step reads.
func (g *Game) HandleInput(a core.Action) {
	g.state = OnKey(g.state, a, g.rules)
}

// Step advances the game by one tick. Once the game is over it does nothing.
func (g *Game) Step() core.StepResult {
	if !g.state.GameOver {
		g.state = Tick(g.state, g.spawner)
		g.tick++
	}
	return core.StepResult{State: g.State()}
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
	}
}

// Board returns a copy of the full engine state.
func (g *Game) Board() State {
	return g.state.Clone()
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Seed returns the seed of the current round.
func (g *Game) Seed() int64 {
	return g.seed
}

// Ticks returns how many moves the current round has made.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", g.tick, g.state.Score, g.state.Phase())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.state.Snake), g.state.Direction)
	if len(g.state.Snake) > 0 {
		fmt.Fprintf(&b, "Head: %s, Food: %s\n", g.state.Head(), g.state.Food)
	}
	return b.String()
}
