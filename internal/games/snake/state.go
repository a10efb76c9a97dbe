package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Phase is the state-machine position of a game.
type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseGameOver Phase = "game_over"
)

// Rules fixes the board and the starting position of every game, plus the
// opt-in deviations from the classic behavior.
type Rules struct {
	BoardSize      int
	StartSnake     []Position // Head first
	StartFood      Position
	StartDirection Direction

	// PreventReversal ignores a key pointing straight back into the body.
	// Off by default: reversing with more than one segment is fatal.
	PreventReversal bool

	// FoodAvoidsBody restricts food spawns to free cells.
	// Off by default: food may land on the body.
	FoodAvoidsBody bool
}

// DefaultRules returns the classic 10×10 setup.
func DefaultRules() Rules {
	return Rules{
		BoardSize:      10,
		StartSnake:     []Position{{X: 2, Y: 2}},
		StartFood:      Position{X: 5, Y: 5},
		StartDirection: Right,
	}
}

// RulesFromConfig converts a validated configuration into rules.
func RulesFromConfig(cfg config.SnakeConfig) (Rules, error) {
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return Rules{}, err
	}

	body := make([]Position, len(cfg.Start.Snake))
	for i, p := range cfg.Start.Snake {
		body[i] = Position{X: p[0], Y: p[1]}
	}
	if len(body) == 0 {
		return Rules{}, fmt.Errorf("snake: start snake is empty")
	}

	return Rules{
		BoardSize:       cfg.Board.Size,
		StartSnake:      body,
		StartFood:       Position{X: cfg.Start.Food[0], Y: cfg.Start.Food[1]},
		StartDirection:  dir,
		PreventReversal: cfg.Rules.PreventReversal,
		FoodAvoidsBody:  cfg.Rules.FoodAvoidsBody,
	}, nil
}

// State is the complete game state. Tick and OnKey take a State and return
// the next one; the body slice of the argument is never modified.
type State struct {
	BoardSize int
	Snake     []Position // Head at index 0
	Food      Position
	Direction Direction
	GameOver  bool
	Score     int
}

// Reset returns the initial state for the given rules, regardless of any
// previous game.
func Reset(r Rules) State {
	body := make([]Position, len(r.StartSnake))
	copy(body, r.StartSnake)
	return State{
		BoardSize: r.BoardSize,
		Snake:     body,
		Food:      r.StartFood,
		Direction: r.StartDirection,
	}
}

// Head returns the first segment.
func (s State) Head() Position {
	return s.Snake[0]
}

// IsOccupiedByBody reports whether any segment, head included, is on p.
func (s State) IsOccupiedByBody(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// IsFood reports whether the food is on p.
func (s State) IsFood(p Position) bool {
	return s.Food == p
}

// Phase returns the state-machine phase.
func (s State) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhaseActive
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Snake = make([]Position, len(s.Snake))
	copy(c.Snake, s.Snake)
	return c
}
