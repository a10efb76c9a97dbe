package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Position is a cell on the board. Values are compared with ==.
type Position struct {
	X, Y int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// InBounds reports whether p lies on a size×size board.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit step on the board.
type Direction struct {
	DX, DY int
}

// The four headings. Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a heading name as used in config files.
func ParseDirection(name string) (Direction, error) {
	switch config.NormalizeDirection(name) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("snake: unknown direction %q", name)
}
