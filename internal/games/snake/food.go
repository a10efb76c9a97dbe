package snake

import "math/rand"

// FoodSpawner chooses where food appears after it is eaten.
type FoodSpawner interface {
	Spawn(s State) Position
}

// UniformSpawner picks any cell of the board with equal probability,
// including cells covered by the snake.
type UniformSpawner struct {
	rng *rand.Rand
}

// NewUniformSpawner creates a spawner drawing from rng.
func NewUniformSpawner(rng *rand.Rand) *UniformSpawner {
	return &UniformSpawner{rng: rng}
}

// Spawn returns a uniformly random cell.
func (u *UniformSpawner) Spawn(s State) Position {
	return Position{X: u.rng.Intn(s.BoardSize), Y: u.rng.Intn(s.BoardSize)}
}

// FreeCellSpawner picks uniformly among cells the snake does not cover.
// On a full board it falls back to any cell.
type FreeCellSpawner struct {
	rng *rand.Rand
}

// NewFreeCellSpawner creates a spawner drawing from rng.
func NewFreeCellSpawner(rng *rand.Rand) *FreeCellSpawner {
	return &FreeCellSpawner{rng: rng}
}

// Spawn returns a random unoccupied cell.
func (f *FreeCellSpawner) Spawn(s State) Position {
	occupied := make(map[Position]bool, len(s.Snake))
	for _, seg := range s.Snake {
		occupied[seg] = true
	}

	var emptyCells []Position
	for y := 0; y < s.BoardSize; y++ {
		for x := 0; x < s.BoardSize; x++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		return Position{X: f.rng.Intn(s.BoardSize), Y: f.rng.Intn(s.BoardSize)}
	}
	return emptyCells[f.rng.Intn(len(emptyCells))]
}

// NewSpawner returns the spawner selected by the rules.
func NewSpawner(r Rules, seed int64) FoodSpawner {
	rng := rand.New(rand.NewSource(seed))
	if r.FoodAvoidsBody {
		return NewFreeCellSpawner(rng)
	}
	return NewUniformSpawner(rng)
}
