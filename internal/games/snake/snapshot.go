package snake

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.state.Snake) > 0 {
		headX = g.state.Snake[0].X
		headY = g.state.Snake[0].Y
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.state.Score,
		SnakeLen: len(g.state.Snake),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.state.Direction,
		FoodX:    g.state.Food.X,
		FoodY:    g.state.Food.Y,
		State:    g.state.Phase(),
	}
}
