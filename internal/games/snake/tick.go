package snake

// Tick advances the game by one move.
//
// A finished game is returned unchanged. Otherwise the head steps along
// Direction; leaving the board or touching any current segment (the tail
// included, even though it would move away this tick) ends the game with
// body, food and score untouched. Eating food scores a point, respawns the
// food and keeps the tail, so the snake grows by one.
func Tick(s State, spawn FoodSpawner) State {
	if s.GameOver {
		return s
	}

	newHead := s.Head().Add(s.Direction)
	if !newHead.InBounds(s.BoardSize) || s.IsOccupiedByBody(newHead) {
		next := s.Clone()
		next.GameOver = true
		return next
	}

	next := s
	next.Snake = make([]Position, 0, len(s.Snake)+1)
	next.Snake = append(next.Snake, newHead)
	next.Snake = append(next.Snake, s.Snake...)

	if newHead == s.Food {
		next.Score++
		next.Food = spawn.Spawn(next)
		return next
	}

	next.Snake = next.Snake[:len(next.Snake)-1]
	return next
}
