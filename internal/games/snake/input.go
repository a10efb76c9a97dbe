package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DirectionFor maps a directional action to its heading.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return Direction{}, false
}

// OnKey applies one input to the state. Only Direction can change; actions
// without a heading are ignored. Turning straight back is accepted (and
// fatal on the next tick for a snake longer than one cell) unless
// r.PreventReversal is set, which rejects any heading that leads into the
// neck, however many keys arrived since the last move.
func OnKey(s State, a core.Action, r Rules) State {
	dir, ok := DirectionFor(a)
	if !ok {
		return s
	}
	if r.PreventReversal && len(s.Snake) > 1 && s.Head().Add(dir) == s.Snake[1] {
		return s
	}
	s.Direction = dir
	return s
}
