// Package replay records the inputs of a game round and plays them back.
// A round is fully determined by its game ID, seed, the directional inputs
// and the tick each input arrived before, so recordings stay small.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// InputEvent is one action applied before the given tick ran.
type InputEvent struct {
	Tick   uint64
	Action core.Action
}

// Recording describes one round from reset to the last tick.
type Recording struct {
	ID        string // Assigned by storage
	GameID    string
	Seed      int64
	Ticks     uint64 // Steps executed while the round was active
	Events    []InputEvent
	CreatedAt time.Time
}

// Validate checks that the events can be played back in order.
func (r Recording) Validate() error {
	if r.GameID == "" {
		return errors.New("replay: recording has no game id")
	}
	var last uint64
	for i, ev := range r.Events {
		if !ev.Action.IsDirectional() {
			return fmt.Errorf("replay: event %d has non-directional action %s", i, ev.Action)
		}
		if ev.Tick < last {
			return fmt.Errorf("replay: event %d at tick %d is out of order", i, ev.Tick)
		}
		if ev.Tick > r.Ticks {
			return fmt.Errorf("replay: event %d at tick %d is past the last tick %d", i, ev.Tick, r.Ticks)
		}
		last = ev.Tick
	}
	return nil
}

// Recorder collects inputs for the current round.
// It is owned by a single model and is not safe for concurrent use.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a round reset with seed.
func NewRecorder(gameID string, seed int64) *Recorder {
	return &Recorder{rec: Recording{GameID: gameID, Seed: seed}}
}

// Input records a directional action at the current tick. Other actions are
// platform concerns (restart, quit) and are not part of the round.
func (r *Recorder) Input(a core.Action) {
	if !a.IsDirectional() {
		return
	}
	r.rec.Events = append(r.rec.Events, InputEvent{Tick: r.rec.Ticks, Action: a})
}

// Tick records that one step ran.
func (r *Recorder) Tick() {
	r.rec.Ticks++
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Events = append([]InputEvent(nil), r.rec.Events...)
	out.CreatedAt = time.Now()
	return out
}

// Player steps a game through a recording one tick at a time.
type Player struct {
	game registry.Game
	rec  Recording
	tick uint64
	next int
}

// NewPlayer validates rec and resets g with the recorded seed.
// The game must be a fresh instance of the recorded game ID.
func NewPlayer(g registry.Game, rec Recording) (*Player, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if g.ID() != rec.GameID {
		return nil, fmt.Errorf("replay: recording is for %q, not %q", rec.GameID, g.ID())
	}

	cfg := core.DefaultConfig()
	cfg.Seed = rec.Seed
	g.Reset(cfg)
	return &Player{game: g, rec: rec}, nil
}

// Step applies the inputs recorded before the current tick and runs it.
// After the last tick it applies any trailing inputs and returns false.
func (p *Player) Step() bool {
	p.applyInputs()
	if p.Done() {
		return false
	}
	p.game.Step()
	p.tick++
	if p.Done() {
		p.applyInputs()
	}
	return true
}

// Done reports whether every recorded tick has run.
func (p *Player) Done() bool {
	return p.tick >= p.rec.Ticks
}

// Tick returns how many ticks have run.
func (p *Player) Tick() uint64 {
	return p.tick
}

// Recording returns the recording being played.
func (p *Player) Recording() Recording {
	return p.rec
}

func (p *Player) applyInputs() {
	for p.next < len(p.rec.Events) && p.rec.Events[p.next].Tick == p.tick {
		p.game.HandleInput(p.rec.Events[p.next].Action)
		p.next++
	}
}

// Run plays rec to the end on g and returns the final state.
func Run(g registry.Game, rec Recording) (core.GameState, error) {
	p, err := NewPlayer(g, rec)
	if err != nil {
		return core.GameState{}, err
	}
	for p.Step() {
	}
	return g.State(), nil
}
