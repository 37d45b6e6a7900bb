package game

import "time"

// Snapshot is a read-only copy of the observable game state, handed to
// the renderer. Mutating it has no effect on the running game.
type Snapshot struct {
	Board       [][]Cell
	Active      []Coord
	ActiveColor int
	Ghost       []Coord
	Next        Shape
	Held        Shape
	HasHeld     bool
	Score       int
	Lines       int
	Level       int
	Phase       Phase

	// FallInterval is the gravity cadence the clock adapter should
	// schedule the next tick at.
	FallInterval time.Duration
}

// Snapshot captures the current state. The active and ghost cell lists
// are empty once the game is over.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Board:        g.board.Grid(),
		Next:         g.next,
		Held:         g.held,
		HasHeld:      g.hasHeld,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Phase:        g.phase,
		FallInterval: g.FallInterval(),
	}
	if g.phase != PhaseGameOver {
		snap.Active = g.active.Cells()
		snap.ActiveColor = g.active.Color()
		snap.Ghost = g.active.HardDrop(g.board).Cells()
	}
	return snap
}
