package game

import (
	"fmt"
	"time"
)

// Phase tags where the state machine is between events. Intermediate
// phases (Spawning, Locking, Clearing) are passed through synchronously
// while an event is processed; between events the game is either Falling
// or GameOver.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

func (p Phase) String() string {
	names := [...]string{"Spawning", "Falling", "Locking", "Clearing", "GameOver"}
	if p < 0 || int(p) >= len(names) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return names[p]
}

// Command is a discrete player input delivered by the input adapter.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdRotateCW
	CmdRotateCCW
	CmdSoftDrop
	CmdHardDrop
	CmdHold
	CmdRestart
)

// Game owns the board, the active and queued pieces and all scoring
// state. It is driven entirely by HandleTick and HandleCommand; each call
// runs its transition chain to completion before returning, so no partial
// state is ever observable. Not safe for concurrent use.
type Game struct {
	board      *Board
	gen        *PieceGenerator
	active     Piece
	next       Shape
	held       Shape
	hasHeld    bool
	canHold    bool
	score      int
	lines      int
	level      int
	startLevel int
	phase      Phase
}

// New creates a game starting at level 0.
func New(seed int64) *Game {
	return NewAtLevel(seed, 0)
}

// NewAtLevel creates a game whose level counts up from startLevel. It
// panics on a negative start level.
func NewAtLevel(seed int64, startLevel int) *Game {
	if startLevel < 0 {
		panic(fmt.Sprintf("game: negative start level %d", startLevel))
	}
	g := &Game{
		gen:        NewPieceGenerator(seed),
		startLevel: startLevel,
	}
	g.reset()
	return g
}

// reset reinitializes board, bag and all per-run state, then spawns the
// first piece.
func (g *Game) reset() {
	g.board = NewBoard()
	g.gen.Reset()
	g.next = g.gen.Next()
	g.hasHeld = false
	g.canHold = true
	g.score = 0
	g.lines = 0
	g.level = g.startLevel
	g.spawn()
}

// HandleTick advances gravity by one step: the active piece moves down or,
// if it cannot, locks into the board.
func (g *Game) HandleTick() {
	if g.phase != PhaseFalling {
		return
	}
	if moved, ok := g.active.TryMove(g.board, 1, 0); ok {
		g.active = moved
		return
	}
	g.lock()
}

// HandleCommand applies a player command. Blocked movements and rotations
// are silent no-ops. In GameOver only Restart is honored.
func (g *Game) HandleCommand(cmd Command) {
	if cmd == CmdRestart {
		g.reset()
		return
	}
	if g.phase != PhaseFalling {
		return
	}
	switch cmd {
	case CmdMoveLeft:
		g.shift(0, -1)
	case CmdMoveRight:
		g.shift(0, 1)
	case CmdSoftDrop:
		g.shift(1, 0)
	case CmdRotateCW:
		g.rotate(RotateCW)
	case CmdRotateCCW:
		g.rotate(RotateCCW)
	case CmdHardDrop:
		g.active = g.active.HardDrop(g.board)
		g.lock()
	case CmdHold:
		g.holdPiece()
	}
}

func (g *Game) shift(dRow, dCol int) {
	if moved, ok := g.active.TryMove(g.board, dRow, dCol); ok {
		g.active = moved
	}
}

func (g *Game) rotate(dir RotationDir) {
	if rotated, ok := g.active.TryRotate(g.board, dir); ok {
		g.active = rotated
	}
}

// lock commits the active piece, clears any completed rows and spawns the
// next piece.
func (g *Game) lock() {
	g.phase = PhaseLocking
	g.board.Place(g.active.Cells(), g.active.Color())
	if rows := g.board.FullRows(); len(rows) > 0 {
		g.clear(rows)
	}
	g.spawn()
}

func (g *Game) clear(rows []int) {
	g.phase = PhaseClearing
	g.board.ClearRows(rows)
	g.lines += len(rows)
	g.score += clearScore(len(rows), g.level)
	g.level = g.startLevel + g.lines/10
}

// spawn takes the preview shape as the new active piece. An obstructed
// spawn region ends the game.
func (g *Game) spawn() {
	g.phase = PhaseSpawning
	if g.board.TopOut() {
		g.phase = PhaseGameOver
		return
	}
	p := NewPiece(g.next)
	if !g.board.IsFree(p.Cells()) {
		g.phase = PhaseGameOver
		return
	}
	g.active = p
	g.next = g.gen.Next()
	g.canHold = true
	g.phase = PhaseFalling
}

// holdPiece stashes the active shape, swapping with a previously held one.
// Allowed once per spawn.
func (g *Game) holdPiece() {
	if !g.canHold {
		return
	}

	incoming := g.next
	fromQueue := true
	if g.hasHeld {
		incoming = g.held
		fromQueue = false
	}

	p := NewPiece(incoming)
	if !g.board.IsFree(p.Cells()) {
		return
	}

	g.held = g.active.Shape
	g.hasHeld = true
	g.canHold = false
	g.active = p
	if fromQueue {
		g.next = g.gen.Next()
	}
}

// clearScores awards super-linearly with simultaneous row count, scaled by
// level+1 (guideline single/double/triple/tetris values).
var clearScores = [...]int{0, 100, 300, 500, 800}

func clearScore(rows, level int) int {
	if rows <= 0 || rows >= len(clearScores) {
		return 0
	}
	return clearScores[rows] * (level + 1)
}

// fallIntervals maps level to gravity cadence. Decreasing with
// diminishing returns; levels past the end stay at the floor.
var fallIntervals = []time.Duration{
	800 * time.Millisecond,
	720 * time.Millisecond,
	630 * time.Millisecond,
	550 * time.Millisecond,
	470 * time.Millisecond,
	380 * time.Millisecond,
	300 * time.Millisecond,
	220 * time.Millisecond,
	130 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond,
	80 * time.Millisecond,
	80 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond,
	50 * time.Millisecond,
	50 * time.Millisecond,
	50 * time.Millisecond,
	30 * time.Millisecond,
}

// FallInterval returns the current gravity cadence. The clock adapter
// must re-read it after every event, since clears can change the level.
func (g *Game) FallInterval() time.Duration {
	if g.level >= len(fallIntervals) {
		return fallIntervals[len(fallIntervals)-1]
	}
	return fallIntervals[g.level]
}
