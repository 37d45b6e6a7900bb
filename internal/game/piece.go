package game

// Piece is the active tetromino: a shape, one of four orientations and
// the board position of its bounding-box origin.
type Piece struct {
	Shape       Shape
	Orientation int
	Row, Col    int
}

// NewPiece spawns the shape top-centered in orientation 0, with its
// highest occupied cells on row 0.
func NewPiece(s Shape) Piece {
	info := shapes[s]
	return Piece{
		Shape: s,
		Row:   info.spawnRow,
		Col:   (BoardWidth - info.size) / 2,
	}
}

// Cells returns the board coordinates occupied by the piece. Pure: two
// calls on the same piece yield the same result.
func (p Piece) Cells() []Coord {
	offs := shapes[p.Shape].orientations[p.Orientation]
	cells := make([]Coord, len(offs))
	for i, o := range offs {
		cells[i] = Coord{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return cells
}

func (p Piece) Color() int { return p.Shape.Color() }

// TryMove returns the piece translated by (dRow, dCol) if every resulting
// cell is free. A blocked move returns the piece unchanged and false.
func (p Piece) TryMove(b *Board, dRow, dCol int) (Piece, bool) {
	moved := p
	moved.Row += dRow
	moved.Col += dCol
	if !b.IsFree(moved.Cells()) {
		return p, false
	}
	return moved, true
}

// HardDrop returns the piece advanced straight down to its resting
// position.
func (p Piece) HardDrop(b *Board) Piece {
	for {
		moved, ok := p.TryMove(b, 1, 0)
		if !ok {
			return p
		}
		p = moved
	}
}

type RotationDir int

const (
	RotateCW RotationDir = iota
	RotateCCW
)

// TryRotate returns the piece turned a quarter in the given direction,
// nudged by the first wall-kick candidate that lands on free cells. If no
// candidate fits, the piece is returned unchanged and false.
func (p Piece) TryRotate(b *Board, dir RotationDir) (Piece, bool) {
	next := p
	if dir == RotateCW {
		next.Orientation = (p.Orientation + 1) % 4
	} else {
		next.Orientation = (p.Orientation + 3) % 4
	}
	for _, k := range kickCandidates(p.Shape, p.Orientation, dir) {
		cand := next
		cand.Row += k.Row
		cand.Col += k.Col
		if b.IsFree(cand.Cells()) {
			return cand, true
		}
	}
	return p, false
}

type kickKey struct {
	from int
	dir  RotationDir
}

// Wall-kick candidates per SRS (https://tetris.wiki/Super_Rotation_System),
// translated to (row, col) deltas with row growing downward. Keyed by the
// orientation the rotation starts from. J, L, S, T and Z share one table;
// I has its own wider one; O turns in place and needs none.
var jlstzKicks = map[kickKey][]Coord{
	{0, RotateCW}:  {{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{1, RotateCW}:  {{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{2, RotateCW}:  {{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	{3, RotateCW}:  {{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	{0, RotateCCW}: {{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	{1, RotateCCW}: {{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{2, RotateCCW}: {{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{3, RotateCCW}: {{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
}

var iKicks = map[kickKey][]Coord{
	{0, RotateCW}:  {{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{1, RotateCW}:  {{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	{2, RotateCW}:  {{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{3, RotateCW}:  {{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{0, RotateCCW}: {{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	{1, RotateCCW}: {{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{2, RotateCCW}: {{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{3, RotateCCW}: {{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}},
}

var oKicks = []Coord{{0, 0}}

func kickCandidates(s Shape, from int, dir RotationDir) []Coord {
	switch s {
	case ShapeO:
		return oKicks
	case ShapeI:
		return iKicks[kickKey{from, dir}]
	default:
		return jlstzKicks[kickKey{from, dir}]
	}
}
