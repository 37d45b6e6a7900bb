package game

import "fmt"

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Coord identifies a cell by row and column. Row 0 is the top of the
// visible playfield; negative rows address the hidden buffer above it
// where pieces spawn and rotate.
type Coord struct {
	Row, Col int
}

type Cell struct {
	Filled bool
	Color  int
}

// Board is the fixed-size playfield. Dimensions never change after
// creation and every cell always holds a valid Cell value.
type Board struct {
	cells  [][]Cell
	width  int
	height int
}

func NewBoard() *Board {
	return NewBoardSize(BoardWidth, BoardHeight)
}

// NewBoardSize creates an empty width x height board. It panics on
// non-positive dimensions.
func NewBoardSize(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid board dimensions %dx%d", width, height))
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		cells:  cells,
		width:  width,
		height: height,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// CellAt returns the cell at (row, col). Hidden buffer rows read as empty.
func (b *Board) CellAt(row, col int) Cell {
	if row < 0 {
		return Cell{}
	}
	return b.cells[row][col]
}

// IsFree reports whether every coordinate lies inside the playfield (or
// the hidden buffer above it) and is currently empty.
func (b *Board) IsFree(cells []Coord) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= b.width {
			return false
		}
		if c.Row >= b.height {
			return false
		}
		if c.Row >= 0 && b.cells[c.Row][c.Col].Filled {
			return false
		}
	}
	return true
}

// Place marks the given coordinates filled with the given color. Callers
// must have checked IsFree first; coordinates still in the hidden buffer
// are dropped.
func (b *Board) Place(cells []Coord, color int) {
	for _, c := range cells {
		if c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width {
			b.cells[c.Row][c.Col] = Cell{Filled: true, Color: color}
		}
	}
}

// FullRows returns the indices of completely filled rows in ascending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		full := true
		for x := 0; x < b.width; x++ {
			if !b.cells[y][x].Filled {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows in a single compaction pass: surviving
// rows keep their relative order and fresh empty rows enter at the top.
// Row indices refer to the grid before removal.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		drop[r] = true
	}

	kept := make([][]Cell, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !drop[y] {
			kept = append(kept, b.cells[y])
		}
	}

	fresh := make([][]Cell, 0, b.height)
	for len(fresh)+len(kept) < b.height {
		fresh = append(fresh, make([]Cell, b.width))
	}
	b.cells = append(fresh, kept...)
}

// spawnRegion is the band of cells a spawn bounding box can cover: the top
// two visible rows across the centered four columns.
const (
	spawnRegionRows = 2
	spawnRegionLeft = BoardWidth/2 - 2
	spawnRegionCols = 4
)

// TopOut reports whether the visible spawn region is obstructed, which
// ends the game before the next piece is placed.
func (b *Board) TopOut() bool {
	for y := 0; y < spawnRegionRows && y < b.height; y++ {
		for x := spawnRegionLeft; x < spawnRegionLeft+spawnRegionCols && x < b.width; x++ {
			if b.cells[y][x].Filled {
				return true
			}
		}
	}
	return false
}

// Grid returns a defensive copy of the visible playfield.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.height)
	for y := range b.cells {
		grid[y] = make([]Cell, b.width)
		copy(grid[y], b.cells[y])
	}
	return grid
}
