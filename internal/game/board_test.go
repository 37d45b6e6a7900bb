package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, row int) {
	for x := 0; x < b.width; x++ {
		b.cells[row][x] = Cell{Filled: true, Color: 1}
	}
}

func filledCount(b *Board) int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

func TestNewBoardSizePanicsOnBadDimensions(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 20},
		{10, 0},
		{-1, 20},
		{10, -5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			assert.Panics(t, func() { NewBoardSize(tt.width, tt.height) })
		})
	}
}

func TestIsFree(t *testing.T) {
	b := NewBoard()
	b.cells[10][4] = Cell{Filled: true, Color: 2}

	tests := []struct {
		name  string
		cells []Coord
		want  bool
	}{
		{"empty interior", []Coord{{5, 5}, {6, 5}}, true},
		{"hidden buffer above row 0", []Coord{{-1, 3}, {-2, 6}}, true},
		{"left of board", []Coord{{5, -1}}, false},
		{"right of board", []Coord{{5, BoardWidth}}, false},
		{"below floor", []Coord{{BoardHeight, 0}}, false},
		{"occupied cell", []Coord{{10, 4}}, false},
		{"one bad cell rejects the set", []Coord{{0, 0}, {10, 4}}, false},
		{"buffer cell with bad column", []Coord{{-1, -1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsFree(tt.cells))
		})
	}
}

func TestPlaceAndFullRows(t *testing.T) {
	b := NewBoard()

	var bottom []Coord
	for x := 0; x < BoardWidth; x++ {
		bottom = append(bottom, Coord{BoardHeight - 1, x})
	}
	b.Place(bottom, 3)

	assert.Equal(t, []int{BoardHeight - 1}, b.FullRows())
	assert.Equal(t, Cell{Filled: true, Color: 3}, b.CellAt(BoardHeight-1, 0))

	// Cells still in the hidden buffer are dropped, not stored.
	b.Place([]Coord{{-1, 0}}, 3)
	assert.Equal(t, BoardWidth, filledCount(b))
}

func TestFullRowsAscending(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 5)
	fillRow(b, 12)

	assert.Equal(t, []int{5, 12, 19}, b.FullRows())
}

// Clearing k full rows removes exactly k*W filled cells and keeps the
// surviving rows in their relative vertical order.
func TestClearRowsCompaction(t *testing.T) {
	b := NewBoard()

	// Distinct colors mark the rows that must survive.
	b.cells[15][0] = Cell{Filled: true, Color: 4}
	b.cells[17][0] = Cell{Filled: true, Color: 5}
	fillRow(b, 16)
	fillRow(b, 18)
	fillRow(b, 19)

	before := filledCount(b)
	b.ClearRows([]int{16, 18, 19})

	assert.Equal(t, before-3*BoardWidth, filledCount(b))

	// Row 15 fell by three cleared rows below it, row 17 by two.
	assert.Equal(t, Cell{Filled: true, Color: 4}, b.CellAt(18, 0))
	assert.Equal(t, Cell{Filled: true, Color: 5}, b.CellAt(19, 0))
	assert.Empty(t, b.FullRows())

	for y := 0; y < 18; y++ {
		for x := 1; x < BoardWidth; x++ {
			assert.False(t, b.cells[y][x].Filled, "row %d col %d should be empty", y, x)
		}
	}
}

func TestClearRowsSingle(t *testing.T) {
	b := NewBoard()
	for x := 0; x < BoardWidth; x++ {
		if x != 5 {
			b.cells[19][x] = Cell{Filled: true, Color: 1}
		}
	}
	b.cells[18][2] = Cell{Filled: true, Color: 7}

	// Lock the missing cell; row 19 completes.
	b.Place([]Coord{{19, 5}}, 1)
	rows := b.FullRows()
	require.Equal(t, []int{19}, rows)

	b.ClearRows(rows)

	// The row above shifted down by one; nothing else survives.
	for x := 0; x < BoardWidth; x++ {
		assert.Equal(t, x == 2, b.cells[19][x].Filled, "col %d", x)
	}
	assert.Equal(t, Cell{Filled: true, Color: 7}, b.CellAt(19, 2))
	assert.Equal(t, 1, filledCount(b))
}

func TestClearRowsEmptySetIsNoop(t *testing.T) {
	b := NewBoard()
	b.cells[10][3] = Cell{Filled: true, Color: 2}
	b.ClearRows(nil)
	assert.Equal(t, Cell{Filled: true, Color: 2}, b.CellAt(10, 3))
}

func TestTopOut(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.TopOut())

	// Filled cells outside the spawn region do not top out.
	b.cells[0][0] = Cell{Filled: true, Color: 1}
	b.cells[5][5] = Cell{Filled: true, Color: 1}
	assert.False(t, b.TopOut())

	b.cells[1][4] = Cell{Filled: true, Color: 1}
	assert.True(t, b.TopOut())
}

func TestGridIsDefensiveCopy(t *testing.T) {
	b := NewBoard()
	grid := b.Grid()
	grid[0][0] = Cell{Filled: true, Color: 9}
	assert.False(t, b.CellAt(0, 0).Filled)
}
