package game

import "fmt"

type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	shapeCount
)

func (s Shape) String() string {
	names := [...]string{"I", "O", "T", "S", "Z", "J", "L"}
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return names[s]
}

// Color returns the ANSI color index used when rendering the shape.
func (s Shape) Color() int { return shapes[s].color }

// Cells returns the shape's spawn-orientation cell offsets relative to
// its bounding-box origin. Used for preview rendering.
func (s Shape) Cells() []Coord {
	return append([]Coord(nil), shapes[s].orientations[0][:]...)
}

// BoxSize returns the side length of the shape's rotation bounding box.
func (s Shape) BoxSize() int { return shapes[s].size }

type shapeInfo struct {
	size         int
	color        int
	spawnRow     int
	orientations [4][4]Coord
}

var shapes [shapeCount]shapeInfo

// shapeLayouts holds each shape's spawn orientation as offsets inside its
// bounding box. The other three orientations are derived at init by
// rotating the box clockwise.
var shapeLayouts = [shapeCount]struct {
	size  int
	color int
	cells [4]Coord
}{
	ShapeI: {4, 6, [4]Coord{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
	ShapeO: {2, 3, [4]Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	ShapeT: {3, 5, [4]Coord{{0, 1}, {1, 0}, {1, 1}, {1, 2}}},
	ShapeS: {3, 2, [4]Coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
	ShapeZ: {3, 1, [4]Coord{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	ShapeJ: {3, 4, [4]Coord{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
	ShapeL: {3, 7, [4]Coord{{0, 2}, {1, 0}, {1, 1}, {1, 2}}},
}

func init() {
	for s := range shapeLayouts {
		l := shapeLayouts[s]
		info := shapeInfo{size: l.size, color: l.color}

		cells := l.cells
		for o := 0; o < 4; o++ {
			validateOrientation(Shape(s), o, l.size, cells)
			info.orientations[o] = cells
			cells = rotateBoxCW(cells, l.size)
		}

		top := l.size
		for _, c := range info.orientations[0] {
			if c.Row < top {
				top = c.Row
			}
		}
		// Spawn with the topmost occupied cells on row 0.
		info.spawnRow = -top

		shapes[s] = info
	}
}

// rotateBoxCW rotates cell offsets a quarter turn clockwise inside an
// n x n bounding box.
func rotateBoxCW(cells [4]Coord, n int) [4]Coord {
	var out [4]Coord
	for i, c := range cells {
		out[i] = Coord{Row: c.Col, Col: n - 1 - c.Row}
	}
	return out
}

func validateOrientation(s Shape, o, size int, cells [4]Coord) {
	seen := make(map[Coord]bool, 4)
	for _, c := range cells {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			panic(fmt.Sprintf("game: shape %v orientation %d cell %v outside %dx%d box", s, o, c, size, size))
		}
		if seen[c] {
			panic(fmt.Sprintf("game: shape %v orientation %d has duplicate cell %v", s, o, c))
		}
		seen[c] = true
	}
}
