package game

import "math/rand"

// PieceGenerator produces shapes using the 7-bag randomizer: every shape
// appears exactly once per bag cycle, so repeats are at most 12 draws
// apart. Two generators created with the same seed produce identical
// sequences.
type PieceGenerator struct {
	rng *rand.Rand
	bag []Shape
}

// NewPieceGenerator creates a seeded 7-bag generator.
func NewPieceGenerator(seed int64) *PieceGenerator {
	return &PieceGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next pops the next shape, refilling the bag with a fresh permutation
// when it runs out.
func (pg *PieceGenerator) Next() Shape {
	if len(pg.bag) == 0 {
		pg.refill()
	}
	s := pg.bag[0]
	pg.bag = pg.bag[1:]
	return s
}

// Peek returns the next shape without consuming it.
func (pg *PieceGenerator) Peek() Shape {
	if len(pg.bag) == 0 {
		pg.refill()
	}
	return pg.bag[0]
}

// Reset discards the remainder of the current bag so the next draw comes
// from a fresh permutation.
func (pg *PieceGenerator) Reset() {
	pg.bag = nil
}

func (pg *PieceGenerator) refill() {
	pg.bag = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
	// Fisher-Yates shuffle
	for i := len(pg.bag) - 1; i > 0; i-- {
		j := pg.rng.Intn(i + 1)
		pg.bag[i], pg.bag[j] = pg.bag[j], pg.bag[i]
	}
}
