package backtrack

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/knightour/board"
)

func TestSolveExhaustive5x5(t *testing.T) {
	is := is.New(t)
	b := board.New(5)
	path, err := SolveExhaustive(b, board.Position{Row: 0, Col: 0})
	is.NoErr(err)
	is.True(path.IsTour(5))
	is.Equal(len(path), 25)
	// Board must agree with the path on every visit order.
	for order, pos := range path {
		is.Equal(b.At(pos), int16(order))
	}
}

func TestSolveExhaustiveDeterminism(t *testing.T) {
	is := is.New(t)
	b1 := board.New(5)
	b2 := board.New(5)
	path1, err1 := SolveExhaustive(b1, board.Position{Row: 0, Col: 0})
	path2, err2 := SolveExhaustive(b2, board.Position{Row: 0, Col: 0})
	is.NoErr(err1)
	is.NoErr(err2)
	is.Equal(path1, path2)
}

func TestNoTourOn3x3(t *testing.T) {
	is := is.New(t)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b := board.New(3)
			path, err := SolveExhaustive(b, board.Position{Row: row, Col: col})
			is.Equal(err, ErrNoTour)
			is.Equal(len(path), 0)
			// A negative result must leave a pristine board.
			is.True(b.IsEmpty())
		}
	}
}

func TestNoTourOn4x4(t *testing.T) {
	is := is.New(t)
	// The 4x4 board has no open tour from any start cell.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			b := board.New(4)
			_, err := SolveExhaustive(b, board.Position{Row: row, Col: col})
			is.Equal(err, ErrNoTour)
			is.True(b.IsEmpty())
		}
	}
}
