package warnsdorff

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/knightour/board"
)

func seededRNG(seed byte) *frand.RNG {
	var s [32]byte
	s[0] = seed
	return frand.NewCustom(s[:], 1024, 12)
}

var identityOrder = []int{0, 1, 2, 3, 4, 5, 6, 7}

func TestSolveOnceDeterminism(t *testing.T) {
	is := is.New(t)
	run := func() (board.Path, error) {
		b := board.New(8)
		solver := NewSolver(seededRNG(42))
		return solver.SolveOnce(b, board.Position{Row: 0, Col: 0}, identityOrder, Random)
	}
	path1, err1 := run()
	path2, err2 := run()
	is.Equal(err1 == nil, err2 == nil)
	is.Equal(path1, path2)
}

func TestSolveOnceSuccessIsATour(t *testing.T) {
	is := is.New(t)
	// Warnsdorff is not guaranteed to complete, but whenever it does the
	// result must be a legal full tour.
	for seed := byte(0); seed < 10; seed++ {
		b := board.New(8)
		solver := NewSolver(seededRNG(seed))
		path, err := solver.SolveOnce(b, board.Position{Row: 0, Col: 0}, identityOrder, Random)
		if err != nil {
			var dead *DeadEndError
			is.True(errors.As(err, &dead))
			is.True(dead.Step < 64)
			continue
		}
		is.True(path.IsTour(8))
		is.Equal(len(solver.Trace()), 63)
	}
}

func TestSolveOnceDeadEndOn3x3(t *testing.T) {
	is := is.New(t)
	// The 3x3 board has no full tour from any start; every heuristic
	// attempt must strand before 9 placements.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b := board.New(3)
			solver := NewSolver(seededRNG(byte(row*3 + col)))
			_, err := solver.SolveOnce(b, board.Position{Row: row, Col: col}, identityOrder, CenterBias)
			var dead *DeadEndError
			is.True(errors.As(err, &dead))
			is.True(dead.Step < 9)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	is := is.New(t)
	lo := score{primary: 1, secondary: 5}
	hi := score{primary: 2, secondary: 0}
	is.True(lo.less(hi))     // primary dominates
	is.True(!hi.less(lo))
	tie := score{primary: 1, secondary: 4}
	is.True(tie.less(lo)) // secondary breaks primary ties
}

func TestStrategyScoring(t *testing.T) {
	is := is.New(t)
	b := board.New(8)

	// Equal degree: CenterBias must prefer the central candidate.
	central := board.Position{Row: 4, Col: 4}
	edge := board.Position{Row: 0, Col: 4}
	scCentral := CenterBias.scoreCandidate(b, central, 4, 0)
	scEdge := CenterBias.scoreCandidate(b, edge, 4, 0)
	is.True(scCentral.less(scEdge))

	// Equal degree: CornerBias must prefer the corner-proximate candidate.
	corner := board.Position{Row: 1, Col: 1}
	scCorner := CornerBias.scoreCandidate(b, corner, 4, 0)
	scCentral = CornerBias.scoreCandidate(b, central, 4, 0)
	is.True(scCorner.less(scCentral))

	// Any strategy: lower degree always wins regardless of geometry.
	scLowDeg := CenterBias.scoreCandidate(b, edge, 1, 0.09)
	scHighDeg := CenterBias.scoreCandidate(b, central, 2, 0)
	is.True(scLowDeg.less(scHighDeg))
}

func TestForAttemptCycle(t *testing.T) {
	is := is.New(t)
	is.Equal(ForAttempt(0), Random)
	is.Equal(ForAttempt(1), CenterBias)
	is.Equal(ForAttempt(2), CornerBias)
	is.Equal(ForAttempt(3), Random)
}
