package warnsdorff

import (
	"github.com/domino14/knightour/board"
)

// Strategy selects the tie-break policy layered on top of Warnsdorff's
// rule. The degree of the candidate cell always dominates; strategies only
// differ in how equal-degree candidates are ordered.
type Strategy uint8

const (
	Random Strategy = iota
	CenterBias
	CornerBias
)

// NumStrategies is the cycle length the multi-attempt runner uses when
// assigning a strategy per attempt index.
const NumStrategies = 3

func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case CenterBias:
		return "center"
	case CornerBias:
		return "corners"
	}
	return "unknown"
}

// ForAttempt cycles Random → CenterBias → CornerBias by attempt index.
func ForAttempt(attempt int) Strategy {
	return Strategy(attempt % NumStrategies)
}

// score is an orderable two-part value; lower wins. Comparison is
// lexicographic, primary first.
type score struct {
	primary   float64
	secondary float64
}

func (s score) less(other score) bool {
	if s.primary != other.primary {
		return s.primary < other.primary
	}
	return s.secondary < other.secondary
}

// scoreCandidate combines a candidate's degree and a fresh random
// tie-break in [0, 0.1) into a score. Every strategy folds the tie-break
// in so that candidate ordering is total given a fixed random stream.
func (s Strategy) scoreCandidate(b *board.Board, cand board.Position, degree int, tieBreak float64) score {
	switch s {
	case CenterBias:
		center := b.Dim() / 2
		dist := abs(cand.Row-center) + abs(cand.Col-center)
		return score{primary: float64(degree), secondary: float64(dist) + tieBreak}
	case CornerBias:
		return score{primary: float64(degree), secondary: -float64(minCornerDistance(b.Dim(), cand)) + tieBreak}
	default:
		return score{primary: float64(degree) + tieBreak}
	}
}

// minCornerDistance is the smallest manhattan distance from cand to any of
// the four board corners.
func minCornerDistance(dim int, cand board.Position) int {
	last := dim - 1
	corners := [4]board.Position{{Row: 0, Col: 0}, {Row: 0, Col: last}, {Row: last, Col: 0}, {Row: last, Col: last}}
	min := 2 * dim
	for _, c := range corners {
		d := abs(cand.Row-c.Row) + abs(cand.Col-c.Col)
		if d < min {
			min = d
		}
	}
	return min
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
