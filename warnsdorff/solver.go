// Package warnsdorff implements the heuristic half of the tour search: a
// single-attempt greedy solver following Warnsdorff's rule (always hop to
// the reachable cell with the fewest onward moves), with pluggable
// tie-break strategies. It never backtracks; a dead end fails the attempt
// and the caller discards the board.
package warnsdorff

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/knightour/board"
)

// tieBreakRange bounds the random component added to scores. Kept well
// below 1 so it can never override a whole-number degree difference.
const tieBreakRange = 0.1

// progressInterval controls how often a long-running attempt logs progress.
const progressInterval = 500

// DeadEndError reports a heuristic attempt stranded before full coverage.
type DeadEndError struct {
	Pos  board.Position
	Step int
}

func (e *DeadEndError) Error() string {
	return fmt.Sprintf("dead end at step %d, position %v", e.Step, e.Pos)
}

// MoveTrace is the per-move diagnostic record kept for an attempt log.
type MoveTrace struct {
	Step     int            `json:"move_number" yaml:"move_number"`
	From     board.Position `json:"from" yaml:"from"`
	To       board.Position `json:"to" yaml:"to"`
	Degree   int            `json:"degree" yaml:"degree"`
	TieBreak float64        `json:"random_factor" yaml:"random_factor"`
	Options  int            `json:"total_options" yaml:"total_options"`
}

// Solver runs single heuristic attempts. It owns the random stream for the
// attempt; reseeding between attempts is the caller's job.
type Solver struct {
	rng   *frand.RNG
	trace []MoveTrace
}

// NewSolver creates a solver drawing tie-breaks from rng.
func NewSolver(rng *frand.RNG) *Solver {
	return &Solver{rng: rng}
}

// Trace returns the per-move diagnostics of the most recent SolveOnce call.
func (s *Solver) Trace() []MoveTrace {
	return s.trace
}

// SolveOnce attempts a full tour of b from start, evaluating the 8 knight
// moves in prefOrder at every step and picking the strategy's minimum
// score. It returns the complete path on success. On a dead end it returns
// a DeadEndError along with the partial path walked so far; the board and
// the partial path must be discarded by the caller once inspected.
func (s *Solver) SolveOnce(b *board.Board, start board.Position, prefOrder []int, strat Strategy) (board.Path, error) {
	dim := b.Dim()
	total := dim * dim
	s.trace = s.trace[:0]

	b.Place(start, 0)
	path := make(board.Path, 0, total)
	path = append(path, start)
	curr := start

	for step := 1; step < total; step++ {
		next, tr, ok := s.bestMove(b, curr, prefOrder, strat)
		if !ok {
			return path, &DeadEndError{Pos: curr, Step: step}
		}
		b.Place(next, step)
		path = append(path, next)
		tr.Step = step
		tr.From = curr
		tr.To = next
		s.trace = append(s.trace, tr)
		curr = next
		if step%progressInterval == 0 {
			log.Debug().Int("step", step).Int("total", total).Msg("tour progress")
		}
	}
	return path, nil
}

// bestMove scores every legal candidate reachable from curr and returns
// the minimum. The first strict minimum wins, so selection is
// deterministic given a fixed random stream.
func (s *Solver) bestMove(b *board.Board, curr board.Position, prefOrder []int, strat Strategy) (board.Position, MoveTrace, bool) {
	var (
		best      board.Position
		bestScore score
		tr        MoveTrace
		options   int
	)
	for _, prefIdx := range prefOrder {
		cand := board.KnightMoves[prefIdx].Apply(curr)
		if !b.IsLegal(cand) {
			continue
		}
		degree := b.Degree(cand)
		tieBreak := s.rng.Float64() * tieBreakRange
		sc := strat.scoreCandidate(b, cand, degree, tieBreak)
		if options == 0 || sc.less(bestScore) {
			best = cand
			bestScore = sc
			tr.Degree = degree
			tr.TieBreak = tieBreak
		}
		options++
	}
	if options == 0 {
		return board.Position{}, MoveTrace{}, false
	}
	tr.Options = options
	return best, tr, true
}
