// Package backtrack implements the exhaustive fallback: an iterative
// depth-first search over the full knight-move tree with explicit undo.
// Unlike the heuristic solver it is complete — a failure here means no
// tour exists from the given start. It carries no randomness and no time
// bound; callers should gate its use by board size.
package backtrack

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/knightour/board"
)

// ErrNoTour means the entire search tree was explored without completing
// a tour. This is a definitive negative result for the start cell.
var ErrNoTour = errors.New("no knight's tour exists from this start")

// frame is one level of the explicit search stack: the placement order the
// frame is trying to fill, the cell it stands on, and how many of the 8
// moves it has already tried.
type frame struct {
	order  int
	pos    board.Position
	cursor int
}

// SolveExhaustive searches for a full tour of b starting at start. Moves
// are tried in fixed KnightMoves index order, so the result is fully
// deterministic. On success the board holds the complete tour and the
// returned path lists it in visiting order. On failure the board and path
// are reset to empty before returning.
func SolveExhaustive(b *board.Board, start board.Position) (board.Path, error) {
	dim := b.Dim()
	total := dim * dim

	b.Place(start, 0)
	path := make(board.Path, 0, total)
	path = append(path, start)
	stack := make([]frame, 1, total)
	stack[0] = frame{order: 1, pos: start}

	nodes := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.order == total {
			log.Debug().Int("nodes", nodes).Msg("exhaustive search found a tour")
			return path, nil
		}
		advanced := false
		for top.cursor < len(board.KnightMoves) {
			next := board.KnightMoves[top.cursor].Apply(top.pos)
			top.cursor++
			if b.IsLegal(next) {
				b.Place(next, top.order)
				path = append(path, next)
				stack = append(stack, frame{order: top.order + 1, pos: next})
				nodes++
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		// Dead branch: pop the frame and undo its placement so the parent
		// resumes on an unchanged board.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			last := path[len(path)-1]
			path = path[:len(path)-1]
			b.Unplace(last)
		}
	}

	// The whole tree was explored. Leave the caller a clean board rather
	// than the remnants of the root frame.
	b.Reset()
	log.Debug().Int("nodes", nodes).Msg("exhaustive search explored the full tree")
	return nil, ErrNoTour
}
