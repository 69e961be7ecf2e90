// Package runner drives multi-attempt heuristic search: it retries the
// Warnsdorff solver with varied strategies, seeds, and preference orders,
// deduplicates tours via path fingerprinting, and collects per-attempt
// records for the run report.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/knightour/board"
	"github.com/domino14/knightour/fingerprint"
	"github.com/domino14/knightour/warnsdorff"
)

var (
	// ErrAttemptsExhausted means the whole attempt budget was spent with no
	// novel successful tour. The caller may fall back to exhaustive search.
	ErrAttemptsExhausted = errors.New("all attempts failed or produced duplicate tours")

	// ErrInvalidStart rejects out-of-board start coordinates before any
	// search begins.
	ErrInvalidStart = errors.New("start position is outside the board")
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// TourRunner orchestrates heuristic attempts for one board size. Records
// and the fingerprint set persist for the lifetime of the runner; board
// and path state never survives an attempt.
type TourRunner struct {
	dim        int
	records    []AttemptRecord
	transcript []string
	seen       map[uint64]bool
}

// NewTourRunner creates a runner for a dim×dim board.
func NewTourRunner(dim int) (*TourRunner, error) {
	if dim < 1 {
		return nil, fmt.Errorf("board dimension must be positive, got %d", dim)
	}
	return &TourRunner{
		dim:  dim,
		seen: make(map[uint64]bool),
	}, nil
}

// Records returns the per-attempt log, one entry per attempt regardless of
// outcome, in chronological order.
func (r *TourRunner) Records() []AttemptRecord {
	return r.records
}

// Transcript returns the flat human-readable log of the run so far.
func (r *TourRunner) Transcript() []string {
	return r.transcript
}

func (r *TourRunner) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.transcript = append(r.transcript, msg)
	log.Debug().Msg(msg)
}

// SolveWithRetries runs up to maxAttempts heuristic attempts from start
// and returns the first novel tour found. Attempt i uses strategy i mod 3
// and a seed derived from i and the board size, so a rerun with identical
// arguments replays identical attempts. Duplicate tours are logged and
// count against the budget. Exhausting the budget returns
// ErrAttemptsExhausted.
func (r *TourRunner) SolveWithRetries(start board.Position, maxAttempts int) (board.Path, error) {
	if start.Row < 0 || start.Row >= r.dim || start.Col < 0 || start.Col >= r.dim {
		return nil, ErrInvalidStart
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("attempt budget must be positive, got %d", maxAttempts)
	}

	log.Info().Int("dim", r.dim).Int("maxAttempts", maxAttempts).
		Str("start", start.String()).Msg("starting heuristic search")

	for attempt := 0; attempt < maxAttempts; attempt++ {
		strat := warnsdorff.ForAttempt(attempt)
		seed, rng := attemptRNG(attempt, r.dim)
		prefOrder := rng.Perm(len(board.KnightMoves))

		r.logf("=== attempt #%d ===", attempt+1)
		r.logf("strategy: %s, seed: %d, move preferences: %v, start: %v",
			strat, seed, prefOrder, start)

		b := board.New(r.dim)
		solver := warnsdorff.NewSolver(rng)
		path, err := solver.SolveOnce(b, start, prefOrder, strat)

		rec := AttemptRecord{
			Attempt:         attempt + 1,
			Strategy:        strat.String(),
			Seed:            seed,
			PreferenceOrder: prefOrder,
			Start:           start,
			Timestamp:       time.Now().Format(timestampLayout),
			Successful:      err == nil,
			PathLength:      len(path),
			Moves:           solver.Trace(),
		}

		if err != nil {
			var dead *warnsdorff.DeadEndError
			if errors.As(err, &dead) {
				r.logf("attempt #%d failed: dead end at step %d, position %v",
					attempt+1, dead.Step, dead.Pos)
			} else {
				r.logf("attempt #%d failed: %v", attempt+1, err)
			}
			// Failed partial paths still feed the fingerprint set, so a
			// later "success" that merely replays a known prefix+suffix is
			// caught.
			if len(path) > 0 {
				r.seen[fingerprint.Tour(path)] = true
			}
			r.records = append(r.records, rec)
			continue
		}

		fp := fingerprint.Tour(path)
		rec.Fingerprint = fp
		if r.seen[fp] {
			rec.Duplicate = true
			r.records = append(r.records, rec)
			r.logf("attempt #%d found a duplicate tour, continuing", attempt+1)
			continue
		}
		r.seen[fp] = true
		r.records = append(r.records, rec)
		r.logf("success on attempt #%d with strategy %s", attempt+1, strat)
		log.Info().Int("attempt", attempt+1).Str("strategy", strat.String()).
			Msg("found a knight's tour")
		return path, nil
	}

	r.logf("all %d attempts failed or produced duplicate tours", maxAttempts)
	return nil, ErrAttemptsExhausted
}
