package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/knightour/backtrack"
	"github.com/domino14/knightour/board"
	"github.com/domino14/knightour/config"
	"github.com/domino14/knightour/runner"
	"github.com/domino14/knightour/tourio"
)

func main() {
	cfg := config.New()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing arguments")
	}

	var logger zerolog.Logger
	if cfg.Verbose() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	}
	log.Logger = logger
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	dim := cfg.Size()
	start := board.Position{Row: cfg.StartRow(), Col: cfg.StartCol()}
	if dim < 1 {
		log.Fatal().Int("size", dim).Msg("board size must be positive")
	}
	if start.Row < 0 || start.Row >= dim || start.Col < 0 || start.Col >= dim {
		log.Fatal().Str("start", start.String()).Int("size", dim).
			Msgf("start coordinates must be between 0 and %d", dim-1)
	}

	r, err := runner.NewTourRunner(dim)
	if err != nil {
		log.Fatal().Err(err).Msg("creating runner")
	}

	log.Info().Msgf("searching a %dx%d board from %v with %d heuristic attempts",
		dim, dim, start, cfg.Attempts())
	path, err := r.SolveWithRetries(start, cfg.Attempts())
	switch {
	case err == nil:
		// Found heuristically.
	case errors.Is(err, runner.ErrAttemptsExhausted):
		if dim <= cfg.BacktrackLimit() {
			log.Info().Msg("heuristic attempts exhausted, falling back to exhaustive backtracking")
			path, err = backtrack.SolveExhaustive(board.New(dim), start)
			if errors.Is(err, backtrack.ErrNoTour) {
				log.Info().Msgf("no knight's tour exists from %v on a %dx%d board", start, dim, dim)
			} else if err != nil {
				log.Fatal().Err(err).Msg("exhaustive search")
			}
		} else {
			log.Info().Msgf("board too large (%dx%d) for the exhaustive fallback", dim, dim)
		}
	default:
		log.Fatal().Err(err).Msg("heuristic search")
	}

	printStrategyReport(r)

	if cfg.SaveLogs() {
		statsPath := filepath.Join(cfg.LogDir(), tourio.AttemptLogName(dim, cfg.LogFormat()))
		if werr := tourio.WriteAttemptLog(r.Records(), statsPath); werr != nil {
			log.Error().Err(werr).Msg("saving attempt log")
		} else {
			log.Info().Str("path", statsPath).Msg("saved attempt log")
		}
		debugPath := filepath.Join(cfg.LogDir(), tourio.TranscriptName(dim))
		if werr := tourio.WriteTranscript(r.Transcript(), debugPath); werr != nil {
			log.Error().Err(werr).Msg("saving transcript")
		} else {
			log.Info().Str("path", debugPath).Msg("saved transcript")
		}
	}

	if path == nil {
		os.Exit(1)
	}
	printSolution(dim, path)
}

// printSolution rebuilds a board from the final path and prints both the
// visit-order matrix and the move sequence in chess notation.
func printSolution(dim int, path board.Path) {
	b := board.New(dim)
	for order, pos := range path {
		b.Place(pos, order)
	}
	fmt.Println("Knight's tour:")
	fmt.Print(b.ToDisplayText())
	fmt.Println()
	fmt.Println("Move sequence:", path.ChessNotation(dim))
}

func printStrategyReport(r *runner.TourRunner) {
	report := r.Report()
	if report.TotalAttempts == 0 {
		return
	}
	fmt.Printf("\nStrategy performance over %d attempts:\n", report.TotalAttempts)
	for _, sr := range report.PerStrategy {
		fmt.Printf("  %-8s attempts: %-3d successes: %-3d (%.1f%%)  mean path length: %.1f\n",
			sr.Strategy, sr.Attempts, sr.Successes, sr.SuccessRate*100, sr.MeanPathLength)
	}
}
