package tourio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/knightour/board"
	"github.com/domino14/knightour/runner"
)

func sampleRecords() []runner.AttemptRecord {
	return []runner.AttemptRecord{
		{
			Attempt:         1,
			Strategy:        "random",
			Seed:            8000,
			PreferenceOrder: []int{3, 1, 0, 2, 7, 6, 5, 4},
			Start:           board.Position{Row: 0, Col: 0},
			Timestamp:       "2026-08-29 12:00:00.000000",
			Successful:      true,
			PathLength:      64,
			Fingerprint:     0xdeadbeef,
		},
		{
			Attempt:    2,
			Strategy:   "center",
			Seed:       8001,
			Successful: false,
			PathLength: 40,
		},
	}
}

func TestWriteAttemptLogJSON(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), AttemptLogName(8, "json"))
	is.NoErr(WriteAttemptLog(sampleRecords(), path))

	data, err := os.ReadFile(path)
	is.NoErr(err)
	var back []runner.AttemptRecord
	is.NoErr(json.Unmarshal(data, &back))
	is.Equal(len(back), 2)
	is.Equal(back[0].Strategy, "random")
	is.Equal(back[0].PathLength, 64)
	is.Equal(back[1].Successful, false)
}

func TestWriteAttemptLogYAML(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), AttemptLogName(8, "yaml"))
	is.NoErr(WriteAttemptLog(sampleRecords(), path))

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(data), "strategy: random"))
}

func TestWriteTranscript(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), TranscriptName(5))
	lines := []string{"=== attempt #1 ===", "dead end at step 20"}
	is.NoErr(WriteTranscript(lines, path))

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(data), "=== attempt #1 ===\ndead end at step 20\n")
}

func TestConventionalNames(t *testing.T) {
	is := is.New(t)
	is.Equal(AttemptLogName(8, "json"), "knight_tour_8x8_logs.json")
	is.Equal(AttemptLogName(5, "YAML"), "knight_tour_5x5_logs.yaml")
	is.Equal(TranscriptName(8), "knight_tour_8x8_debug.txt")
}
