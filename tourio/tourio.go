// Package tourio persists run artifacts: the structured attempt log
// (JSON or YAML) and the plain-text diagnostic transcript. It lives
// outside the solver packages on purpose — nothing here runs during a
// search, only after a terminal result.
package tourio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/knightour/runner"
)

// AttemptLogName returns the conventional stats filename for a board size,
// e.g. "knight_tour_8x8_logs.json".
func AttemptLogName(dim int, format string) string {
	ext := "json"
	if strings.EqualFold(format, "yaml") {
		ext = "yaml"
	}
	return fmt.Sprintf("knight_tour_%dx%d_logs.%s", dim, dim, ext)
}

// TranscriptName returns the conventional transcript filename for a board
// size, e.g. "knight_tour_8x8_debug.txt".
func TranscriptName(dim int) string {
	return fmt.Sprintf("knight_tour_%dx%d_debug.txt", dim, dim)
}

// WriteAttemptLog serializes records to path. The format follows the file
// extension: .yaml/.yml for YAML, anything else JSON.
func WriteAttemptLog(records []runner.AttemptRecord, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(records)
	default:
		data, err = json.MarshalIndent(records, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshaling attempt log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing attempt log: %w", err)
	}
	return nil
}

// WriteTranscript writes the chronological log lines to path, one per line.
func WriteTranscript(lines []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
	}
	return w.Flush()
}
