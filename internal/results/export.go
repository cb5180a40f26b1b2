package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Filename returns the export file name for a summary, derived from its
// finish timestamp: quiz_results_YYYYMMDD_HHMMSS.json.
func Filename(sum Summary) string {
	return fmt.Sprintf("quiz_results_%s.json", sum.FinishedAt.Format("20060102_150405"))
}

// Write serializes a summary as indented JSON to w.
func Write(w io.Writer, sum Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}

// Save writes the summary to a timestamped file under dir, creating the
// directory if needed. Returns the path of the written file.
func Save(dir string, sum Summary) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(dir, Filename(sum))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	if err := Write(f, sum); err != nil {
		return "", err
	}
	return path, nil
}

// DefaultDir resolves the results directory: the QUIZDECK_RESULTS_DIR
// environment variable when set, otherwise the current directory.
func DefaultDir() string {
	if d := os.Getenv("QUIZDECK_RESULTS_DIR"); d != "" {
		return d
	}
	return "."
}
