// Package export writes the labeled dataset produced by a run.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tagpulse/internal/types"
)

// timestampFormat is the UTC timestamp embedded in export filenames.
const timestampFormat = "20060102-150405"

// Filename builds the export filename for a prefix at a point in time:
// <prefix>_YYYYMMDD-HHMMSS.csv, with the timestamp in UTC.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.UTC().Format(timestampFormat))
}

// WriteCSV writes classified posts to a timestamped CSV file in dir with
// header handle,text,stance. A run with zero posts still produces a
// header-only file. Returns the path of the written file.
func WriteCSV(dir, prefix string, posts []types.ClassifiedPost) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(prefix, time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"handle", "text", "stance"}); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range posts {
		if err := w.Write([]string{p.AuthorHandle, p.Text, string(p.Stance)}); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return path, nil
}
