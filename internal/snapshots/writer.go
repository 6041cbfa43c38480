package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/timeutil"
)

// Writer persists daily match snapshots with rolling-window pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMatchesSnapshot writes the snapshot for the given date
// (YYYY-MM-DD) and prunes snapshots older than the retention window.
// Matches are sorted by ID so identical data produces identical files.
func (w *Writer) WriteMatchesSnapshot(date string, snapshot domainmatch.DayResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.Matches, func(i, j int) bool {
		return snapshot.Matches[i].ID < snapshot.Matches[j].ID
	})

	target := MatchSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	// Unchanged content keeps the existing file (and its mtime).
	if existing, readErr := os.ReadFile(target); readErr == nil && bytes.Equal(existing, data) {
		return w.prune()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.prune()
}

func (w *Writer) prune() error {
	dates, err := listSnapshotDates(w.basePath)
	if err != nil {
		return err
	}

	cutoff := pruneCutoff(w.now().UTC(), w.retentionDays)
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(MatchSnapshotPath(w.basePath, d))
		}
	}
	return nil
}
