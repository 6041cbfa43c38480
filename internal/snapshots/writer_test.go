package snapshots

import (
	"os"
	"testing"
	"time"

	domainmatch "livescore-service/internal/domain/match"
)

func pinClock(w *Writer) {
	w.now = func() time.Time { return time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC) }
}

func TestWriterWritesAndReloads(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	pinClock(w)

	snap := domainmatch.NewDayResponse("2025-08-24", []domainmatch.Match{
		{ID: "b", League: "La Liga"},
		{ID: "a", League: "Premier League"},
	})
	if err := w.WriteMatchesSnapshot("2025-08-24", snap); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := NewFSStore(dir).LoadMatches("2025-08-24")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Date != "2025-08-24" || len(loaded.Matches) != 2 {
		t.Fatalf("unexpected payload: %+v", loaded)
	}
	// Writer sorts by ID for deterministic files.
	if loaded.Matches[0].ID != "a" || loaded.Matches[1].ID != "b" {
		t.Fatalf("expected id-sorted matches: %+v", loaded.Matches)
	}
}

func TestWriterIdempotentContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	pinClock(w)
	snap := domainmatch.NewDayResponse("2025-08-24", []domainmatch.Match{{ID: "a"}})

	if err := w.WriteMatchesSnapshot("2025-08-24", snap); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	first, err := os.ReadFile(MatchSnapshotPath(dir, "2025-08-24"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if err := w.WriteMatchesSnapshot("2025-08-24", snap); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second, err := os.ReadFile(MatchSnapshotPath(dir, "2025-08-24"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("identical snapshots must produce identical files")
	}
}

func TestWriterRejectsEmptyDate(t *testing.T) {
	w := NewWriter(t.TempDir(), 14)
	if err := w.WriteMatchesSnapshot("", domainmatch.DayResponse{}); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestWriterPrunesOldSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 7)
	pinClock(w)

	old := domainmatch.NewDayResponse("2000-01-01", nil)
	if err := w.WriteMatchesSnapshot("2000-01-01", old); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	recent := domainmatch.NewDayResponse("2025-08-24", nil)
	if err := w.WriteMatchesSnapshot("2025-08-24", recent); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := os.Stat(MatchSnapshotPath(dir, "2000-01-01")); !os.IsNotExist(err) {
		t.Fatal("expected ancient snapshot to be pruned")
	}
}
