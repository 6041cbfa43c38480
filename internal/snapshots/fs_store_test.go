package snapshots

import (
	"testing"

	domainmatch "livescore-service/internal/domain/match"
)

func writeDay(t *testing.T, w *Writer, date string, ids ...string) {
	t.Helper()
	var ms []domainmatch.Match
	for _, id := range ids {
		ms = append(ms, domainmatch.Match{ID: id, Date: date})
	}
	if err := w.WriteMatchesSnapshot(date, domainmatch.NewDayResponse(date, ms)); err != nil {
		t.Fatalf("write %s failed: %v", date, err)
	}
}

func TestLoadMatchesMissingFile(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, err := s.LoadMatches("2025-08-24"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestLoadMonthCollectsOnlyThatMonth(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 3650)
	pinClock(w)
	writeDay(t, w, "2025-08-01", "a")
	writeDay(t, w, "2025-08-24", "b", "c")
	writeDay(t, w, "2025-07-31", "d")

	got, err := NewFSStore(dir).LoadMonth("2025-08")
	if err != nil {
		t.Fatalf("load month failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %+v", got)
	}
	// Date order across days.
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestLoadMonthEmptyDirectory(t *testing.T) {
	got, err := NewFSStore(t.TempDir()).LoadMonth("2025-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestLoadMonthRejectsBadMonth(t *testing.T) {
	if _, err := NewFSStore(t.TempDir()).LoadMonth("08-2025"); err == nil {
		t.Fatal("expected error for malformed month")
	}
}
