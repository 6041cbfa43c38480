package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/timeutil"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadMatches(date string) (domainmatch.DayResponse, error)
	LoadMonth(month string) ([]domainmatch.Match, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatches reads a snapshot for the given date (YYYY-MM-DD) from disk.
func (s *FSStore) LoadMatches(date string) (domainmatch.DayResponse, error) {
	if s == nil {
		return domainmatch.DayResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domainmatch.DayResponse{}, errors.New("snapshot date required")
	}

	var payload domainmatch.DayResponse
	f, err := os.Open(MatchSnapshotPath(s.basePath, date))
	if err != nil {
		return domainmatch.DayResponse{}, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domainmatch.DayResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadMonth collects every snapshot whose date falls in the given
// YYYY-MM month, in date order. Missing or unreadable days are skipped;
// a month with no snapshots yields an empty slice, not an error.
func (s *FSStore) LoadMonth(month string) ([]domainmatch.Match, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if _, err := time.Parse(timeutil.MonthLayout, month); err != nil {
		return nil, err
	}

	dates, err := listSnapshotDates(s.basePath)
	if err != nil {
		return nil, err
	}

	matches := make([]domainmatch.Match, 0)
	for _, date := range dates {
		if !strings.HasPrefix(date, month+"-") {
			continue
		}
		day, loadErr := s.LoadMatches(date)
		if loadErr != nil {
			continue
		}
		matches = append(matches, day.Matches...)
	}
	return matches, nil
}

// listSnapshotDates returns the sorted YYYY-MM-DD stems of snapshot
// files under basePath. A missing directory is an empty result.
func listSnapshotDates(basePath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, matchesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

func pruneCutoff(now time.Time, retentionDays int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)
}
