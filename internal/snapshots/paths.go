package snapshots

import (
	"fmt"
	"path/filepath"
)

const matchesDir = "matches"

// MatchSnapshotPath builds the path to a matches snapshot for a given date.
func MatchSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, matchesDir, fmt.Sprintf("%s.json", date))
}
