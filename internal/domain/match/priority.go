package match

import "sort"

// leaguePriority orders leagues for display; lower sorts first.
// Leagues absent from the table sort after everything listed here,
// alphabetically among themselves.
var leaguePriority = map[string]int{
	"UEFA Champions League":         1,
	"UEFA Europa League":            2,
	"UEFA Europa Conference League": 3,
	"Premier League":                10,
	"La Liga":                       11,
	"Serie A":                       12,
	"Bundesliga":                    13,
	"Ligue 1":                       14,
	"Eredivisie":                    20,
	"Primeira Liga":                 21,
	"Championship":                  22,
	"Super Lig":                     23,
	"Scottish Premiership":          24,
	"MLS":                           30,
	"Copa Libertadores":             31,
	"Brasileirao":                   32,
	"Liga MX":                       33,
	"Saudi Pro League":              34,
	"World Cup":                     40,
	"European Championship":         41,
	"Copa America":                  42,
	"Africa Cup of Nations":         43,
}

const unrankedPriority = int(^uint(0) >> 1) // effectively +inf

// LeaguePriority returns the display priority for a league name, or
// the unranked sentinel when the league is not in the table. Never
// fails: unknown or empty names simply sort last.
func LeaguePriority(name string) int {
	if p, ok := leaguePriority[name]; ok {
		return p
	}
	return unrankedPriority
}

// SortLeagueNames orders league names by the priority table, falling
// back to alphabetical order for names that share a priority (which
// includes all unranked names). The sort is stable.
func SortLeagueNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := LeaguePriority(sorted[i]), LeaguePriority(sorted[j])
		if pi != pj {
			return pi < pj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
