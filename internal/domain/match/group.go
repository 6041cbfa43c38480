package match

// GroupByLeague buckets matches by their exact league name. Bucket
// contents keep first-seen insertion order; no case folding or synonym
// mapping is applied, so the same league string always lands in the
// same bucket.
func GroupByLeague(matches []Match) map[string][]Match {
	grouped := make(map[string][]Match)
	for _, m := range matches {
		grouped[m.League] = append(grouped[m.League], m)
	}
	return grouped
}

// LeagueNames returns the distinct league names of matches in
// first-seen order.
func LeagueNames(matches []Match) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range matches {
		if _, ok := seen[m.League]; ok {
			continue
		}
		seen[m.League] = struct{}{}
		names = append(names, m.League)
	}
	return names
}
