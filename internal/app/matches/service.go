package matches

import (
	domainmatch "livescore-service/internal/domain/match"
)

// Store defines the contract for persisting and retrieving matches.
type Store interface {
	ListMatches() []domainmatch.Match
	GetMatch(id string) (domainmatch.Match, bool)
	SetMatches(matches []domainmatch.Match)
}

// Service coordinates match operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Matches returns the current snapshot in fetch order.
func (s *Service) Matches() []domainmatch.Match {
	return s.store.ListMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domainmatch.Match, bool) {
	return s.store.GetMatch(id)
}

// Live returns only matches currently in play, in fetch order.
func (s *Service) Live() []domainmatch.Match {
	var live []domainmatch.Match
	for _, m := range s.store.ListMatches() {
		if m.Status == domainmatch.StatusLive {
			live = append(live, m)
		}
	}
	return live
}

// LeagueGroup is one display bucket of matches.
type LeagueGroup struct {
	League  string              `json:"league"`
	Matches []domainmatch.Match `json:"matches"`
}

// Grouped buckets the snapshot by league and orders buckets by the
// static league priority table (unknown leagues alphabetical, last).
// Matches inside a bucket keep fetch order.
func (s *Service) Grouped() []LeagueGroup {
	all := s.store.ListMatches()
	buckets := domainmatch.GroupByLeague(all)
	names := domainmatch.SortLeagueNames(domainmatch.LeagueNames(all))

	groups := make([]LeagueGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, LeagueGroup{League: name, Matches: buckets[name]})
	}
	return groups
}

// ReplaceMatches swaps the in-memory snapshot with a new one.
func (s *Service) ReplaceMatches(matches []domainmatch.Match) {
	s.store.SetMatches(matches)
}
