package store

import (
	"testing"

	domainmatch "livescore-service/internal/domain/match"
)

func TestMemoryStoreReplaceAndGet(t *testing.T) {
	s := NewMemoryStore()

	s.SetMatches([]domainmatch.Match{{ID: "a", League: "Premier League"}, {ID: "b", League: "La Liga"}})

	if got := s.ListMatches(); len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if m, ok := s.GetMatch("b"); !ok || m.League != "La Liga" {
		t.Fatalf("unexpected get: %+v ok=%v", m, ok)
	}

	// Replacement swaps the whole snapshot.
	s.SetMatches([]domainmatch.Match{{ID: "c"}})
	if _, ok := s.GetMatch("a"); ok {
		t.Fatal("expected old match to be gone after swap")
	}
	if got := s.ListMatches(); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("unexpected list after swap: %+v", got)
	}
}

func TestMemoryStoreListCopyIsIsolated(t *testing.T) {
	s := NewMemoryStore()
	s.SetMatches([]domainmatch.Match{{ID: "a", HomeScore: 1}})

	list := s.ListMatches()
	list[0].HomeScore = 99

	if m, _ := s.GetMatch("a"); m.HomeScore != 1 {
		t.Fatalf("caller mutation leaked into store: %+v", m)
	}
}

func TestMemoryStoreDuplicateIDsFirstWins(t *testing.T) {
	s := NewMemoryStore()
	s.SetMatches([]domainmatch.Match{
		{ID: "a", HomeScore: 1},
		{ID: "a", HomeScore: 2},
	})
	if m, _ := s.GetMatch("a"); m.HomeScore != 1 {
		t.Fatalf("expected first occurrence, got %+v", m)
	}
	if len(s.ListMatches()) != 2 {
		t.Fatal("list keeps every record even with duplicate ids")
	}
}

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()
	if got := s.ListMatches(); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
	if _, ok := s.GetMatch("missing"); ok {
		t.Fatal("expected miss on empty store")
	}
}
