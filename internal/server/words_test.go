package server

import (
	"errors"
	"testing"

	"github.com/iorran/impostor/internal/config"
)

func TestSelectWordPairFiltersCategory(t *testing.T) {
	srv := New(nil, config.Default())
	for i := 0; i < 20; i++ {
		pair, err := srv.selectWordPair("agua", nil)
		if err != nil {
			t.Fatalf("select pair: %v", err)
		}
		if pair.Category != "agua" {
			t.Fatalf("expected category agua, got %q", pair.Category)
		}
	}
}

func TestSelectWordPairRespectsExclusion(t *testing.T) {
	srv := New(nil, config.Default())
	pairs := filterPairs(fallbackWordPairs(), "agua")
	if len(pairs) < 2 {
		t.Fatalf("need at least 2 agua pairs, got %d", len(pairs))
	}

	// exclude everything but the first pair
	excluded := make(map[uint]struct{})
	for _, pair := range pairs[1:] {
		excluded[pair.ID] = struct{}{}
	}
	for i := 0; i < 10; i++ {
		pair, err := srv.selectWordPair("agua", excluded)
		if err != nil {
			t.Fatalf("select pair: %v", err)
		}
		if pair.ID != pairs[0].ID {
			t.Fatalf("expected pair %d, got %d", pairs[0].ID, pair.ID)
		}
	}
}

func TestSelectWordPairFallsBackWhenAllExcluded(t *testing.T) {
	srv := New(nil, config.Default())
	excluded := make(map[uint]struct{})
	for _, pair := range fallbackWordPairs() {
		excluded[pair.ID] = struct{}{}
	}
	pair, err := srv.selectWordPair(categoryAll, excluded)
	if err != nil {
		t.Fatalf("expected fallback to full list, got %v", err)
	}
	if pair.CrewmateWord == "" || pair.ImpostorWord == "" {
		t.Fatalf("expected a populated pair, got %+v", pair)
	}
}

func TestSelectWordPairUnknownCategory(t *testing.T) {
	srv := New(nil, config.Default())
	if _, err := srv.selectWordPair("dinossauros", nil); !errors.Is(err, ErrNoWordsAvailable) {
		t.Fatalf("expected ErrNoWordsAvailable, got %v", err)
	}
}

func TestFallbackPairsAreRelatedNotEqual(t *testing.T) {
	for _, pair := range fallbackWordPairs() {
		if pair.CrewmateWord == pair.ImpostorWord {
			t.Fatalf("pair %d has identical words %q", pair.ID, pair.CrewmateWord)
		}
		if !validWordCategory(pair.Category) {
			t.Fatalf("pair %d has unknown category %q", pair.ID, pair.Category)
		}
	}
}

func TestValidWordCategory(t *testing.T) {
	if !validWordCategory(categoryAll) {
		t.Fatalf("expected %q to be valid", categoryAll)
	}
	for _, category := range wordCategories {
		if !validWordCategory(category) {
			t.Fatalf("expected %q to be valid", category)
		}
	}
	if validWordCategory("dinossauros") {
		t.Fatalf("expected unknown category to be invalid")
	}
}
