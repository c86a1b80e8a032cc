package server

import (
	"fmt"
	"math/rand"

	"github.com/iorran/impostor/internal/db"
)

// selectWordPair picks one pair for the category, excluding ids used in the
// room's recent rounds. An exclusion set covering every candidate falls back
// to the full candidate list; an empty category is an error.
func (s *Server) selectWordPair(category string, excluded map[uint]struct{}) (WordPair, error) {
	pairs, err := s.loadWordPairs(category)
	if err != nil {
		return WordPair{}, err
	}
	if len(pairs) == 0 {
		return WordPair{}, ErrNoWordsAvailable
	}
	candidates := make([]WordPair, 0, len(pairs))
	for _, pair := range pairs {
		if _, used := excluded[pair.ID]; used {
			continue
		}
		candidates = append(candidates, pair)
	}
	if len(candidates) == 0 {
		candidates = pairs
	}
	return candidates[rand.Intn(len(candidates))], nil
}

func (s *Server) loadWordPairs(category string) ([]WordPair, error) {
	if s.db == nil {
		return filterPairs(fallbackWordPairs(), category), nil
	}
	ctx, cancel := s.backendContext()
	defer cancel()

	query := s.db.WithContext(ctx)
	if category != categoryAll {
		query = query.Where("category = ?", category)
	}
	var records []db.WordPair
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: load word pairs: %v", ErrBackendUnavailable, err)
	}
	pairs := make([]WordPair, 0, len(records))
	for _, record := range records {
		pairs = append(pairs, WordPair{
			ID:           record.ID,
			CrewmateWord: record.CrewmateWord,
			ImpostorWord: record.ImpostorWord,
			Category:     record.Category,
		})
	}
	return pairs, nil
}

func filterPairs(pairs []WordPair, category string) []WordPair {
	if category == categoryAll {
		return pairs
	}
	filtered := make([]WordPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Category == category {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}

// excludedPairIDs builds the exclusion set from a room's recent history.
func excludedPairIDs(room *Room) map[uint]struct{} {
	excluded := make(map[uint]struct{}, len(room.History))
	for _, id := range room.History {
		excluded[id] = struct{}{}
	}
	return excluded
}
