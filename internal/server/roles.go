package server

import "fmt"

// assignRoles picks exactly numImpostors indices out of [0, count) by
// shuffling the index range and taking the head. A size mismatch in the
// result is a programming error and aborts the round, never a warning.
func assignRoles(count, numImpostors int) (map[int]struct{}, error) {
	if count < minPlayers {
		return nil, ErrInsufficientPlayers
	}
	if numImpostors < 1 || numImpostors >= count {
		return nil, ErrInvalidImpostorCount
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}
	shuffle(indices)

	impostors := make(map[int]struct{}, numImpostors)
	for _, index := range indices[:numImpostors] {
		impostors[index] = struct{}{}
	}
	if len(impostors) != numImpostors {
		return nil, fmt.Errorf("impostor count mismatch: expected %d, got %d", numImpostors, len(impostors))
	}
	return impostors, nil
}
