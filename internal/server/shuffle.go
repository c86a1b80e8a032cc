package server

import "math/rand"

// shuffle permutes items in place with a uniform Fisher-Yates pass.
func shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func shuffledCopy[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	shuffle(out)
	return out
}
