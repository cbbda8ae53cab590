// Package redistribute implements the Redistribution of Unknown Cards
// component (spec.md §4.5): given one acting player's revealed hand,
// it samples a consistent hidden-hand assignment for the remaining
// players, constrained by their per-opponent serve masks.
package redistribute

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/markushart/rustyheads/internal/engine"
)

// ErrInfeasible is returned when the retry cap is exhausted without
// finding an assignment that respects every opponent's count and
// serve mask (spec.md §4.5 step 5).
var ErrInfeasible = errors.New("redistribute: no feasible assignment found")

// DefaultRetries is the configurable retry cap's default (spec.md §6).
const DefaultRetries = 100

// Redistribute rebuilds a consistent hidden-hand assignment for every
// player other than actingIdx, in place, using rng as the sole source
// of randomness. It preserves two hard constraints: each opponent ends
// with exactly as many cards as they started with, and no card
// violates that opponent's serve mask (spec.md §4.5).
func Redistribute(players []*engine.Player, actingIdx int, rng *rand.Rand, maxRetries int) error {
	n := len(players)
	targetCount := make([]int, n)
	var pool []engine.Card
	for i, p := range players {
		if i == actingIdx {
			continue
		}
		targetCount[i] = len(p.Hand)
		pool = append(pool, p.Hand...)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Rank < pool[j].Rank })

	if maxRetries <= 0 {
		maxRetries = DefaultRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		shuffled := make([]engine.Card, len(pool))
		copy(shuffled, pool)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		hands := make([]engine.Hand, n)
		remaining := make([]int, n)
		copy(remaining, targetCount)

		ok := true
		for _, c := range shuffled {
			assigned := false
			for i := 0; i < n; i++ {
				if i == actingIdx || remaining[i] <= 0 {
					continue
				}
				if players[i].ServeMask&engine.ClassOf(c) == 0 {
					continue
				}
				hands[i] = append(hands[i], c)
				remaining[i]--
				assigned = true
				break
			}
			if !assigned {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for i := range remaining {
			if i != actingIdx && remaining[i] != 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		for i := 0; i < n; i++ {
			if i == actingIdx {
				continue
			}
			players[i].Hand = hands[i]
		}
		return nil
	}

	return fmt.Errorf("%w: exhausted %d attempts", ErrInfeasible, maxRetries)
}
