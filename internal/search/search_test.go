package search

import (
	"testing"

	"github.com/markushart/rustyheads/internal/engine"
)

// This mirrors spec.md §8 scenario S6: a two-player, two-cards-each
// stub game where Re dominates every branch, giving a known minimax
// value of +6 regardless of which card Re leads with.
func twoPlayerStubGame() (p0, p1 *engine.Player) {
	p0 = &engine.Player{Name: "re", Team: engine.Re}
	p1 = &engine.Player{Name: "contra", Team: engine.Contra}

	h1 := engine.Card{Suit: 2 /* Hearts */, Rank: 10, Eyes: 4}
	h2 := engine.Card{Suit: 3 /* Spades */, Rank: 20, Eyes: 2}
	hb := engine.Card{Suit: 2, Rank: 5, Eyes: 0}
	sb := engine.Card{Suit: 3, Rank: 1, Eyes: 0}

	p0.Hand = engine.Hand{h1, h2}
	p1.Hand = engine.Hand{hb, sb}
	return
}

func TestChooseMatchesKnownMinimaxValue(t *testing.T) {
	p0, p1 := twoPlayerStubGame()
	players := []*engine.Player{p0, p1}
	originalP0 := append(engine.Hand{}, p0.Hand...)
	originalP1 := append(engine.Hand{}, p1.Hand...)

	card, score, stats, err := Choose(players, 0, engine.Trick{StartingPlayer: 0}, p0.Hand, 8, 2)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if score != 6 {
		t.Errorf("score = %d, want 6 (S6's known minimax value)", score)
	}
	if card.Rank != 10 && card.Rank != 20 {
		t.Errorf("unexpected chosen card %+v", card)
	}
	if stats.NodesExpanded == 0 {
		t.Errorf("expected search to expand at least one node")
	}

	if !handsEqualMultiset(p0.Hand, originalP0) {
		t.Errorf("undo correctness: P0 hand = %v, want %v", p0.Hand, originalP0)
	}
	if !handsEqualMultiset(p1.Hand, originalP1) {
		t.Errorf("undo correctness: P1 hand = %v, want %v", p1.Hand, originalP1)
	}
}

func TestChooseSingleLegalCardShortCircuits(t *testing.T) {
	p0, p1 := twoPlayerStubGame()
	players := []*engine.Player{p0, p1}
	only := engine.Hand{p0.Hand[0]}

	card, _, stats, err := Choose(players, 0, engine.Trick{StartingPlayer: 0}, only, 8, 2)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if !card.Equal(only[0]) {
		t.Errorf("card = %+v, want the single legal card %+v", card, only[0])
	}
	if stats.NodesExpanded != 0 {
		t.Errorf("single-candidate short-circuit should not expand any node, got %d", stats.NodesExpanded)
	}
}

func handsEqualMultiset(a, b engine.Hand) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int)
	for _, c := range a {
		counts[c.Rank]++
	}
	for _, c := range b {
		counts[c.Rank]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
