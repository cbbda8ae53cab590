package redistribute

import (
	"math/rand"
	"testing"

	"github.com/markushart/rustyheads/internal/engine"
)

func card(class engine.ServeClass, rank int) engine.Card {
	c := engine.Card{Rank: rank}
	switch class {
	case engine.ClassTrump:
		c.Trump = true
	case engine.ClassHearts:
		c.Suit = 2
	case engine.ClassSpades:
		c.Suit = 3
	}
	return c
}

func TestRedistributePreservesCountsAndMasks(t *testing.T) {
	players := []*engine.Player{
		engine.NewPlayer("acting"),
		engine.NewPlayer("p1"),
		engine.NewPlayer("p2"),
		engine.NewPlayer("p3"),
	}
	players[1].Hand = engine.Hand{card(engine.ClassHearts, 1), card(engine.ClassTrump, 2)}
	players[2].Hand = engine.Hand{card(engine.ClassHearts, 3), card(engine.ClassTrump, 4)}
	players[3].Hand = engine.Hand{card(engine.ClassHearts, 5), card(engine.ClassTrump, 6)}
	wantCounts := []int{0, 2, 2, 2}

	// p1 can no longer serve Hearts.
	players[1].ServeMask = engine.ServeClassAll &^ engine.ClassHearts

	rng := rand.New(rand.NewSource(42))
	if err := Redistribute(players, 0, rng, DefaultRetries); err != nil {
		t.Fatalf("Redistribute: %v", err)
	}

	for i, p := range players {
		if i == 0 {
			continue
		}
		if len(p.Hand) != wantCounts[i] {
			t.Errorf("player %d hand size = %d, want %d", i, len(p.Hand), wantCounts[i])
		}
	}
	for _, c := range players[1].Hand {
		if engine.ClassOf(c) == engine.ClassHearts {
			t.Errorf("player 1 should never receive a Hearts card, got %v", c)
		}
	}
}

func TestRedistributeFailsWhenInfeasible(t *testing.T) {
	players := []*engine.Player{
		engine.NewPlayer("acting"),
		engine.NewPlayer("p1"),
	}
	players[1].Hand = engine.Hand{card(engine.ClassHearts, 1)}
	players[1].ServeMask = 0 // cannot legally hold any card

	rng := rand.New(rand.NewSource(1))
	if err := Redistribute(players, 0, rng, 5); err == nil {
		t.Fatal("expected ErrInfeasible, got nil")
	}
}
