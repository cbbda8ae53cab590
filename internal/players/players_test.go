package players

import (
	"math/rand"
	"testing"

	"github.com/markushart/rustyheads/internal/catalog"
	"github.com/markushart/rustyheads/internal/engine"
)

func TestHumanChoosesFirstLegalCard(t *testing.T) {
	self := engine.NewPlayer("north")
	h := &Human{Self: self}
	legal := engine.Hand{{Rank: 3}, {Rank: 7}}
	if got := h.ChooseCard(legal, nil, engine.Trick{}, nil, nil); !got.Equal(legal[0]) {
		t.Errorf("ChooseCard = %+v, want %+v", got, legal[0])
	}
	if h.MakeCall() != catalog.Normal {
		t.Errorf("MakeCall = %v, want Normal", h.MakeCall())
	}
}

func TestSimulatedChoosesFirstLegalCard(t *testing.T) {
	self := engine.NewPlayer("east")
	s := &Simulated{Self: self}
	legal := engine.Hand{{Rank: 9}, {Rank: 2}}
	if got := s.ChooseCard(legal, nil, engine.Trick{}, nil, nil); !got.Equal(legal[0]) {
		t.Errorf("ChooseCard = %+v, want %+v", got, legal[0])
	}
}

func TestComputerMakeCallHeuristic(t *testing.T) {
	self := engine.NewPlayer("south")
	self.Hand = engine.Hand{
		{Suit: catalog.Clubs, Face: catalog.Queen},
		{Suit: catalog.Spades, Face: catalog.Queen},
		{Suit: catalog.Hearts, Face: catalog.Queen},
		{Suit: catalog.Diamonds, Face: catalog.Two},
	}
	c := &Computer{Self: self}
	if got := c.MakeCall(); got != catalog.QueenSolo {
		t.Errorf("MakeCall with 3 queens = %v, want QueenSolo", got)
	}

	self.Hand = engine.Hand{{Suit: catalog.Diamonds, Face: catalog.Two}}
	if got := c.MakeCall(); got != catalog.Normal {
		t.Errorf("MakeCall with a weak hand = %v, want Normal", got)
	}
}

func TestComputerChooseCardSingleLegalShortCircuits(t *testing.T) {
	self := engine.NewPlayer("west")
	self.Hand = engine.Hand{{Rank: 4}}
	c := &Computer{Self: self}
	roster := []*engine.Player{self}

	legal := engine.Hand{{Rank: 4}}
	got := c.ChooseCard(legal, nil, engine.Trick{}, roster, rand.New(rand.NewSource(1)))
	if !got.Equal(legal[0]) {
		t.Errorf("ChooseCard = %+v, want single legal card %+v", got, legal[0])
	}
}

func TestComputerChooseCardRunsSearchAndReturnsLegalCard(t *testing.T) {
	re := engine.NewPlayer("re")
	contra := engine.NewPlayer("contra")
	re.Team = engine.Re
	contra.Team = engine.Contra

	re.Hand = engine.Hand{
		{Suit: catalog.Hearts, Rank: 10, Eyes: 4},
		{Suit: catalog.Spades, Rank: 20, Eyes: 2},
	}
	contra.Hand = engine.Hand{
		{Suit: catalog.Hearts, Rank: 5, Eyes: 0},
		{Suit: catalog.Spades, Rank: 1, Eyes: 0},
	}
	roster := []*engine.Player{re, contra}

	c := &Computer{Self: re}
	legal := engine.Hand{re.Hand[0], re.Hand[1]}
	chosen := c.ChooseCard(legal, nil, engine.Trick{StartingPlayer: 0}, roster, rand.New(rand.NewSource(7)))

	found := false
	for _, card := range legal {
		if card.Equal(chosen) {
			found = true
		}
	}
	if !found {
		t.Errorf("ChooseCard returned %+v, not a member of the real legal set %+v", chosen, legal)
	}
	if len(re.Hand) != 2 || len(contra.Hand) != 2 {
		t.Errorf("ChooseCard must not mutate the live roster: re=%v contra=%v", re.Hand, contra.Hand)
	}
}
