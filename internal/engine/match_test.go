package engine

import (
	"math/rand"
	"testing"

	"github.com/markushart/rustyheads/internal/catalog"
)

// fixedCaller always returns the same MatchType and always plays the
// first legal card, enough to drive a Match end-to-end deterministically.
type fixedCaller struct{ call catalog.MatchType }

func (f fixedCaller) MakeCall() catalog.MatchType { return f.call }

func (f fixedCaller) ChooseCard(legal Hand, m *Match, trick Trick, players []*Player, rng *rand.Rand) Card {
	return legal[0]
}

func newTestMatch(t *testing.T, n int) (*Match, *catalog.Adapter) {
	t.Helper()
	cat, err := catalog.Open(":memory:")
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	players := make([]*Player, n)
	adapters := make([]PlayerAdapter, n)
	for i := range players {
		players[i] = NewPlayer("seat")
		adapters[i] = fixedCaller{call: catalog.Normal}
	}
	return &Match{
		Catalog:  cat,
		DeckType: catalog.Tournament,
		Players:  players,
		Adapters: adapters,
	}, cat
}

func TestTeamAssignmentNormalQueenOfClubs(t *testing.T) {
	// S5: a player dealt a Queen of Clubs is Re, the rest Contra.
	m, cat := newTestMatch(t, 4)
	defer cat.Close()

	if err := m.init(rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("init: %v", err)
	}
	m.electMatchType()
	m.assignTeams()

	reCount := 0
	for i, p := range m.Players {
		hasQueenOfClubs := false
		for _, c := range p.Hand {
			if c.Suit == catalog.Clubs && c.Face == catalog.Queen {
				hasQueenOfClubs = true
			}
		}
		if p.Team == Re {
			reCount++
		}
		if hasQueenOfClubs != (p.Team == Re) {
			t.Errorf("seat %d: holds Queen of Clubs = %v but team = %v", i, hasQueenOfClubs, p.Team)
		}
	}
	if reCount == 0 {
		t.Errorf("expected at least one Re player under Normal (two Queens of Clubs exist)")
	}
}

func TestDeckConservationAcrossMatch(t *testing.T) {
	m, cat := newTestMatch(t, 4)
	defer cat.Close()

	if err := m.Play(rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("Play: %v", err)
	}

	total := 0
	for _, p := range m.Players {
		total += len(p.Hand) + len(p.Captured)
	}
	if total != len(m.Deck) {
		t.Errorf("hand+captured total = %d, want deck size %d", total, len(m.Deck))
	}
}

func TestScoringContraWinsTies(t *testing.T) {
	m := &Match{Players: []*Player{
		{Team: Re, Captured: []Card{{Eyes: 120}}},
		{Team: Contra, Captured: []Card{{Eyes: 120}}},
	}}
	if got := m.score(); got != Contra {
		t.Errorf("score() on a tie = %v, want Contra", got)
	}
}

func TestRotateDealerFirstMatch(t *testing.T) {
	players := []*Player{NewPlayer("a"), NewPlayer("b"), NewPlayer("c"), NewPlayer("d")}
	RotateDealer(players)
	dealerIdx, beginnerIdx := -1, -1
	dealerCount, beginnerCount := 0, 0
	for i, p := range players {
		if p.Dealer {
			dealerCount++
			dealerIdx = i
		}
		if p.Beginner {
			beginnerCount++
			beginnerIdx = i
		}
	}
	if dealerCount != 1 || beginnerCount != 1 {
		t.Fatalf("expected exactly one dealer and one beginner, got %d/%d", dealerCount, beginnerCount)
	}
	if dealerIdx == beginnerIdx {
		t.Fatalf("dealer and beginner landed on the same seat %d", dealerIdx)
	}
	if beginnerIdx != (dealerIdx+1)%len(players) {
		t.Errorf("beginner seat = %d, want one seat left of dealer seat %d", beginnerIdx, dealerIdx)
	}
	if dealerIdx != 0 {
		t.Errorf("dealer seat = %d, want 0 on the very first match", dealerIdx)
	}
}

func TestForcedMatchTypeSkipsElection(t *testing.T) {
	m, cat := newTestMatch(t, 4)
	defer cat.Close()
	m.ForcedMatchType = catalog.Fleshless

	if err := m.Play(rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if m.MatchType != catalog.Fleshless {
		t.Errorf("MatchType = %v, want the forced Fleshless", m.MatchType)
	}
}

func TestRotateDealerAdvancesTwoSeats(t *testing.T) {
	players := []*Player{NewPlayer("a"), NewPlayer("b"), NewPlayer("c"), NewPlayer("d")}
	players[0].Dealer = true
	RotateDealer(players)
	if !players[1].Dealer {
		t.Errorf("new dealer should be one seat left of old dealer (seat 1)")
	}
	if !players[2].Beginner {
		t.Errorf("new beginner should be one seat left of new dealer (seat 2)")
	}
}
