package engine

import (
	"fmt"
	"math/rand"

	"github.com/markushart/rustyheads/internal/catalog"
)

// PlayerAdapter is the capability every seat exposes to the
// orchestrator, per spec.md §4.7 / §9 "polymorphic players without
// inheritance trees". internal/players implements this for the
// Human/Computer/Simulated variants; engine never imports that
// package, avoiding a cycle.
type PlayerAdapter interface {
	MakeCall() catalog.MatchType
	ChooseCard(legal Hand, m *Match, trick Trick, players []*Player, rng *rand.Rand) Card
}

// Match is one sequence of rounds played to a single deck, per
// spec.md §3 "Match".
type Match struct {
	Catalog   *catalog.Adapter
	DeckType  catalog.DeckType
	Players   []*Player
	Adapters  []PlayerAdapter
	Deck      Deck
	MatchType catalog.MatchType
	NRounds   int
	Rounds    []Trick
	Winner    Team

	// ForcedMatchType, when non-zero, skips call election entirely and
	// uses this match type instead, with the beginner treated as the
	// caller (spec.md §6 "match-type-init" configuration knob).
	ForcedMatchType catalog.MatchType

	callerIndex int
}

// RotateDealer advances the dealer/beginner flags one match forward:
// the new dealer sits one seat left of the old dealer, and the new
// beginner sits one seat left of the new dealer (spec.md §4.4 step 2).
// With no dealer yet assigned (the very first match), the rotation
// defaults to the last seat having held the deal, so the formula below
// still lands the new dealer on seat 0 and the new beginner on seat 1.
func RotateDealer(players []*Player) {
	n := len(players)
	if n == 0 {
		return
	}
	oldDealer := n - 1
	for i, p := range players {
		if p.Dealer {
			oldDealer = i
			break
		}
	}
	newDealer := (oldDealer + 1) % n
	newBeginner := (newDealer + 1) % n
	for i := range players {
		players[i].Dealer = false
		players[i].Beginner = false
	}
	players[newDealer].Dealer = true
	players[newBeginner].Beginner = true
}

func (m *Match) beginnerIndex() int {
	for i, p := range m.Players {
		if p.Beginner {
			return i
		}
	}
	return 0
}

// init deals a fresh match: resets every player, validates the deck
// divides evenly, shuffles, deals round-robin, and rotates
// dealer/beginner (spec.md §4.4 steps 1-2).
func (m *Match) init(rng *rand.Rand) error {
	skeleton, err := m.Catalog.DeckSkeleton(m.DeckType)
	if err != nil {
		return err
	}
	m.Deck = NewDeck(skeleton)
	m.Rounds = nil

	for _, p := range m.Players {
		p.resetForMatch()
	}

	n := len(m.Players)
	if n == 0 || len(m.Deck)%n != 0 {
		return fmt.Errorf("%w: deck size %d not divisible by %d players", ErrDealError, len(m.Deck), n)
	}
	m.NRounds = len(m.Deck) / n

	m.Deck.Shuffle(rng)
	for i, c := range m.Deck {
		m.Players[i%n].Hand.Add(c)
	}

	RotateDealer(m.Players)
	return nil
}

// electMatchType polls every adapter's call, starting from the
// beginner and proceeding in play order, and keeps the maximum by
// MatchType's declared ordering (spec.md §4.4 step 3). On ties the
// last seat to call the maximum wins, matching original_source's
// iterator `.max()` semantics.
func (m *Match) electMatchType() {
	beginner := m.beginnerIndex()
	if m.ForcedMatchType != 0 {
		m.MatchType = m.ForcedMatchType
		m.callerIndex = beginner
		return
	}
	n := len(m.Players)
	best := catalog.MatchType(0)
	bestIdx := beginner
	for i := 0; i < n; i++ {
		idx := (beginner + i) % n
		call := m.Adapters[idx].MakeCall()
		if call >= best {
			best = call
			bestIdx = idx
		}
	}
	m.MatchType = best
	m.callerIndex = bestIdx
}

// assignTeams implements spec.md §4.4 step 5, resolving Open Question
// D1 (SPEC_FULL.md §9): under Normal, the Queen-of-Clubs holder(s) are
// Re; under any Solo or Fleshless variant, the elected caller is Re.
func (m *Match) assignTeams() {
	if m.MatchType == catalog.Normal {
		for _, p := range m.Players {
			p.Team = Contra
			for _, c := range p.Hand {
				if c.Suit == catalog.Clubs && c.Face == catalog.Queen {
					p.Team = Re
					break
				}
			}
		}
		return
	}
	for i, p := range m.Players {
		if i == m.callerIndex {
			p.Team = Re
		} else {
			p.Team = Contra
		}
	}
}

// Play runs a complete match: init, match-type election, revaluation,
// team assignment, every round, and final scoring (spec.md §4.4).
func (m *Match) Play(rng *rand.Rand) error {
	if err := m.init(rng); err != nil {
		return err
	}
	m.electMatchType()

	values, err := m.Catalog.CardValues(m.DeckType, m.MatchType)
	if err != nil {
		return err
	}
	for _, p := range m.Players {
		p.UpdateHandValues(values)
	}
	m.assignTeams()

	leader := m.beginnerIndex()
	n := len(m.Players)
	for len(m.Rounds) < m.NRounds {
		trick := Trick{StartingPlayer: leader}
		current := leader
		for i := 0; i < n; i++ {
			legal := LegalCards(trick, m.Players[current].Hand)
			if len(legal) == 0 {
				return ErrEmptyLegalSet
			}
			choice := m.Adapters[current].ChooseCard(legal, m, trick, m.Players, rng)

			if leading, started := trick.Leading(); started {
				m.Players[current].UpdateServeFlags(leading, choice)
			}
			if !m.Players[current].RemoveCardFromHand(choice) {
				return fmt.Errorf("%w: chosen card %v not in hand", ErrIllegalCardConfiguration, choice)
			}
			trick.Played = append(trick.Played, choice)
			current = NextPlayer(current, n)
		}

		winner, err := trick.Winner()
		if err != nil {
			return err
		}
		m.Players[winner].CollectWonCards(trick.Played)
		m.Rounds = append(m.Rounds, trick)
		leader = winner
	}

	m.Winner = m.score()
	return nil
}

// score sums eyes per team; Contra wins ties (spec.md §4.4 step 7).
func (m *Match) score() Team {
	reEyes, contraEyes := 0, 0
	for _, p := range m.Players {
		if p.Team == Re {
			reEyes += p.EyeScore()
		} else {
			contraEyes += p.EyeScore()
		}
	}
	if contraEyes >= reEyes {
		return Contra
	}
	return Re
}

// EyeTotals reports the current (re, contra) eye split, usable mid-
// or post-match.
func (m *Match) EyeTotals() (reEyes, contraEyes int) {
	for _, p := range m.Players {
		if p.Team == Re {
			reEyes += p.EyeScore()
		} else {
			contraEyes += p.EyeScore()
		}
	}
	return
}

// Game runs a configurable number of sequential matches against one
// roster and one Rule Catalog Adapter, mirroring original_source's
// outer Game/play_game loop (SPEC_FULL.md §7).
type Game struct {
	Catalog         *catalog.Adapter
	DeckType        catalog.DeckType
	Players         []*Player
	Adapters        []PlayerAdapter
	NMatches        int
	ForcedMatchType catalog.MatchType
	Matches         []*Match
}

// Play runs NMatches matches in sequence, stopping at the first error.
func (g *Game) Play(rng *rand.Rand) error {
	for i := 0; i < g.NMatches; i++ {
		m := &Match{
			Catalog:         g.Catalog,
			DeckType:        g.DeckType,
			Players:         g.Players,
			Adapters:        g.Adapters,
			ForcedMatchType: g.ForcedMatchType,
		}
		if err := m.Play(rng); err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
		g.Matches = append(g.Matches, m)
	}
	return nil
}
