package engine

import (
	"math/rand"

	"github.com/markushart/rustyheads/internal/catalog"
)

// Deck is an ordered sequence of cards, containing exactly two copies
// of each (suit, face) pair belonging to the chosen deck type. Its
// cards carry zero eyes/trump/rank; once a match type has been elected
// the hands dealt from it are revalued (Hand.Revalue), while the Deck
// itself keeps its zero values (spec.md §4.4 steps 1 and 4).
type Deck []Card

// NewDeck builds a Deck from a Rule Catalog skeleton.
func NewDeck(skeleton []catalog.CardSkeleton) Deck {
	deck := make(Deck, len(skeleton))
	for i, cs := range skeleton {
		deck[i] = Card{Suit: cs.Suit, Face: cs.Face}
	}
	return deck
}

// Shuffle permutes the deck in place using the supplied generator,
// the sole injected source of nondeterminism (spec.md §5).
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}

// Hand is a player's in-hand cards, kept as a plain slice following
// the teacher's Hand type (BrandonDedolph-euchre internal/engine/deck.go),
// generalized away from Euchre's suit/trump-specific helpers.
type Hand []Card

// Add appends a card to the hand.
func (h *Hand) Add(c Card) { *h = append(*h, c) }

// Contains reports whether the hand holds a card of equal rank.
func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc.Equal(c) {
			return true
		}
	}
	return false
}

// Remove deletes the first card with equal rank from the hand. It
// reports whether a card was found and removed.
func (h *Hand) Remove(c Card) bool {
	for i, hc := range *h {
		if hc.Equal(c) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}
	return false
}

// Revalue overwrites eyes/trump/rank for every card in the hand using
// the supplied (suit, face) -> value mapping, in place, as
// original_source's update_hand_values does.
func (h Hand) Revalue(values map[catalog.CardSkeleton]catalog.CardValue) {
	for i, c := range h {
		v, ok := values[catalog.CardSkeleton{Suit: c.Suit, Face: c.Face}]
		if !ok {
			continue
		}
		h[i].Eyes = v.Eyes
		h[i].Trump = v.Trump
		h[i].Rank = v.Rank
	}
}

// Clone returns an independent copy of the hand, used when the Search
// Engine snapshots live players into Simulated ones.
func (h Hand) Clone() Hand {
	c := make(Hand, len(h))
	copy(c, h)
	return c
}
