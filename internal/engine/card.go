// Package engine implements the Card & Trick Logic, Hand & Player
// State, and Match/Round Orchestrator components: the rules layer the
// Search Engine (internal/search) plays against.
package engine

import (
	"fmt"

	"github.com/markushart/rustyheads/internal/catalog"
)

// Card is a single valued playing card. Two physical cards with the
// same (suit, face) under one (deck type, match type) always carry
// identical Eyes/Trump/Rank and compare equal by Rank (spec.md §3).
type Card struct {
	Suit  catalog.Suit
	Face  catalog.Face
	Eyes  int
	Trump bool
	Rank  int
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Face, c.Suit)
}

// Equal reports whether two cards share the same rank, the sole basis
// for comparison per spec.md §3.
func (c Card) Equal(other Card) bool { return c.Rank == other.Rank }

// ServeClass is a five-bit field naming one of the five "serving
// classes" a card belongs to: the four suits, or Trump.
type ServeClass uint8

const (
	ClassHearts ServeClass = 1 << iota
	ClassDiamonds
	ClassClubs
	ClassSpades
	ClassTrump
)

// ServeClassAll has every bit set: the initial value of a fresh
// player's serve mask.
const ServeClassAll = ClassHearts | ClassDiamonds | ClassClubs | ClassSpades | ClassTrump

// ClassOf returns the serving class a card belongs to.
func ClassOf(c Card) ServeClass {
	if c.Trump {
		return ClassTrump
	}
	switch c.Suit {
	case catalog.Hearts:
		return ClassHearts
	case catalog.Diamonds:
		return ClassDiamonds
	case catalog.Clubs:
		return ClassClubs
	case catalog.Spades:
		return ClassSpades
	default:
		return 0
	}
}

// Serves reports whether a serves b: both trump, or both non-trump of
// the same suit. Trumps form one serving class; each non-trump suit
// forms its own (spec.md §4.2).
func Serves(a, b Card) bool {
	if a.Trump && b.Trump {
		return true
	}
	return !a.Trump && !b.Trump && a.Suit == b.Suit
}

// Outcome is the three-valued result of comparing a candidate and a
// challenger card against the trick's leading card.
type Outcome int

const (
	FirstWins Outcome = iota
	CandidateWins
	ChallengerWins
)

// PairVsFirst decides, given the trick's leading card and two
// contenders already on the table, which of candidate/challenger (if
// either) currently outranks the other. See spec.md §4.2 for the
// exhaustive rule list; this is ported from original_source's
// Card::winning_card truth table.
func PairVsFirst(first, candidate, challenger Card) (Outcome, error) {
	iSrv := Serves(first, candidate)
	oSrv := Serves(first, challenger)
	candidateLower := candidate.Rank < challenger.Rank

	switch {
	case !iSrv && !oSrv:
		return FirstWins, nil

	case (!iSrv && oSrv && candidate.Trump && !challenger.Trump) ||
		(iSrv && !oSrv && !challenger.Trump) ||
		(iSrv && oSrv && !candidateLower && !candidate.Trump && !challenger.Trump) ||
		(iSrv && oSrv && !candidateLower && candidate.Trump && challenger.Trump):
		return CandidateWins, nil

	case (!iSrv && oSrv && !candidate.Trump) ||
		(iSrv && !oSrv && !candidate.Trump && challenger.Trump) ||
		(iSrv && oSrv && candidateLower && !candidate.Trump && !challenger.Trump) ||
		(iSrv && oSrv && candidateLower && candidate.Trump && challenger.Trump):
		return ChallengerWins, nil

	default:
		return 0, fmt.Errorf("%w: first=%+v candidate=%+v challenger=%+v", ErrIllegalCardConfiguration, first, candidate, challenger)
	}
}

// RoundWinner computes the seat index of the trick's winner, per
// spec.md §4.2: seed the best with played[0], fold PairVsFirst over the
// rest, and return startingPlayer plus the winning card's offset,
// modulo len(played).
func RoundWinner(played []Card, startingPlayer int) (int, error) {
	if len(played) == 0 {
		return 0, fmt.Errorf("%w: empty trick", ErrIllegalCardConfiguration)
	}
	first := played[0]
	winner := 0
	for i := 1; i < len(played); i++ {
		outcome, err := PairVsFirst(first, played[winner], played[i])
		if err != nil {
			return 0, err
		}
		if outcome == ChallengerWins {
			winner = i
		}
	}
	return (startingPlayer + winner) % len(played), nil
}
