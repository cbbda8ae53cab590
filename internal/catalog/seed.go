package catalog

// The actual sqlite seed data behind original_source's rusqlite store
// is not part of the retrieval pack; the rank/trump/eye scheme below is
// a design decision (see SPEC_FULL.md §9 D4, DESIGN.md) that is
// internally consistent with Doppelkopf's canonical 240-eye deck and
// the MatchType ordering spec.md §4.4 requires for election.

// suitWeakToStrong is the trump suit order used when a whole suit
// family (Jacks, Queens, or a solo's trump suit) is ranked against
// itself: Diamonds < Hearts < Spades < Clubs.
var suitWeakToStrong = []Suit{Diamonds, Hearts, Spades, Clubs}

var allSuits = []Suit{Clubs, Spades, Hearts, Diamonds}

// faceRankDesc orders faces from strongest to weakest within a single
// serving class (a suit, or the non-elevated part of a trump suit).
var faceRankDesc = []Face{Ace, Ten, King, Queen, Jack, Nine}

func facesForDeck(dt DeckType) []Face {
	switch dt {
	case Tournament:
		return []Face{Ace, Ten, King, Queen, Jack}
	case WithNines:
		return []Face{Ace, Ten, King, Queen, Jack, Nine}
	default:
		return nil
	}
}

func eyesForFace(f Face) int {
	switch f {
	case Nine:
		return 0
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	default:
		return 0
	}
}

// matchRule describes which cards are elevated to trump for one
// match type: whether all Jacks/Queens are trump, and which suit (if
// any) is entirely trump.
type matchRule struct {
	includeQueens bool
	includeJacks  bool
	trumpSuit     Suit // 0 means "no suit trump"
}

var matchRules = map[MatchType]matchRule{
	Normal:     {includeQueens: true, includeJacks: true, trumpSuit: Diamonds},
	JackSolo:   {includeQueens: false, includeJacks: true, trumpSuit: 0},
	QueenSolo:  {includeQueens: true, includeJacks: false, trumpSuit: 0},
	BestSolo:   {includeQueens: true, includeJacks: true, trumpSuit: 0},
	HeartsSolo: {includeQueens: true, includeJacks: true, trumpSuit: Hearts},
	SpadesSolo: {includeQueens: true, includeJacks: true, trumpSuit: Spades},
	CrossSolo:  {includeQueens: true, includeJacks: true, trumpSuit: Clubs},
	Fleshless:  {includeQueens: false, includeJacks: false, trumpSuit: Diamonds},
}

// buildCardValues computes the canonical (suit, face) -> (eyes, trump,
// rank) mapping for one match type. Trump status and rank are
// properties of cards_per_rule alone and do not vary by deck type
// (only cards_per_deck and eyes_per_face do), so ranks are always
// assigned against the full WithNines face set; a Tournament match
// simply never deals the resulting Nine rows. Rank is assigned from
// weakest to strongest so that a higher number always beats a lower
// one inside the same serving class.
func buildCardValues(mt MatchType) map[CardSkeleton]CardValue {
	rule := matchRules[mt]
	faces := facesForDeck(WithNines)
	faceSet := make(map[Face]bool, len(faces))
	for _, f := range faces {
		faceSet[f] = true
	}

	values := make(map[CardSkeleton]CardValue)
	used := make(map[CardSkeleton]bool)
	rank := 0
	assign := func(cs CardSkeleton, trump bool) {
		rank++
		values[cs] = CardValue{Eyes: eyesForFace(cs.Face), Trump: trump, Rank: rank}
		used[cs] = true
	}

	var trumpOrder []CardSkeleton
	if rule.trumpSuit != 0 {
		for i := len(faceRankDesc) - 1; i >= 0; i-- {
			f := faceRankDesc[i]
			if !faceSet[f] {
				continue
			}
			if rule.includeJacks && f == Jack {
				continue
			}
			if rule.includeQueens && f == Queen {
				continue
			}
			trumpOrder = append(trumpOrder, CardSkeleton{Suit: rule.trumpSuit, Face: f})
		}
	}
	if rule.includeJacks && faceSet[Jack] {
		for _, s := range suitWeakToStrong {
			trumpOrder = append(trumpOrder, CardSkeleton{Suit: s, Face: Jack})
		}
	}
	if rule.includeQueens && faceSet[Queen] {
		for _, s := range suitWeakToStrong {
			trumpOrder = append(trumpOrder, CardSkeleton{Suit: s, Face: Queen})
		}
	}
	for _, cs := range trumpOrder {
		assign(cs, true)
	}

	for _, s := range allSuits {
		for i := len(faceRankDesc) - 1; i >= 0; i-- {
			f := faceRankDesc[i]
			if !faceSet[f] {
				continue
			}
			cs := CardSkeleton{Suit: s, Face: f}
			if used[cs] {
				continue
			}
			assign(cs, false)
		}
	}
	return values
}

func buildDeckSkeleton(dt DeckType) []CardSkeleton {
	faces := facesForDeck(dt)
	var out []CardSkeleton
	for _, s := range allSuits {
		for _, f := range faces {
			out = append(out, CardSkeleton{Suit: s, Face: f})
			out = append(out, CardSkeleton{Suit: s, Face: f})
		}
	}
	return out
}
