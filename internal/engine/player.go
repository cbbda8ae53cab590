package engine

import "github.com/markushart/rustyheads/internal/catalog"

// Player holds one seat's persistent and per-match state (spec.md §3
// "Player"). Players persist across matches; per-match state is reset
// at match init (see Match.init).
type Player struct {
	Name      string
	Hand      Hand
	Captured  []Card
	Team      Team
	Dealer    bool
	Beginner  bool
	ServeMask ServeClass
}

// NewPlayer returns a fresh player with an empty hand and a fully-set
// serve mask, ready for Match.init to deal into.
func NewPlayer(name string) *Player {
	return &Player{Name: name, ServeMask: ServeClassAll}
}

// RemoveCardFromHand removes a played card from the hand, reporting
// whether it was found (mirrors original_source's default
// remove_card_from_hand via position lookup).
func (p *Player) RemoveCardFromHand(c Card) bool {
	return p.Hand.Remove(c)
}

// UpdateServeFlags applies UpdateServeMask against the player's own
// mask for one played card relative to the trick's leading card.
func (p *Player) UpdateServeFlags(leading, played Card) {
	p.ServeMask = UpdateServeMask(p.ServeMask, leading, played)
}

// UpdateHandValues revalues every card currently in hand per the
// elected match type's catalog values.
func (p *Player) UpdateHandValues(values map[catalog.CardSkeleton]catalog.CardValue) {
	p.Hand.Revalue(values)
}

// CollectWonCards appends an entire completed trick to the player's
// captured pile.
func (p *Player) CollectWonCards(trick []Card) {
	p.Captured = append(p.Captured, trick...)
}

// EyeScore sums the eye value of every card the player has captured
// so far.
func (p *Player) EyeScore() int {
	total := 0
	for _, c := range p.Captured {
		total += c.Eyes
	}
	return total
}

// resetForMatch clears per-match state ahead of a new deal, as
// Match.init's spec.md §4.4 step 1 requires: serve_mask -> all-ones,
// captured -> empty, hand -> empty, team -> Contra.
func (p *Player) resetForMatch() {
	p.Hand = nil
	p.Captured = nil
	p.Team = Contra
	p.ServeMask = ServeClassAll
}

// NextPlayer returns the seat following current in play order,
// following the teacher's NextPlayer helper pattern
// (BrandonDedolph-euchre internal/engine/interfaces.go).
func NextPlayer(current, numPlayers int) int {
	return (current + 1) % numPlayers
}
