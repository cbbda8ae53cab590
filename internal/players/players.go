// Package players implements engine.PlayerAdapter for the three seat
// kinds spec.md §4.7 describes: Human, Computer, and Simulated. engine
// never imports this package (PlayerAdapter lives in internal/engine
// precisely to avoid the cycle), following the teacher's separation of
// internal/engine from internal/ai (BrandonDedolph-euchre).
package players

import (
	"math/rand"

	"github.com/markushart/rustyheads/internal/catalog"
	"github.com/markushart/rustyheads/internal/engine"
	"github.com/markushart/rustyheads/internal/redistribute"
	"github.com/markushart/rustyheads/internal/search"
	"k8s.io/klog/v2"
)

// Names provides default seat labels, following the teacher's
// PlayerNames convention (BrandonDedolph-euchre internal/ai/player.go).
var Names = []string{"North", "East", "South", "West"}

// Human stands in for a human-driven seat. spec.md's Non-goals place
// an interactive front-end out of scope, so Human plays deterministically
// rather than prompting: it always takes the first legal card and
// passes on every call, the same policy Simulated uses.
type Human struct {
	Self *engine.Player
}

func (h *Human) MakeCall() catalog.MatchType { return catalog.Normal }

func (h *Human) ChooseCard(legal engine.Hand, m *engine.Match, trick engine.Trick, roster []*engine.Player, rng *rand.Rand) engine.Card {
	return legal[0]
}

// Simulated is a cheap seat for filling out a match roster without
// running search. It never calls a solo and always plays the first
// legal card, exactly like Human. The Search Engine does not use it:
// internal/search plays the snapshot's engine.Player hands directly.
type Simulated struct {
	Self *engine.Player
}

func (s *Simulated) MakeCall() catalog.MatchType { return catalog.Normal }

func (s *Simulated) ChooseCard(legal engine.Hand, m *engine.Match, trick engine.Trick, roster []*engine.Player, rng *rand.Rand) engine.Card {
	return legal[0]
}

// Computer searches before it plays. MaxDepth defaults to 8 plies
// (spec.md §4.7) when left at zero. RetryLimit defaults to
// redistribute.DefaultRetries the same way.
type Computer struct {
	Self       *engine.Player
	MaxDepth   int
	RetryLimit int
}

func (c *Computer) maxDepth() int {
	if c.MaxDepth <= 0 {
		return 8
	}
	return c.MaxDepth
}

func (c *Computer) retryLimit() int {
	if c.RetryLimit <= 0 {
		return redistribute.DefaultRetries
	}
	return c.RetryLimit
}

// MakeCall applies a simple pre-revaluation heuristic over raw
// face counts (Eyes/Trump/Rank are still zero at call time, since the
// catalog hasn't been consulted yet - spec.md §4.4 step 3 runs before
// step 4): three or more Queens call QueenSolo, else three or more
// Jacks call JackSolo, else four or more Queens and Jacks together call
// BestSolo; otherwise it passes with Normal.
// This policy is not specified further upstream; it is an invented but
// internally consistent decision, recorded in DESIGN.md.
func (c *Computer) MakeCall() catalog.MatchType {
	queens, jacks := 0, 0
	for _, card := range c.Self.Hand {
		switch card.Face {
		case catalog.Queen:
			queens++
		case catalog.Jack:
			jacks++
		}
	}
	switch {
	case queens >= 3:
		return catalog.QueenSolo
	case jacks >= 3:
		return catalog.JackSolo
	case queens+jacks >= 4:
		return catalog.BestSolo
	default:
		return catalog.Normal
	}
}

// ChooseCard snapshots the live roster into a Simulated clone, hiding
// every opponent's exact hand identity behind a serve-mask-respecting
// redistribution, then hands the clone to the Search Engine (spec.md
// §5, "the Search Engine borrows the live player set only to clone it
// into a local Simulated vector"). If redistribution proves infeasible,
// or the search itself errors, it falls back to the first legal card
// rather than propagating a failure out of a single seat's turn.
func (c *Computer) ChooseCard(legal engine.Hand, m *engine.Match, trick engine.Trick, roster []*engine.Player, rng *rand.Rand) engine.Card {
	if len(legal) == 1 {
		return legal[0]
	}

	actingIdx := indexOf(roster, c.Self)
	if actingIdx < 0 {
		return legal[0]
	}

	snapshot := cloneRoster(roster)
	if err := redistribute.Redistribute(snapshot, actingIdx, rng, c.retryLimit()); err != nil {
		if klog.V(2).Enabled() {
			klog.Infof("players: redistribute failed, falling back to first legal card: %v", err)
		}
		return legal[0]
	}

	simLegal := engine.LegalCards(trick, snapshot[actingIdx].Hand)
	chosen, score, stats, err := search.Choose(snapshot, actingIdx, trick, simLegal, c.maxDepth(), len(roster))
	if err != nil {
		if klog.V(2).Enabled() {
			klog.Infof("players: search failed, falling back to first legal card: %v", err)
		}
		return legal[0]
	}
	if klog.V(2).Enabled() {
		klog.Infof("players: %s chose rank=%d score=%d (%v)", c.Self.Name, chosen.Rank, score, stats)
	}

	for _, card := range legal {
		if card.Equal(chosen) {
			return card
		}
	}
	return legal[0]
}

func indexOf(roster []*engine.Player, self *engine.Player) int {
	for i, p := range roster {
		if p == self {
			return i
		}
	}
	return -1
}

// cloneRoster copies every seat's hand, team, and serve mask into a
// fresh []*engine.Player the search can mutate freely. Captured piles
// are irrelevant to search scoring (engine.Card already carries its own
// Eyes) and are left empty.
func cloneRoster(roster []*engine.Player) []*engine.Player {
	clones := make([]*engine.Player, len(roster))
	for i, p := range roster {
		clones[i] = &engine.Player{
			Name:      p.Name,
			Hand:      p.Hand.Clone(),
			Team:      p.Team,
			ServeMask: p.ServeMask,
		}
	}
	return clones
}
