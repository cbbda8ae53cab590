package search

import (
	"fmt"

	"github.com/markushart/rustyheads/internal/engine"
	"k8s.io/klog/v2"
)

// Stats counts work done by one Search call, logged through klog the
// way the hiveGo alpha-beta searcher does (other_examples reference).
type Stats struct {
	NodesExpanded int
	LeavesScored  int
	Prunes        int
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d prunes=%d", s.NodesExpanded, s.LeavesScored, s.Prunes)
}

func buildCardLUT(trick engine.Trick, players []*engine.Player) map[int]engine.Card {
	lut := make(map[int]engine.Card)
	for _, c := range trick.Played {
		lut[c.Rank] = c
	}
	for _, p := range players {
		for _, c := range p.Hand {
			lut[c.Rank] = c
		}
	}
	return lut
}

// Choose evaluates every card in legal for actingIdx, exploring up to
// maxDepth plies, and returns the best-scoring card (spec.md §4.6).
// players must already be a Simulated snapshot: Choose mutates their
// hands during search but restores them exactly before returning
// (spec.md §8 property 6, "Undo correctness").
func Choose(players []*engine.Player, actingIdx int, trick engine.Trick, legal engine.Hand, maxDepth, numPlayers int) (engine.Card, int, Stats, error) {
	if len(legal) == 0 {
		return engine.Card{}, 0, Stats{}, engine.ErrEmptyLegalSet
	}
	if len(legal) == 1 {
		return legal[0], 0, Stats{}, nil
	}

	cardLUT := buildCardLUT(trick, players)
	rootNodes := pushTrickToTree(trick.Played, trick.StartingPlayer, numPlayers)

	team := players[actingIdx].Team
	bestScore := initialScore(team)
	var bestCard engine.Card
	haveBest := false
	var stats Stats

	for _, candidate := range legal {
		nodes := pushNode(append([]CardNode{}, rootNodes...), CardNode{
			Rank:          candidate.Rank,
			Score:         initialScore(team),
			Alpha:         negInf,
			Beta:          posInf,
			CurrentPlayer: actingIdx,
			Depth:         len(rootNodes),
		})
		players[actingIdx].Hand.Remove(candidate)

		score, err := minimax(nodes, players, maxDepth, cardLUT, numPlayers, &stats)
		if err != nil {
			return engine.Card{}, 0, stats, err
		}

		if !haveBest {
			bestScore, bestCard, haveBest = score, candidate, true
			continue
		}
		if updated := scoreForTeam(bestScore, score, team); updated != bestScore {
			bestScore, bestCard = updated, candidate
		}
	}

	if klog.V(2).Enabled() {
		klog.Infof("search: %v best=%v score=%d", stats, bestCard, bestScore)
	}
	return bestCard, bestScore, stats, nil
}

// minimax drives the iterative expansion loop described in spec.md
// §4.6. nodes must already contain the root trick history plus one
// freshly-pushed candidate node with its card removed from the
// candidate's owner's hand; minimax returns that candidate's score
// once its whole subtree (to maxDepth) has been explored and undone.
func minimax(nodes []CardNode, players []*engine.Player, maxDepth int, cardLUT map[int]engine.Card, numPlayers int, stats *Stats) (int, error) {
	inl := len(nodes) - 1

	sumRemaining := 0
	for _, p := range players {
		sumRemaining += len(p.Hand)
	}
	// inl is also the candidate node's own depth; the last card of the
	// game (if play continued to hand exhaustion) lands at depth
	// inl+sumRemaining. Clamp to maxDepth so a generous depth budget
	// never tries to search past the cards that actually exist.
	effectiveMaxDepth := inl + sumRemaining
	if maxDepth < effectiveMaxDepth {
		effectiveMaxDepth = maxDepth
	}

	for {
		current, rest := popNode(nodes)
		stats.NodesExpanded++

		switch {
		case current.Depth == effectiveMaxDepth && !current.Visited:
			full := make([]CardNode, len(rest)+1)
			copy(full, rest)
			full[len(rest)] = current
			score, err := scoreLeaf(full, numPlayers, cardLUT, players)
			if err != nil {
				return 0, err
			}
			current.Score = score
			current.Visited = true
			stats.LeavesScored++
			nodes = pushNode(rest, current)

		case len(current.CardsToPlay) == 0 && current.Visited:
			players[current.CurrentPlayer].Hand.Add(cardLUT[current.Rank])
			if len(rest) == inl {
				return current.Score, nil
			}
			parent := &rest[len(rest)-1]
			team := players[parent.CurrentPlayer].Team
			parent.Score = scoreForTeam(parent.Score, current.Score, team)
			parent.Alpha, parent.Beta = alphaBetaForTeam(parent.Alpha, parent.Beta, current.Score, team)
			if isBranchPrunable(parent.Alpha, parent.Beta, team) {
				parent.CardsToPlay = nil
				stats.Prunes++
			}
			nodes = rest

		default:
			var err error
			nodes, err = expand(current, rest, players, cardLUT, numPlayers)
			if err != nil {
				return 0, err
			}
		}
	}
}

// scoreLeaf reconstructs every COMPLETE trick among nodes (the whole
// stack down to and including the leaf) in chunks of numPlayers,
// attributing each trick's eye sum to its winner's team; a trailing
// partial chunk (a trick still in progress at the search cutoff)
// simply contributes nothing, per spec.md §4.6.
func scoreLeaf(nodes []CardNode, numPlayers int, cardLUT map[int]engine.Card, players []*engine.Player) (int, error) {
	reEyes, contraEyes := 0, 0
	for i := 0; i+numPlayers <= len(nodes); i += numPlayers {
		chunk := nodes[i : i+numPlayers]
		cards := make([]engine.Card, numPlayers)
		for j, nd := range chunk {
			cards[j] = cardLUT[nd.Rank]
		}
		winner, err := engine.RoundWinner(cards, chunk[0].CurrentPlayer)
		if err != nil {
			return 0, err
		}
		eyes := 0
		for _, c := range cards {
			eyes += c.Eyes
		}
		if players[winner].Team == engine.Re {
			reEyes += eyes
		} else {
			contraEyes += eyes
		}
	}
	return reEyes - contraEyes, nil
}

// expand handles the "needs expansion" branch: on first visit it
// populates current.CardsToPlay (the fresh trick's full hand, or the
// legal subset of a trick in progress), then always pops one
// candidate rank, removes it from the next player's hand, and pushes
// both current (updated) and its new child back onto the stack.
func expand(current CardNode, rest []CardNode, players []*engine.Player, cardLUT map[int]engine.Card, numPlayers int) ([]CardNode, error) {
	trickSoFar := current.Depth%numPlayers + 1
	trickCompleted := trickSoFar == numPlayers
	trickStartDepth := current.Depth - (trickSoFar - 1)

	var nextPlayer int
	if trickCompleted {
		playedInTrick := make([]engine.Card, 0, numPlayers)
		for _, nd := range rest[trickStartDepth:] {
			playedInTrick = append(playedInTrick, cardLUT[nd.Rank])
		}
		playedInTrick = append(playedInTrick, cardLUT[current.Rank])
		starter := rest[trickStartDepth].CurrentPlayer
		if len(rest) == trickStartDepth {
			starter = current.CurrentPlayer
		}
		winner, err := engine.RoundWinner(playedInTrick, starter)
		if err != nil {
			return nil, err
		}
		nextPlayer = winner
	} else {
		nextPlayer = engine.NextPlayer(current.CurrentPlayer, numPlayers)
	}

	if !current.Visited {
		var candidates engine.Hand
		if trickCompleted {
			candidates = players[nextPlayer].Hand
		} else {
			leading := make([]engine.Card, 0, trickSoFar)
			for _, nd := range rest[trickStartDepth:] {
				leading = append(leading, cardLUT[nd.Rank])
			}
			leading = append(leading, cardLUT[current.Rank])
			candidates = engine.LegalCards(engine.Trick{Played: leading}, players[nextPlayer].Hand)
		}
		if len(candidates) == 0 {
			return nil, engine.ErrEmptyLegalSet
		}
		for _, c := range candidates {
			current.CardsToPlay = append(current.CardsToPlay, c.Rank)
		}
		current.Visited = true
	}

	n := len(current.CardsToPlay) - 1
	rank := current.CardsToPlay[n]
	current.CardsToPlay = current.CardsToPlay[:n]

	child := CardNode{
		Rank:          rank,
		Score:         initialScore(players[nextPlayer].Team),
		Alpha:         negInf,
		Beta:          posInf,
		CurrentPlayer: nextPlayer,
		Depth:         current.Depth + 1,
	}
	players[nextPlayer].Hand.Remove(cardLUT[rank])

	nodes := pushNode(rest, current)
	nodes = pushNode(nodes, child)
	return nodes, nil
}
