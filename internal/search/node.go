// Package search implements the Search Engine: an iterative,
// alpha-beta-pruned minimax over a flat stack of CardNodes, with
// in-place apply/undo against shared Simulated player hands
// (spec.md §4.6). Ported in structure from original_source's
// `simulation` module (CardNode, minimax, minimax_broad).
package search

import (
	"math"

	"github.com/markushart/rustyheads/internal/engine"
)

const (
	negInf = math.MinInt32
	posInf = math.MaxInt32
)

// CardNode is one entry of the flat search stack (spec.md §3 "Search
// Node (CardNode)").
type CardNode struct {
	Rank          int
	Score         int
	Alpha         int
	Beta          int
	Visited       bool
	Depth         int
	CurrentPlayer int
	CardsToPlay   []int
}

func initialScore(team engine.Team) int {
	if team == engine.Re {
		return negInf
	}
	return posInf
}

// scoreForTeam folds a child's score into a running optimum for team:
// Re maximizes, Contra minimizes (original_source get_score_for_team,
// here without the rank bookkeeping; Choose tracks the best card
// itself).
func scoreForTeam(oldOptimum, newScore int, team engine.Team) int {
	if team == engine.Re {
		if newScore > oldOptimum {
			return newScore
		}
		return oldOptimum
	}
	if newScore < oldOptimum {
		return newScore
	}
	return oldOptimum
}

// alphaBetaForTeam narrows the (alpha, beta) window after observing a
// child's score (original_source get_alpha_beta_for_team).
func alphaBetaForTeam(alpha, beta, newScore int, team engine.Team) (int, int) {
	if team == engine.Re {
		if newScore > alpha {
			return newScore, beta
		}
		return alpha, beta
	}
	if newScore < beta {
		return alpha, newScore
	}
	return alpha, beta
}

// isBranchPrunable is intentionally asymmetric: the parent's role
// decides which comparison closes its window (spec.md §9 "Alpha-beta
// pruning direction").
func isBranchPrunable(alpha, beta int, team engine.Team) bool {
	if team == engine.Re {
		return alpha >= beta
	}
	return alpha <= beta
}

func pushNode(nodes []CardNode, n CardNode) []CardNode { return append(nodes, n) }

func popNode(nodes []CardNode) (CardNode, []CardNode) {
	last := len(nodes) - 1
	return nodes[last], nodes[:last]
}

// pushTrickToTree seeds the root of the search stack with the cards
// already played in the trick in progress (spec.md §4.6
// "Representation"; original_source push_round_to_tree).
func pushTrickToTree(played []engine.Card, startingPlayer, numPlayers int) []CardNode {
	nodes := make([]CardNode, len(played))
	for i, c := range played {
		nodes[i] = CardNode{
			Rank:          c.Rank,
			Depth:         i,
			CurrentPlayer: (startingPlayer + i) % numPlayers,
			Visited:       true,
		}
	}
	return nodes
}
