package engine

import "errors"

// Sentinel errors for the engine's programming-error invariants
// (spec.md §7), following the teacher's own sentinel-error-value
// pattern (internal/engine's PlayError in BrandonDedolph-euchre)
// rather than a third-party errors package.
var (
	// ErrDealError: deck size not divisible by player count, or zero
	// players. Fatal at match init.
	ErrDealError = errors.New("engine: deal error")

	// ErrIllegalCardConfiguration: pair_vs_first reached an impossible
	// quadrant of (serves, serves, rank, trump, trump).
	ErrIllegalCardConfiguration = errors.New("engine: illegal card configuration")

	// ErrEmptyLegalSet: legal_cards returned no candidates, which
	// should be impossible by construction.
	ErrEmptyLegalSet = errors.New("engine: empty legal card set")
)
