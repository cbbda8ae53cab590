package catalog

import "errors"

// ErrCatalog is the sentinel for rule-store failures: missing store,
// an ordinal out of range, or a queried (deck, match) pair returning
// zero rows. Fatal at match init per spec.md §7.
var ErrCatalog = errors.New("catalog: rule store error")
