package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDatabase is returned when a search is attempted against a reference
// database with no records. Searching an empty database fails fast instead of
// returning a degenerate empty ranking.
var ErrEmptyDatabase = errors.New("reference database is empty")

// InvalidSequenceError reports a query sequence that is too short to yield a
// single k-mer after normalization.
type InvalidSequenceError struct {
	Length        int
	MinimumLength int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("sequence must be at least %d bases long, got %d", e.MinimumLength, e.Length)
}
