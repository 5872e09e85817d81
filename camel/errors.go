package camel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is wrapped by ParseError when a card code is not recognised.
	ErrInvalidRank = errors.New("invalid card")
	// ErrInvalidLength is wrapped by ParseError when a hand is not five cards long.
	ErrInvalidLength = errors.New("hand must contain exactly 5 cards")
)

// ParseError describes input text that could not be turned into cards.
type ParseError struct {
	Input string
	Pos   int // offset of the offending card, -1 when the whole input is at fault
	Err   error
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %v at position %d", e.Input, e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvariantError reports a broken internal invariant. It is only ever raised
// with panic; a well-formed Hand can never produce one.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("camel: %s: invariant violated: %s", e.Op, e.Detail)
}
