package camel

import "strings"

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is five cards in the order they were dealt. Slot i of one hand is
// compared against slot i of another when breaking ties.
type Hand [HandSize]Rank

// ParseHand parses a five character hand code such as "32T3K".
func ParseHand(code string) (Hand, error) {
	var h Hand
	if len(code) != HandSize {
		return h, &ParseError{Input: code, Pos: -1, Err: ErrInvalidLength}
	}
	for i := 0; i < HandSize; i++ {
		r, err := ParseRank(code[i])
		if err != nil {
			return Hand{}, &ParseError{Input: code, Pos: i, Err: ErrInvalidRank}
		}
		h[i] = r
	}
	return h, nil
}

// MustParseHand is like ParseHand but panics on error. Intended for tests and
// static fixtures.
func MustParseHand(code string) Hand {
	h, err := ParseHand(code)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the hand code in dealt order.
func (h Hand) String() string {
	var sb strings.Builder
	sb.Grow(HandSize)
	for _, r := range h {
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Compare orders two hands slot by slot, first difference wins.
func (h Hand) Compare(other Hand) int {
	for i := range h {
		if c := h[i].Compare(other[i]); c != 0 {
			return c
		}
	}
	return 0
}
