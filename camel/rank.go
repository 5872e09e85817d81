package camel

import "cmp"

// Rank is a card face value. Two is the lowest, Ace the highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct face values.
const NumRanks = 13

const rankCodes = "23456789TJQKA"

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// ParseRank converts a single card code into a Rank.
func ParseRank(c byte) (Rank, error) {
	switch {
	case c >= '2' && c <= '9':
		return Rank(c - '2'), nil
	case c == 'T':
		return Ten, nil
	case c == 'J':
		return Jack, nil
	case c == 'Q':
		return Queen, nil
	case c == 'K':
		return King, nil
	case c == 'A':
		return Ace, nil
	}
	return 0, &ParseError{Input: string(c), Pos: 0, Err: ErrInvalidRank}
}

// Valid reports whether r is one of the 13 face values.
func (r Rank) Valid() bool {
	return r < NumRanks
}

// Compare returns -1, 0 or +1 depending on whether r is lower than, equal to,
// or higher than other.
func (r Rank) Compare(other Rank) int {
	return cmp.Compare(r, other)
}

// String returns the single character code for the rank (e.g. "T").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankCodes[r : r+1]
}

// Name returns the long form of the rank (e.g. "Ten").
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}
