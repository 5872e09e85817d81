package camel

import "cmp"

// RankedHand is a hand together with its classification.
type RankedHand struct {
	Classification Classification
	Hand           Hand
}

// NewRankedHand classifies h.
func NewRankedHand(h Hand) RankedHand {
	return RankedHand{Classification: ClassifyHand(h), Hand: h}
}

// ParseRankedHand parses and classifies a hand code.
func ParseRankedHand(code string) (RankedHand, error) {
	h, err := ParseHand(code)
	if err != nil {
		return RankedHand{}, err
	}
	return NewRankedHand(h), nil
}

// Category is shorthand for rh.Classification.Category.
func (rh RankedHand) Category() Category {
	return rh.Classification.Category
}

// Compare defines the total order over hands. Categories are compared by
// strength; hands of the same category are then compared card by card in
// dealt order. The classification's kind and kicker ranks are deliberately
// not consulted.
func (rh RankedHand) Compare(other RankedHand) int {
	if c := cmp.Compare(rh.Category().Strength(), other.Category().Strength()); c != 0 {
		return c
	}
	return rh.Hand.Compare(other.Hand)
}

// CompareRankedHands is RankedHand.Compare in a form usable with the slices
// package.
func CompareRankedHands(a, b RankedHand) int {
	return a.Compare(b)
}

// String returns the hand code.
func (rh RankedHand) String() string {
	return rh.Hand.String()
}
