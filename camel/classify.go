package camel

import (
	"cmp"
	"fmt"
)

// Classification is the category of a hand together with the ranks that
// define it.
//
//	FiveOfAKind   Kind
//	FourOfAKind   Kind, Kickers[1]
//	FullHouse     Kind (triple), Low (pair)
//	ThreeOfAKind  Kind, Kickers[2]
//	TwoPair       Kind (high pair), Low (low pair), Kickers[1]
//	Pair          Kind, Kickers[3]
//	HighCard      Kickers[5]
//
// Unused fields are zero. Kickers are stored highest first.
type Classification struct {
	Category Category
	Kind     Rank
	Low      Rank
	Kickers  []Rank
}

var (
	shapeFiveOfAKind  = Shape{5}
	shapeFourOfAKind  = Shape{4, 1}
	shapeFullHouse    = Shape{3, 2}
	shapeThreeOfAKind = Shape{3, 1, 1}
	shapeTwoPair      = Shape{2, 2, 1}
	shapePair         = Shape{2, 1, 1, 1}
	shapeHighCard     = Shape{1, 1, 1, 1, 1}
)

// Classify maps a composition onto exactly one category. The shapes below
// partition every composition of five cards; anything else is a bug and
// panics with an *InvariantError.
func Classify(c Composition) Classification {
	switch shape := c.Shape(); shape {
	case shapeFiveOfAKind:
		return Classification{
			Category: FiveOfAKind,
			Kind:     c.RanksWithCount(5)[0],
		}
	case shapeFourOfAKind:
		return Classification{
			Category: FourOfAKind,
			Kind:     c.RanksWithCount(4)[0],
			Kickers:  c.RanksWithCount(1),
		}
	case shapeFullHouse:
		return Classification{
			Category: FullHouse,
			Kind:     c.RanksWithCount(3)[0],
			Low:      c.RanksWithCount(2)[0],
		}
	case shapeThreeOfAKind:
		return Classification{
			Category: ThreeOfAKind,
			Kind:     c.RanksWithCount(3)[0],
			Kickers:  c.RanksWithCount(1),
		}
	case shapeTwoPair:
		pairs := c.RanksWithCount(2)
		return Classification{
			Category: TwoPair,
			Kind:     pairs[0],
			Low:      pairs[1],
			Kickers:  c.RanksWithCount(1),
		}
	case shapePair:
		return Classification{
			Category: Pair,
			Kind:     c.RanksWithCount(2)[0],
			Kickers:  c.RanksWithCount(1),
		}
	case shapeHighCard:
		return Classification{
			Category: HighCard,
			Kickers:  c.RanksWithCount(1),
		}
	default:
		panic(&InvariantError{Op: "classify", Detail: fmt.Sprintf("unhandled shape %q", shape.String())})
	}
}

// ClassifyHand classifies the composition of h.
func ClassifyHand(h Hand) Classification {
	return Classify(NewComposition(h))
}

// Compare orders two classifications the way classic poker kickers would:
// category, then the defining ranks, then the kickers. Final hand ordering
// does not use this; see RankedHand.Compare.
func (c Classification) Compare(other Classification) int {
	if c.Category != other.Category {
		return cmp.Compare(c.Category.Strength(), other.Category.Strength())
	}
	if r := c.Kind.Compare(other.Kind); r != 0 {
		return r
	}
	if r := c.Low.Compare(other.Low); r != 0 {
		return r
	}
	return CompareKickers(c.Kickers, other.Kickers)
}

// String renders the classification with its defining ranks, e.g.
// "Two Pair (Eight, Seven; kicker Ace)".
func (c Classification) String() string {
	switch c.Category {
	case FiveOfAKind:
		return fmt.Sprintf("%s (%s)", c.Category, c.Kind.Name())
	case FullHouse, TwoPair:
		s := fmt.Sprintf("%s (%s, %s", c.Category, c.Kind.Name(), c.Low.Name())
		if len(c.Kickers) > 0 {
			s += "; " + kickerLabel(c.Kickers)
		}
		return s + ")"
	case FourOfAKind, ThreeOfAKind, Pair:
		return fmt.Sprintf("%s (%s; %s)", c.Category, c.Kind.Name(), kickerLabel(c.Kickers))
	case HighCard:
		return fmt.Sprintf("%s (%s)", c.Category, kickerLabel(c.Kickers))
	default:
		return c.Category.String()
	}
}

func kickerLabel(kickers []Rank) string {
	label := "kicker"
	if len(kickers) != 1 {
		label = "kickers"
	}
	for i, k := range kickers {
		if i == 0 {
			label += " "
		} else {
			label += ", "
		}
		label += k.Name()
	}
	return label
}
