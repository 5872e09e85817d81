package camel

import (
	"slices"
	"strconv"
	"strings"
)

// Composition counts how many cards of each rank a hand holds. The counts of
// a composition built from a Hand always sum to HandSize.
type Composition struct {
	counts [NumRanks]uint8
}

// NewComposition counts the ranks in h.
func NewComposition(h Hand) Composition {
	var c Composition
	for _, r := range h {
		c.counts[r]++
	}
	return c
}

// Count returns the multiplicity of r.
func (c Composition) Count(r Rank) int {
	if !r.Valid() {
		return 0
	}
	return int(c.counts[r])
}

// Distinct returns the number of ranks present at least once.
func (c Composition) Distinct() int {
	n := 0
	for _, count := range c.counts {
		if count > 0 {
			n++
		}
	}
	return n
}

// RanksWithCount returns every rank that appears exactly n times, highest
// rank first.
func (c Composition) RanksWithCount(n int) []Rank {
	var ranks []Rank
	for r := Ace; ; r-- {
		if int(c.counts[r]) == n {
			ranks = append(ranks, r)
		}
		if r == Two {
			break
		}
	}
	return ranks
}

// Shape returns the non-zero counts sorted from largest to smallest.
func (c Composition) Shape() Shape {
	var s Shape
	i := 0
	for _, count := range c.counts {
		if count == 0 {
			continue
		}
		if i == len(s) {
			// More than five distinct ranks cannot come from a Hand.
			panic(&InvariantError{Op: "shape", Detail: "more than 5 distinct ranks"})
		}
		s[i] = count
		i++
	}
	slices.SortFunc(s[:i], func(a, b uint8) int { return int(b) - int(a) })
	return s
}

// Shape is the multiset of rank multiplicities in descending order, padded
// with zeros. {3,1,1,0,0} is three of a kind.
type Shape [HandSize]uint8

// String renders the shape as "3-1-1".
func (s Shape) String() string {
	parts := make([]string, 0, len(s))
	for _, n := range s {
		if n == 0 {
			break
		}
		parts = append(parts, strconv.Itoa(int(n)))
	}
	return strings.Join(parts, "-")
}
