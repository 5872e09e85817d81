package camel

import (
	"fmt"
	"slices"
)

// CompareKickers compares two equal-length kicker sets. Both are sorted
// highest first (on copies) and compared element by element; the first
// difference decides. Sets of different lengths can only come from comparing
// different categories, which is a bug, so that case panics.
func CompareKickers(a, b []Rank) int {
	if len(a) != len(b) {
		panic(&InvariantError{
			Op:     "compare kickers",
			Detail: fmt.Sprintf("length mismatch %d != %d", len(a), len(b)),
		})
	}
	sa := sortedDesc(a)
	sb := sortedDesc(b)
	for i := range sa {
		if c := sa[i].Compare(sb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortedDesc(ranks []Rank) []Rank {
	out := slices.Clone(ranks)
	slices.SortFunc(out, func(x, y Rank) int { return y.Compare(x) })
	return out
}
