// Package scoring turns a set of wagered hands into total winnings.
package scoring

import (
	"slices"

	"github.com/lox/camelcards/camel"
)

// WageredHand is a ranked hand and the amount bid on it.
type WageredHand struct {
	Hand camel.RankedHand
	Bid  uint64
	Line int // 1-based source line, 0 when not read from text
}

// NewWageredHand classifies h and attaches bid.
func NewWageredHand(h camel.Hand, bid uint64) WageredHand {
	return WageredHand{Hand: camel.NewRankedHand(h), Bid: bid}
}

// Standing is a hand's final position after every hand has been ranked.
type Standing struct {
	WageredHand
	Rank     int // 1 is the weakest hand
	Winnings uint64
}

// Standings orders hands from weakest to strongest and assigns each its
// 1-based rank and bid*rank winnings. The sort is stable: identical hands
// keep their input order. The input slice is not modified.
func Standings(hands []WageredHand) []Standing {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b WageredHand) int {
		return a.Hand.Compare(b.Hand)
	})

	out := make([]Standing, len(sorted))
	for i, wh := range sorted {
		rank := i + 1
		out[i] = Standing{
			WageredHand: wh,
			Rank:        rank,
			Winnings:    wh.Bid * uint64(rank),
		}
	}
	return out
}

// Score returns the total winnings: the sum of bid*rank over all hands.
func Score(hands []WageredHand) uint64 {
	var total uint64
	for _, s := range Standings(hands) {
		total += s.Winnings
	}
	return total
}
