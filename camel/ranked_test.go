package camel

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranked(t *testing.T, code string) RankedHand {
	t.Helper()
	rh, err := ParseRankedHand(code)
	require.NoError(t, err)
	return rh
}

func TestRankedHandCategoryDecides(t *testing.T) {
	t.Parallel()

	order := []string{"AKQJT", "22345", "22334", "22234", "22233", "22223", "22222"}
	for i := 1; i < len(order); i++ {
		lo, hi := ranked(t, order[i-1]), ranked(t, order[i])
		assert.Equal(t, -1, lo.Compare(hi), "%s < %s", lo, hi)
		assert.Equal(t, 1, hi.Compare(lo), "%s > %s", hi, lo)
	}
}

func TestRankedHandTieBreakIsPositional(t *testing.T) {
	t.Parallel()

	a := ranked(t, "77888")
	b := ranked(t, "88877")
	require.Equal(t, FullHouse, a.Category())
	require.Equal(t, FullHouse, b.Category())
	assert.Equal(t, -1, a.Compare(b))

	// Kicker rule would call these equal; dealt order separates them.
	c := ranked(t, "A2223")
	d := ranked(t, "3222A")
	require.Equal(t, 0, c.Classification.Compare(d.Classification))
	assert.Equal(t, 1, c.Compare(d))

	assert.Equal(t, -1, ranked(t, "T55J5").Compare(ranked(t, "QQQJA")))
	assert.Equal(t, 1, ranked(t, "KK677").Compare(ranked(t, "KTJJT")))

	assert.Equal(t, -1, ranked(t, "2AAAA").Compare(ranked(t, "33332")))
	assert.Equal(t, 0, ranked(t, "QQQJA").Compare(ranked(t, "QQQJA")))
}

func TestRankedHandSort(t *testing.T) {
	t.Parallel()

	hands := []RankedHand{
		ranked(t, "32T3K"),
		ranked(t, "T55J5"),
		ranked(t, "KK677"),
		ranked(t, "KTJJT"),
		ranked(t, "QQQJA"),
	}
	slices.SortStableFunc(hands, CompareRankedHands)

	got := make([]string, len(hands))
	for i, h := range hands {
		got[i] = h.String()
	}
	assert.Equal(t, []string{"32T3K", "KTJJT", "KK677", "T55J5", "QQQJA"}, got)
}

func TestParseRankedHandError(t *testing.T) {
	t.Parallel()

	_, err := ParseRankedHand("X2345")
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = ParseRankedHand("2345")
	assert.ErrorIs(t, err, ErrInvalidLength)
}
