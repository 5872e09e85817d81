package camel

import (
	"fmt"
	"strings"
)

// Category enumerates hand strengths from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// NumCategories is the number of hand categories.
const NumCategories = 7

var categoryNames = [NumCategories]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Full House",
	"Four of a Kind",
	"Five of a Kind",
}

// Categories returns every category in ascending strength order.
func Categories() []Category {
	return []Category{HighCard, Pair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind}
}

// Strength is the fixed ordering index, HighCard=0 through FiveOfAKind=6.
func (c Category) Strength() int {
	return int(c)
}

// String returns a human-readable category name.
func (c Category) String() string {
	if int(c) >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// ParseCategory accepts either the display name ("Full House") or a
// snake/kebab form ("full_house", "full-house"), case-insensitively.
func ParseCategory(name string) (Category, error) {
	norm := normalizeCategoryName(name)
	for _, c := range Categories() {
		if normalizeCategoryName(c.String()) == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", name)
}

func normalizeCategoryName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
