// Package camel ranks five-card camel cards hands.
//
// A hand is parsed from a five character code, reduced to a composition of
// rank counts, and classified into one of seven categories by the shape of
// those counts. RankedHand combines the category with the original dealt
// order to give a total order over hands.
//
// # Basic Usage
//
//	rh, err := camel.ParseRankedHand("KK677")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rh.Classification) // Two Pair (King, Seven; kicker Six)
//
// # Ordering
//
// Hands of different categories are ordered by category strength. Hands of
// the same category are ordered by comparing the first card, then the second,
// and so on, in the order they were dealt:
//
//	a := camel.MustParseHand("77888")
//	b := camel.MustParseHand("88877")
//	camel.NewRankedHand(a).Compare(camel.NewRankedHand(b)) // -1
//
// Kicker ranks on Classification are informational. They never decide the
// order of two RankedHands.
package camel
