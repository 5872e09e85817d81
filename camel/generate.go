package camel

import rand "math/rand/v2"

// RandomHand deals five independent ranks from rng. Camel cards has no suits
// and no deck limit, so every rank may repeat up to five times.
func RandomHand(rng *rand.Rand) Hand {
	var h Hand
	for i := range h {
		h[i] = Rank(rng.IntN(NumRanks))
	}
	return h
}
