package main

import (
	"bufio"
	"fmt"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/randutil"
)

// GenerateCmd writes random but reproducible input for the score command.
type GenerateCmd struct {
	Count  int    `short:"n" help:"Number of lines to generate (overrides config)"`
	Seed   int64  `help:"RNG seed, 0 picks one from the clock (overrides config)"`
	MaxBid uint64 `help:"Largest bid to generate (overrides config)"`
}

func (cmd *GenerateCmd) Run(env *Env) error {
	gen := env.Config.Generate
	count := cmd.Count
	if count <= 0 {
		count = gen.Count
	}
	maxBid := cmd.MaxBid
	if maxBid == 0 {
		maxBid = gen.MaxBid
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = gen.Seed
	}
	seed = randutil.SeedOrNow(seed, env.Clock.Now())
	env.Logger.Info("generating hands", "count", count, "seed", seed, "maxBid", maxBid)

	rng := randutil.New(seed)
	w := bufio.NewWriter(env.Stdout)
	for i := 0; i < count; i++ {
		hand := camel.RandomHand(rng)
		bid := rng.Uint64N(maxBid) + 1
		fmt.Fprintf(w, "%s %d\n", hand, bid)
	}
	return w.Flush()
}
