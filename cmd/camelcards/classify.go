package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/lox/camelcards/camel"
)

// ClassifyCmd prints the category of each hand given on the command line.
type ClassifyCmd struct {
	Hands   []string `arg:"" name:"hand" help:"Five character hand codes, e.g. 32T3K"`
	Explain bool     `short:"e" help:"Show composition shape, defining ranks and kickers"`
	Sort    bool     `help:"List hands from weakest to strongest"`
}

func (cmd *ClassifyCmd) Run(env *Env) error {
	hands := make([]camel.RankedHand, 0, len(cmd.Hands))
	for _, code := range cmd.Hands {
		rh, err := camel.ParseRankedHand(strings.TrimSpace(code))
		if err != nil {
			return err
		}
		hands = append(hands, rh)
	}
	if cmd.Sort {
		slices.SortStableFunc(hands, camel.CompareRankedHands)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	header := []string{
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("strength"),
	}
	if cmd.Explain {
		header = append(header, headerStyle.Render("shape"), headerStyle.Render("detail"))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, rh := range hands {
		row := []string{
			handStyle.Render(rh.String()),
			categoryStyle.Render(rh.Category().String()),
			fmt.Sprintf("%d", rh.Category().Strength()),
		}
		if cmd.Explain {
			row = append(row,
				camel.NewComposition(rh.Hand).Shape().String(),
				detailStyle.Render(rh.Classification.String()))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	env.Logger.Debug("classified hands", "count", len(hands))
	return tw.Flush()
}
