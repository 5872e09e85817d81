package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/camelcards/internal/fileutil"
	"github.com/lox/camelcards/internal/scoring"
)

// ScoreCmd scores one or more input files.
type ScoreCmd struct {
	Files     []string `arg:"" optional:"" name:"file" help:"Input files, one \"<hand> <bid>\" per line (default: stdin)"`
	Standings bool     `short:"s" help:"Show every hand with its rank and winnings"`
	Output    string   `short:"o" help:"Also write the result to this file (atomically)"`
	Jobs      int      `short:"j" help:"Number of inputs to score concurrently (overrides config)"`
}

type scoreResult struct {
	name      string
	standings []scoring.Standing
	total     uint64
	elapsed   time.Duration
}

func (cmd *ScoreCmd) Run(env *Env) error {
	inputs := cmd.Files
	if len(inputs) == 0 {
		inputs = []string{fileutil.Stdin}
	}
	jobs := cmd.Jobs
	if jobs <= 0 {
		jobs = env.Config.Jobs
	}

	results, err := scoreInputs(context.Background(), env, inputs, jobs)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	showStandings := cmd.Standings || env.Config.Output.Standings
	renderResults(&out, results, showStandings)

	if _, err := env.Stdout.Write(out.Bytes()); err != nil {
		return err
	}

	path := cmd.Output
	if path == "" {
		path = env.Config.Output.Path
	}
	if path != "" {
		if err := fileutil.WriteFileAtomic(path, out.Bytes(), 0o644); err != nil {
			return err
		}
		env.Logger.Info("wrote result", "path", path)
	}
	return nil
}

// scoreInputs scores every input independently. Results come back in input
// order; the first failure cancels inputs that have not started yet.
func scoreInputs(ctx context.Context, env *Env, inputs []string, jobs int) ([]scoreResult, error) {
	results := make([]scoreResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := scoreInput(env, input)
			if err != nil {
				env.Logger.Error("scoring failed", "input", displayName(input), "error", err)
				return fmt.Errorf("%s: %w", displayName(input), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scoreInput(env *Env, input string) (scoreResult, error) {
	start := env.Clock.Now()

	rc, err := fileutil.OpenInput(input, env.Stdin)
	if err != nil {
		return scoreResult{}, err
	}
	defer rc.Close()

	hands, err := scoring.ReadRecords(rc)
	if err != nil {
		return scoreResult{}, err
	}

	standings := scoring.Standings(hands)
	var total uint64
	for _, s := range standings {
		total += s.Winnings
	}

	res := scoreResult{
		name:      displayName(input),
		standings: standings,
		total:     total,
		elapsed:   env.Clock.Since(start),
	}
	env.Logger.Info("scored input",
		"input", res.name,
		"hands", len(hands),
		"total", total,
		"elapsed", res.elapsed)
	return res, nil
}

// renderResults prints a bare total for a single input, which is the form
// scripts consume, and a name/total table otherwise.
func renderResults(w io.Writer, results []scoreResult, showStandings bool) {
	for i, res := range results {
		if showStandings {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if len(results) > 1 {
				fmt.Fprintln(w, headerStyle.Render(res.name))
			}
			renderStandings(w, res.standings)
		}
	}

	if len(results) == 1 {
		if showStandings {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d\n", results[0].total)
		return
	}

	if showStandings {
		fmt.Fprintln(w)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%d\n", res.name, res.total)
	}
	tw.Flush()
}

func renderStandings(w io.Writer, standings []scoring.Standing) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("bid"),
		headerStyle.Render("winnings"))
	for _, s := range standings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			s.Rank,
			handStyle.Render(s.Hand.String()),
			categoryStyle.Render(s.Hand.Category().String()),
			s.Bid,
			winningsStyle.Render(fmt.Sprintf("%d", s.Winnings)))
	}
	tw.Flush()
}

func displayName(input string) string {
	if input == fileutil.Stdin || input == "" {
		return "stdin"
	}
	return input
}
