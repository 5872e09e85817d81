package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config   string           `short:"c" default:"camelcards.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`

	Score    ScoreCmd    `cmd:"" default:"withargs" help:"Compute total winnings for files of \"<hand> <bid>\" lines"`
	Classify ClassifyCmd `cmd:"" help:"Show the category of one or more hands"`
	Generate GenerateCmd `cmd:"" help:"Emit deterministic random \"<hand> <bid>\" lines"`
}

// Env carries the shared dependencies every command runs with.
type Env struct {
	Config *config.Config
	Logger *log.Logger
	Clock  quartz.Clock
	Stdin  io.Reader
	Stdout io.Writer
}

func newEnv(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*Env, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("loaded configuration", "path", cli.Config, "jobs", cfg.Jobs)

	return &Env{
		Config: cfg,
		Logger: logger,
		Clock:  quartz.NewReal(),
		Stdin:  stdin,
		Stdout: stdout,
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camelcards"),
		kong.Description("Rank camel cards hands and score bids"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	env, err := newEnv(&cli, os.Stdin, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(env)
	ctx.FatalIfErrorf(err)
}
