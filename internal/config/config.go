// Package config loads the optional camelcards.hcl file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/internal/logging"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "camelcards.hcl"

// Config is the complete CLI configuration.
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Jobs     int             `hcl:"jobs,optional"`
	Output   *OutputConfig   `hcl:"output,block"`
	Generate *GenerateConfig `hcl:"generate,block"`
}

// OutputConfig controls how scores are reported.
type OutputConfig struct {
	Standings bool   `hcl:"standings,optional"`
	Path      string `hcl:"path,optional"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Count  int    `hcl:"count,optional"`
	Seed   int64  `hcl:"seed,optional"`
	MaxBid uint64 `hcl:"max_bid,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads an HCL config file. A missing file is not an error: defaults are
// returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Jobs == 0 {
		c.Jobs = 4
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Generate == nil {
		c.Generate = &GenerateConfig{}
	}
	if c.Generate.Count == 0 {
		c.Generate.Count = 1000
	}
	if c.Generate.MaxBid == 0 {
		c.Generate.MaxBid = 1000
	}
}

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Generate.Count < 0 {
		return fmt.Errorf("generate count must not be negative, got %d", c.Generate.Count)
	}
	return nil
}
