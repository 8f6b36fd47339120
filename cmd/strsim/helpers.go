package main

import (
	"encoding/json"
	"fmt"

	"github.com/standardbeagle/strsim/internal/config"
	"github.com/standardbeagle/strsim/internal/debug"
	strsimerrors "github.com/standardbeagle/strsim/internal/errors"
	"github.com/standardbeagle/strsim/internal/matcher"

	"github.com/urfave/cli/v2"
)

// loadConfig reads --config if given, otherwise searches the working and
// home directories
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		cfg, err := config.Load(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	if c.IsSet("algorithm") {
		cfg.Matcher.Algorithm = c.String("algorithm")
	}
	if c.IsSet("threshold") {
		cfg.Matcher.Threshold = c.Float64("threshold")
	}
	if c.IsSet("limit") {
		cfg.Matcher.MaxResults = c.Int("limit")
	}
	if c.IsSet("canonical") {
		cfg.Matcher.Canonical = c.Bool("canonical")
	}
	if c.IsSet("fold-case") {
		cfg.Normalize.FoldCase = c.Bool("fold-case")
	}
	if c.IsSet("split") {
		cfg.Normalize.SplitWords = c.Bool("split")
	}
	if c.IsSet("stem") {
		cfg.Normalize.Stem = c.Bool("stem")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug.LogConfig("effective config: %+v\n", *cfg)
	return cfg, nil
}

func buildMatcher(c *cli.Context) (*matcher.Matcher, error) {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return nil, err
	}
	return matcher.NewFromConfig(cfg)
}

func requireArgs(c *cli.Context, op string, min int, usage string) error {
	if c.NArg() < min {
		return strsimerrors.NewInputError(op, fmt.Errorf("usage: strsim %s %s", op, usage))
	}
	return nil
}

func writeJSON(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
