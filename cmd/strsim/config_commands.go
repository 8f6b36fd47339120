package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/strsim/internal/config"

	"github.com/urfave/cli/v2"
)

const defaultKDLTemplate = `// strsim configuration
version 1

matcher {
    // levenshtein, jaro-winkler, cosine, jaccard or soundex
    algorithm "jaro-winkler"
    threshold 0.8
    // textbook levenshtein/jaro-winkler instead of the byte-level kernel
    canonical false
    max_results 10
}

normalize {
    trim_space true
    split_words false
    fold_case false
    stem false
    stem_min_length 3
}

cache {
    phonetic_codes 1024
}
`

func configShowCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if cfg.Source != "" {
		fmt.Fprintf(c.App.Writer, "# source: %s\n", cfg.Source)
	} else {
		fmt.Fprintln(c.App.Writer, "# source: defaults")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = c.App.Writer.Write(data)
	return err
}

func configInitCommand(c *cli.Context) error {
	path := config.KDLFileName

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(path, []byte(defaultKDLTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return nil
}
