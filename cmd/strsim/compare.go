package main

import (
	"fmt"

	"github.com/standardbeagle/strsim/pkg/strsim"

	"github.com/urfave/cli/v2"
)

func compareCommand(c *cli.Context) error {
	if err := requireArgs(c, "compare", 2, "A B"); err != nil {
		return err
	}
	a, b := c.Args().Get(0), c.Args().Get(1)

	m, err := buildMatcher(c)
	if err != nil {
		return err
	}

	if c.IsSet("algorithm") {
		score := m.Similarity(a, b)
		if c.Bool("json") {
			return writeJSON(c, map[string]interface{}{
				"algorithm": m.Algorithm(),
				"score":     score,
			})
		}
		fmt.Fprintf(c.App.Writer, "%.6f\n", score)
		return nil
	}

	report := m.Compare(a, b)
	if c.Bool("json") {
		return writeJSON(c, report)
	}

	for _, s := range report.Scores {
		fmt.Fprintf(c.App.Writer, "%-14s %.6f\n", s.Algorithm, s.Value)
	}
	fmt.Fprintf(c.App.Writer, "%-14s %s / %s\n", "phonetic codes", report.CodeA, report.CodeB)

	if v, ok := report.Get(strsim.AlgorithmJaroWinkler); ok && v > 1 {
		fmt.Fprintln(c.App.ErrWriter, "note: jaro-winkler exceeds 1.0 for long shared prefixes; use --canonical for the capped form")
	}
	return nil
}
