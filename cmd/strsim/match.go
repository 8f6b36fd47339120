package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func matchCommand(c *cli.Context) error {
	if err := requireArgs(c, "match", 2, "QUERY CANDIDATE..."); err != nil {
		return err
	}
	args := c.Args().Slice()
	query, candidates := args[0], args[1:]

	m, err := buildMatcher(c)
	if err != nil {
		return err
	}

	matches := m.FindMatches(query, candidates)

	if c.Bool("json") {
		return writeJSON(c, map[string]interface{}{
			"query":     query,
			"algorithm": m.Algorithm(),
			"threshold": m.Threshold(),
			"matches":   matches,
		})
	}

	if len(matches) == 0 {
		fmt.Fprintf(c.App.ErrWriter, "no candidates scored >= %.2f\n", m.Threshold())
		return nil
	}

	for i, match := range matches {
		fmt.Fprintf(c.App.Writer, "%d. %s (%.6f)\n", i+1, match.Term, match.Score)
	}
	return nil
}
