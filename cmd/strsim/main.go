package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/strsim/internal/config"
	"github.com/standardbeagle/strsim/internal/debug"
	"github.com/standardbeagle/strsim/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scoringFlags are shared by compare and match
func scoringFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "canonical",
			Usage: "Use textbook Levenshtein and Jaro-Winkler",
		},
		&cli.BoolFlag{
			Name:  "fold-case",
			Usage: "Upper-case ASCII letters before scoring",
		},
		&cli.BoolFlag{
			Name:  "split",
			Usage: "Break camelCase and snake_case identifiers into words",
		},
		&cli.BoolFlag{
			Name:  "stem",
			Usage: "Reduce words to their porter2 stem before scoring",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Output as JSON",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "strsim",
		Usage:                  "String similarity scores from the command line",
		Version:                version.Get().String(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file or directory (default: " + config.KDLFileName + " or " + config.TOMLFileName + " in the current or home directory)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write debug output to stderr",
			},
			&cli.BoolFlag{
				Name:   "debug-log",
				Usage:  "Write debug output to a file in the temp directory",
				Hidden: true,
			},
		},
		Before: setupDebug,
		After:  closeDebug,
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Aliases:   []string{"cmp"},
				Usage:     "Score two strings with every algorithm, or one with --algorithm",
				ArgsUsage: "A B",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Only print this algorithm's score",
					},
				}, scoringFlags()...),
				Action: compareCommand,
			},
			{
				Name:      "match",
				Aliases:   []string{"m"},
				Usage:     "Rank candidates by similarity to a query",
				ArgsUsage: "QUERY CANDIDATE...",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Similarity algorithm",
					},
					&cli.Float64Flag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Minimum score (0-1)",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum results (0 = unlimited)",
					},
				}, scoringFlags()...),
				Action: matchCommand,
			},
			{
				Name:      "code",
				Usage:     "Print the phonetic code of each word",
				ArgsUsage: "WORD...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "fold-case",
						Usage: "Upper-case ASCII letters before encoding",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: codeCommand,
			},
			{
				Name:  "config",
				Usage: "Configuration management commands",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print the effective configuration as TOML",
						Action: configShowCommand,
					},
					{
						Name:  "init",
						Usage: "Write a default " + config.KDLFileName + " to the current directory",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "force",
								Aliases: []string{"f"},
								Usage:   "Overwrite an existing file",
							},
						},
						Action: configInitCommand,
					},
				},
			},
		},
	}
}

func setupDebug(c *cli.Context) error {
	if c.Bool("debug-log") {
		path, err := debug.InitDebugLogFile()
		if err != nil {
			return err
		}
		debug.Enable()
		fmt.Fprintf(c.App.ErrWriter, "debug log: %s\n", path)
		return nil
	}

	if c.Bool("debug") {
		debug.SetDebugOutput(c.App.ErrWriter)
		debug.Enable()
		return nil
	}

	if debug.IsDebugEnabled() {
		debug.SetDebugOutput(c.App.ErrWriter)
	}
	return nil
}

func closeDebug(c *cli.Context) error {
	return debug.CloseDebugLog()
}
