package main

import (
	"fmt"

	"github.com/standardbeagle/strsim/internal/matcher"
	"github.com/standardbeagle/strsim/internal/normalize"
	"github.com/standardbeagle/strsim/pkg/strsim"

	"github.com/urfave/cli/v2"
)

func codeCommand(c *cli.Context) error {
	if err := requireArgs(c, "code", 1, "WORD..."); err != nil {
		return err
	}

	m, err := matcher.New(matcher.Options{
		Algorithm:  strsim.AlgorithmSoundex,
		Normalizer: normalize.New(normalize.Options{FoldCase: c.Bool("fold-case")}),
	})
	if err != nil {
		return err
	}

	type wordCode struct {
		Word string `json:"word"`
		Code string `json:"code"`
	}

	words := c.Args().Slice()
	codes := make([]wordCode, 0, len(words))
	for _, w := range words {
		codes = append(codes, wordCode{Word: w, Code: m.PhoneticCode(w)})
	}

	if c.Bool("json") {
		return writeJSON(c, codes)
	}

	for _, wc := range codes {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", wc.Word, wc.Code)
	}
	return nil
}
