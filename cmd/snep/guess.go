package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	snep "github.com/snep-format/go-snep"
	"github.com/snep-format/go-snep/fileio"
)

func guess(cfg *GuessConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Guess.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: guess requires file arguments", cli.ErrUsage)
	}
	for _, arg := range args {
		text, err := fileio.Load(arg)
		if err != nil {
			return err
		}
		syn := snep.GuessSyntax(arg, text)
		fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", arg, syn.Name, syn.Marker)
	}
	return nil
}
