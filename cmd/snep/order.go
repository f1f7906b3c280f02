package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func order(cfg *OrderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Order.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: order requires a file argument", cli.ErrUsage)
	}
	lib, err := cfg.loadLibrary(args[:1])
	if err != nil {
		return err
	}
	names, err := lib.Order(args[1:]...)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cc.Out, name)
	}
	mods, err := lib.Modules(args[1:]...)
	if err != nil {
		return err
	}
	for _, mod := range mods {
		fmt.Fprintf(cc.Out, "mod:%s\n", mod)
	}
	return nil
}
