package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	lib, err := cfg.loadLibrary(args)
	if err != nil {
		return err
	}
	for _, name := range lib.Names() {
		if !cfg.Long {
			fmt.Fprintln(cc.Out, name)
			continue
		}
		s, err := lib.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\trequires=%s\tmodules=%s\n",
			name,
			strings.Join(s.Requires, ","),
			strings.Join(s.Modules, ","))
	}
	return nil
}
