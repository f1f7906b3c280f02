package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func jsonRun(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, _, _, err := cfg.loadDoc(arg)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", d); err != nil {
			return err
		}
	}
	return nil
}
