package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	snep "github.com/snep-format/go-snep"
	"github.com/snep-format/go-snep/encode"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	drifted := false
	for _, arg := range args {
		doc, text, syn, err := cfg.loadDoc(arg)
		if err != nil {
			return err
		}
		if !cfg.Check {
			canon := snep.Render(doc, cfg.encOpts(cc.Out, syn)...)
			if _, err := fmt.Fprint(cc.Out, canon); err != nil {
				return err
			}
			continue
		}
		plain := snep.Render(doc, encode.EncodeSyntax(syn))
		if plain == text {
			continue
		}
		drifted = true
		fmt.Fprintf(cc.Out, "%s: not canonical\n", arg)
		dmp := diffmatchpatch.New()
		a, b, lines := dmp.DiffLinesToChars(text, plain)
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	}
	if drifted {
		return cli.ExitCodeErr(1)
	}
	return nil
}
