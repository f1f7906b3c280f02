package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	snep "github.com/snep-format/go-snep"
	"github.com/snep-format/go-snep/encode"
	"github.com/snep-format/go-snep/fileio"
)

func (cfg *BuildConfig) targetOpt(cc *cli.Context, a string) (any, error) {
	out, snips, ok := strings.Cut(a, "=")
	if !ok || out == "" {
		return nil, fmt.Errorf("%w: -t wants out=snip1,snip2,..., got %q", cli.ErrUsage, a)
	}
	t := target{out: out}
	for _, s := range strings.Split(snips, ",") {
		if s = strings.TrimSpace(s); s != "" {
			t.snips = append(t.snips, s)
		}
	}
	cfg.Targets = append(cfg.Targets, t)
	return nil, nil
}

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
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
	if len(cfg.Targets) == 0 {
		doc, err := lib.Assemble()
		if err != nil {
			return err
		}
		syn := cfg.Syn
		if syn == nil {
			syn = snep.GuessSyntax(cfg.Out, "")
		}
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, syn)...)
	}
	for _, t := range cfg.Targets {
		doc, err := lib.Assemble(t.snips...)
		if err != nil {
			return fmt.Errorf("target %s: %w", t.out, err)
		}
		syn := cfg.Syn
		if syn == nil {
			syn = snep.GuessSyntax(t.out, "")
		}
		text := snep.Render(doc, encode.EncodeSyntax(syn))
		if err := fileio.Save(t.out, text); err != nil {
			return fmt.Errorf("target %s: %w", t.out, err)
		}
	}
	return nil
}
