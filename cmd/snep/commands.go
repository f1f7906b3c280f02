package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"syntax"},
			Description: "marker syntax: sh, c, c++, hs, hs-block (default: guess per file)",
			Type:        cli.NamedFuncOpt(cfg.synOpt, "(syntax)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "snep").
		WithSynopsis("snep [opts] command [opts]").
		WithDescription("snep is a tool for working with directive-annotated snippet files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return snepMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			JSONCommand(cfg),
			ListCommand(cfg),
			OrderCommand(cfg),
			BuildCommand(cfg),
			GuessCommand(cfg),
			MergeCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [-check] [files]").
		WithDescription("parse files and re-render them canonically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithSynopsis("json [files]").
		WithDescription("print the JSON projection of parsed files").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonRun(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("list").
		WithAliases("ls").
		WithSynopsis("list [-l] [files]").
		WithDescription("list the snippets defined in files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func OrderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OrderConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("order").
		WithSynopsis("order <file> [snippets]").
		WithDescription("print snippets in dependency order, requirements first").
		WithRun(func(cc *cli.Context, args []string) error {
			return order(cfg, cc, args)
		})
	cfg.Order = cmd
	return cmd
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "t",
			Description: "build a target file from snippets: out=snip1,snip2,...",
			Type:        cli.NamedFuncOpt(cfg.targetOpt, "(file=snips)"),
		},
	}
	cmd := cli.NewCommand("build").
		WithAliases("b").
		WithSynopsis("build [-t out=snips]... [files]").
		WithDescription("assemble snippet targets in dependency order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
	cfg.Build = cmd
	return cmd
}

func GuessCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GuessConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("guess").
		WithSynopsis("guess [files]").
		WithDescription("print candidate marker syntaxes for files").
		WithRun(func(cc *cli.Context, args []string) error {
			return guess(cfg, cc, args)
		})
	cfg.Guess = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "base",
			Description: "common-ancestor directory for a three-way merge",
			Type:        cli.NamedFuncOpt(cfg.baseOpt, "(dir)"),
		},
		&cli.Opt{
			Name:        "dest",
			Description: "directory receiving the merged tree (default: left)",
			Type:        cli.NamedFuncOpt(cfg.destOpt, "(dir)"),
		})
	cmd := cli.NewCommand("merge").
		WithSynopsis("merge [-i] [-base dir] [-dest dir] <left> <right>").
		WithDescription("merge two directory trees of flat files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeRun(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}
