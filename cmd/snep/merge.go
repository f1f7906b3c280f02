package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/snep-format/go-snep/merge"
)

func (cfg *MergeConfig) baseOpt(cc *cli.Context, a string) (any, error) {
	cfg.Base = a
	return nil, nil
}

func (cfg *MergeConfig) destOpt(cc *cli.Context, a string) (any, error) {
	cfg.Dest = a
	return nil, nil
}

func mergeRun(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge wants two directory arguments", cli.ErrUsage)
	}
	left, err := merge.LoadTree(args[0])
	if err != nil {
		return err
	}
	right, err := merge.LoadTree(args[1])
	if err != nil {
		return err
	}
	opts := &merge.Options{
		Interactive: cfg.Interactive,
		Stdin:       os.Stdin,
		Stdout:      cc.Out,
	}
	if cfg.Base != "" {
		opts.Base, err = merge.LoadTree(cfg.Base)
		if err != nil {
			return err
		}
	}
	merged, err := merge.Files(left, right, opts)
	if err != nil {
		var cerr *merge.ConflictError
		if errors.As(err, &cerr) {
			fmt.Fprint(os.Stderr, cerr.Error())
			return cli.ExitCodeErr(1)
		}
		return err
	}
	dest := cfg.Dest
	if dest == "" {
		dest = args[0]
	}
	return merge.SaveTree(dest, merged)
}
