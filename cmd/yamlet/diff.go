package main

import (
	"fmt"

	"github.com/yamlet-format/go-yamlet/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := loadArg(args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := loadArg(args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	d := libdiff.Diff(a, b)
	if d == nil {
		return nil
	}
	if err := writeDoc(cfg.MainConfig, cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
