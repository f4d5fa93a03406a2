package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	args = inputArgs(args)
	for i, arg := range args {
		doc, err := loadArg(arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(args)); err != nil {
			return err
		}
	}
	return nil
}
