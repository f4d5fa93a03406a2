package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	args = inputArgs(args[1:])
	missing := false
	for i, arg := range args {
		doc, err := loadArg(arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		res := doc.GetPath(path)
		if res == nil {
			missing = true
			continue
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(args)); err != nil {
			return err
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
