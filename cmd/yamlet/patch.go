package main

import (
	"fmt"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchDoc, err := loadArg(args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	patchJSON, err := ir.ToJSON(patchDoc)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", args[0], err)
	}
	args = args[1:]
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		for _, arg := range args {
			var patchErr error
			err := yamlet.Modify(arg, func(doc *ir.Node) *ir.Node {
				res, err := yamlet.MergePatch(doc, patchJSON)
				if err != nil {
					patchErr = err
					return nil
				}
				return res
			}, cfg.fileOpts()...)
			if patchErr != nil {
				return fmt.Errorf("error patching %s: %w", arg, patchErr)
			}
			if err != nil {
				return fmt.Errorf("error rewriting %s: %w", arg, err)
			}
		}
		return nil
	}
	args = inputArgs(args)
	for i, arg := range args {
		doc, err := loadArg(arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		res, err := yamlet.MergePatch(doc, patchJSON)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(args)); err != nil {
			return err
		}
	}
	return nil
}
