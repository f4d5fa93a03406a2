package main

import (
	"fmt"
	"strings"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/ir"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		for _, arg := range args {
			err := yamlet.Modify(arg, func(doc *ir.Node) *ir.Node {
				return delPath(doc, path)
			}, cfg.fileOpts()...)
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
		if err := writeDoc(cfg.MainConfig, cc.Out, delPath(doc, path)); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(args)); err != nil {
			return err
		}
	}
	return nil
}

// delPath removes the field named by the last path segment from the
// object its prefix addresses.  Absent paths leave doc untouched.
func delPath(doc *ir.Node, path string) *ir.Node {
	i := strings.LastIndex(path, ".")
	parent, field := doc, path
	if i != -1 {
		parent, field = doc.GetPath(path[:i]), path[i+1:]
	}
	if parent != nil && parent.Type == ir.ObjectType {
		parent.RemoveField(field)
	}
	return doc
}
