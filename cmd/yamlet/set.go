package main

import (
	"fmt"
	"strings"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/gomap"
	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/scalar"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a path=value argument", cli.ErrUsage)
	}
	path, value, ok := strings.Cut(args[0], "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected path=value", cli.ErrUsage, args[0])
	}
	args = args[1:]
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		for _, arg := range args {
			var evalErr error
			err := yamlet.Modify(arg, func(doc *ir.Node) *ir.Node {
				val, err := setValue(cfg, doc, value)
				if err != nil {
					evalErr = err
					return nil
				}
				return doc.SetPath(path, val)
			}, cfg.fileOpts()...)
			if evalErr != nil {
				return fmt.Errorf("error evaluating %q: %w", value, evalErr)
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
		val, err := setValue(cfg, doc, value)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", value, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc.SetPath(path, val)); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(args)); err != nil {
			return err
		}
	}
	return nil
}

// setValue produces the node to store.  With -e, value is an expression
// evaluated with the document fields in scope.
func setValue(cfg *SetConfig, doc *ir.Node, value string) (*ir.Node, error) {
	if !cfg.Expr {
		return scalar.Parse(value), nil
	}
	env, err := gomap.ToGo(doc)
	if err != nil {
		return nil, err
	}
	res, err := expr.Eval(value, env)
	if err != nil {
		return nil, err
	}
	return gomap.ToIR(res)
}
