package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/ir"

	"github.com/scott-cotton/cli"
)

func yamletMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadArg parses the document named by arg, with "-" meaning stdin.
func loadArg(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return yamlet.Parse(d)
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Node) error {
	if err := yamlet.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// inputArgs defaults to stdin when no files are given.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer, i, n int) error {
	if i >= n-1 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}
