package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yamlet-format/go-yamlet/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	IndentWidth int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil {
		return nil, fmt.Errorf("%w: indent: %w", cli.ErrUsage, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: indent must be positive", cli.ErrUsage)
	}
	cfg.IndentWidth = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.IndentWidth != 0 {
		res = append(res, encode.Indent(cfg.IndentWidth))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// fileOpts is encOpts without color detection, for in-place rewrites.
func (cfg *MainConfig) fileOpts() []encode.EncodeOption {
	if cfg.IndentWidth != 0 {
		return []encode.EncodeOption{encode.Indent(cfg.IndentWidth)}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Expr  bool `cli:"name=e desc='treat the value as an expression over the document'"`
	Write bool `cli:"name=w desc='rewrite the input files in place'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite the input files in place'"`

	Del *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite the input files in place'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
