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
			Name:        "indent",
			Description: "indentation width (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(n)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yamlet").
		WithSynopsis("yamlet [opts] command [opts]").
		WithDescription("yamlet is a tool for working with yamlet documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamletMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and re-encode them in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements by dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-e] [-w] <path>=<value> [files]").
		WithDescription("set a document element by dotted path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithSynopsis("del [-w] <path> [files]").
		WithDescription("delete a document element by dotted path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-w] <patchfile> [files]").
		WithDescription("merge-patch documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
