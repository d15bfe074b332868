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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rv").
		WithSynopsis("rv [opts] command [opts]").
		WithDescription("rv inspects, compares and sorts redis style scalar values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rvMain(cfg, cc, args)
		}).
		WithSubs(
			InspectCommand(cfg),
			CmpCommand(cfg),
			SortCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg),
			OfCommand(cfg))
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Inspect, "inspect").
		WithAliases("i").
		WithSynopsis("inspect [values]").
		WithDescription("report kind, class, hash and conversions of values (stdin lines if none given)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
}

func CmpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CmpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmp, "cmp").
		WithAliases("c").
		WithSynopsis("cmp a b").
		WithDescription("compare two values, exiting 1 if they are not equal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s").
		WithSynopsis("sort [-r] [-u] [values]").
		WithDescription("sort values (stdin lines if none given) numerically where possible").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] a b").
		WithDescription("show the textual difference between two values, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [-n] expr [values]").
		WithDescription("print values (stdin lines if none given) for which expr is true, with the value bound to v").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func OfCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OfConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Of, "of").
		WithSynopsis("of literal...").
		WithDescription("build values from typed yaml literals such as 12, 1.5, true, null or 'text'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return of(cfg, cc, args)
		})
}
