package main

import (
	"fmt"

	"github.com/signadot/rvalue/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	from, to, err := pair(cfg.MainConfig, args)
	if err != nil {
		return fmt.Errorf("%w: diff %w", cli.ErrUsage, err)
	}
	d := libdiff.DiffValues(from, to)
	if d == nil {
		return nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if _, err := fmt.Fprintln(cc.Out, d.String()); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
