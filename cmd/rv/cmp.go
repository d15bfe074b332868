package main

import (
	"fmt"

	"github.com/signadot/rvalue/value"

	"github.com/scott-cotton/cli"
)

func compare(cfg *CmpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmp.Parse(cc, args)
	if err != nil {
		return err
	}
	a, b, err := pair(cfg.MainConfig, args)
	if err != nil {
		return fmt.Errorf("%w: cmp %w", cli.ErrUsage, err)
	}
	eq := value.Equal(a, b)
	fmt.Fprintf(cc.Out, "equal:   %t\n", eq)
	fmt.Fprintf(cc.Out, "compare: %d\n", value.Compare(a, b))
	fmt.Fprintf(cc.Out, "classes: %s %s\n", a.Class(), b.Class())
	fmt.Fprintf(cc.Out, "hashes:  %016x %016x\n", a.Hash(), b.Hash())
	if !eq {
		return cli.ExitCodeErr(1)
	}
	return nil
}
