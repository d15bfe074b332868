package main

import (
	"fmt"

	"github.com/signadot/rvalue/eval"
	"github.com/signadot/rvalue/value"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	p, err := eval.Compile(args[0])
	if err != nil {
		return err
	}
	vs, err := inputValues(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	vs, err = filterValues(p, vs, cfg.Invert)
	if err != nil {
		return err
	}
	return writeLines(cfg.MainConfig, cc, vs)
}

func filterValues(p *eval.Program, vs []value.Value, invert bool) ([]value.Value, error) {
	var res []value.Value
	for _, v := range vs {
		ok, err := p.Match(v)
		if err != nil {
			return nil, err
		}
		if ok != invert {
			res = append(res, v)
		}
	}
	return res, nil
}
