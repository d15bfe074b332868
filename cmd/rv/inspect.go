package main

import (
	"io"

	"github.com/signadot/rvalue/encode"

	"github.com/scott-cotton/cli"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		return err
	}
	vs, err := inputValues(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	sep := "\n"
	if encode.FormatFromOpts(opts...).IsYAML() {
		sep = "---\n"
	}
	for i, v := range vs {
		if i != 0 {
			if _, err := io.WriteString(cc.Out, sep); err != nil {
				return err
			}
		}
		if err := encode.EncodeReport(encode.NewReport(v), cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
