package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rvalue/encode"
	"github.com/signadot/rvalue/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log debug messages and comparator diagnostics'"`
	Hex     bool `cli:"name=x aliases=hex desc='inputs are hex encoded bytes'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	var f format.Format
	switch {
	case cfg.T:
		f = format.TextFormat
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	}
	return res
}

type InspectConfig struct {
	*MainConfig
	Inspect *cli.Command
}

type CmpConfig struct {
	*MainConfig
	Cmp *cli.Command
}

type SortConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='sort in descending order'"`
	Unique  bool `cli:"name=u desc='drop values equal to an earlier one'"`

	Sort *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Invert bool `cli:"name=n desc='print values not matching'"`

	Filter *cli.Command
}

type OfConfig struct {
	*MainConfig
	Of *cli.Command
}
