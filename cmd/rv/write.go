package main

import (
	"encoding/hex"
	"io"

	"github.com/signadot/rvalue/encode"
	"github.com/signadot/rvalue/value"

	"github.com/scott-cotton/cli"
)

// writeValue writes v as a line in the form it was read, unless an
// output format was requested.
func writeValue(cfg *MainConfig, cc *cli.Context, v value.Value) error {
	if cfg.formatted() {
		return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
	}
	d := v.Bytes()
	if cfg.Hex {
		d = []byte(hex.EncodeToString(d))
	}
	if _, err := cc.Out.Write(d); err != nil {
		return err
	}
	_, err := io.WriteString(cc.Out, "\n")
	return err
}

func (cfg *MainConfig) formatted() bool {
	return cfg.T || cfg.J || cfg.Y || cfg.OutFormat != nil
}
