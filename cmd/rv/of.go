package main

import (
	"fmt"
	"math"

	"github.com/signadot/rvalue/debug"
	"github.com/signadot/rvalue/encode"
	"github.com/signadot/rvalue/value"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func of(cfg *OfConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Of.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: of requires a literal", cli.ErrUsage)
	}
	for _, arg := range args {
		v, err := ofLiteral(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

// ofLiteral decodes s as a yaml scalar and builds a value from the
// resulting Go type.
func ofLiteral(s string) (value.Value, error) {
	var x any
	if err := yaml.Unmarshal([]byte(s), &x); err != nil {
		return value.Null(), fmt.Errorf("error decoding literal %q: %w", s, err)
	}
	if u, ok := x.(uint64); ok {
		if u > math.MaxInt64 {
			x = s
		} else {
			x = int64(u)
		}
	}
	v, err := value.Of(x)
	if err != nil {
		return value.Null(), fmt.Errorf("literal %q: %w", s, err)
	}
	if debug.Parse() {
		debug.Logf("literal %q typed as %T gave %v\n", s, x, v)
	}
	return v, nil
}
