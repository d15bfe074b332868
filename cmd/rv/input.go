package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/signadot/rvalue/value"
)

const maxLine = 1 << 20

// inputValues builds values from args, or from the lines of in when
// there are no args.
func inputValues(cfg *MainConfig, in io.Reader, args []string) ([]value.Value, error) {
	if len(args) != 0 {
		res := make([]value.Value, 0, len(args))
		for _, arg := range args {
			v, err := cfg.input([]byte(arg))
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	}
	var res []value.Value
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	for sc.Scan() {
		v, err := cfg.input(sc.Bytes())
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return res, nil
}

func (cfg *MainConfig) input(d []byte) (value.Value, error) {
	if !cfg.Hex {
		return value.FromBytes(append([]byte{}, d...)), nil
	}
	res := make([]byte, hex.DecodedLen(len(d)))
	if _, err := hex.Decode(res, d); err != nil {
		return value.Null(), fmt.Errorf("error decoding hex %q: %w", d, err)
	}
	return value.FromBytes(res), nil
}

// pair returns the two values named by args.
func pair(cfg *MainConfig, args []string) (a, b value.Value, err error) {
	if len(args) != 2 {
		return a, b, fmt.Errorf("requires 2 args, got %d", len(args))
	}
	a, err = cfg.input([]byte(args[0]))
	if err != nil {
		return
	}
	b, err = cfg.input([]byte(args[1]))
	return
}
