package main

import (
	"slices"

	"github.com/signadot/rvalue/value"

	"github.com/scott-cotton/cli"
)

func sortCmd(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	vs, err := inputValues(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	vs = sortValues(vs, cfg.Reverse, cfg.Unique)
	return writeLines(cfg.MainConfig, cc, vs)
}

// sortValues sorts vs in place, keeping the input order of values that
// compare equal in either direction. With unique, values equal to an
// earlier one are dropped, using Hash to bucket candidates.
func sortValues(vs []value.Value, reverse, unique bool) []value.Value {
	if unique {
		seen := map[uint64][]value.Value{}
		j := 0
		for _, v := range vs {
			h := v.Hash()
			if slices.ContainsFunc(seen[h], v.Equal) {
				continue
			}
			seen[h] = append(seen[h], v)
			vs[j] = v
			j++
		}
		vs = vs[:j]
	}
	if reverse {
		slices.SortStableFunc(vs, func(a, b value.Value) int {
			return value.Compare(b, a)
		})
		return vs
	}
	value.Sort(vs)
	return vs
}

func writeLines(cfg *MainConfig, cc *cli.Context, vs []value.Value) error {
	for _, v := range vs {
		if err := writeValue(cfg, cc, v); err != nil {
			return err
		}
	}
	return nil
}
