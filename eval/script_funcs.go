package eval

import (
	"os"

	"github.com/signadot/rvalue/value"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("kind", func(params ...any) (any, error) {
			return params[0].(value.Value).Kind().String(), nil
		},
			new(func(value.Value) string)),
		expr.Function("class", func(params ...any) (any, error) {
			return params[0].(value.Value).Class().String(), nil
		},
			new(func(value.Value) string)),
		expr.Function("isnull", func(params ...any) (any, error) {
			return params[0].(value.Value).IsNull(), nil
		},
			new(func(value.Value) bool)),
		expr.Function("toint", func(params ...any) (any, error) {
			i, err := params[0].(value.Value).Int64()
			if err != nil {
				return nil, err
			}
			return int(i), nil
		},
			new(func(value.Value) int)),
		expr.Function("tofloat", func(params ...any) (any, error) {
			return params[0].(value.Value).Float64()
		},
			new(func(value.Value) float64)),
		expr.Function("text", func(params ...any) (any, error) {
			return params[0].(value.Value).String(), nil
		},
			new(func(value.Value) string)),
		expr.Function("cmp", func(params ...any) (any, error) {
			o, err := value.Of(params[1])
			if err != nil {
				return nil, err
			}
			return value.Compare(params[0].(value.Value), o), nil
		},
			new(func(value.Value, any) int)),
		expr.Function("eq", func(params ...any) (any, error) {
			o, err := value.Of(params[1])
			if err != nil {
				return nil, err
			}
			return value.Equal(params[0].(value.Value), o), nil
		},
			new(func(value.Value, any) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
