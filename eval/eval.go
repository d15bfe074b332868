package eval

import (
	"fmt"

	"github.com/signadot/rvalue/debug"
	"github.com/signadot/rvalue/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env map[string]any

// Program is a compiled predicate over a value bound to the name v.
type Program struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	opts := append(exprOpts(),
		expr.Env(Env{"v": value.Value{}}),
		expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) Match(v value.Value) (bool, error) {
	res, err := vm.Run(p.prg, Env{"v": v})
	if err != nil {
		return false, fmt.Errorf("%w: %q on %q: %w", ErrEval, p.src, v, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, p.src, res)
	}
	if debug.Parse() {
		debug.Logf("%s on %v: %t\n", p.src, v, b)
	}
	return b, nil
}

func (p *Program) String() string { return p.src }
