package eval

import (
	"errors"
	"testing"

	"github.com/signadot/rvalue/value"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		script string
		v      value.Value
		want   bool
	}{
		{"toint true", `toint(v) > 3`, value.FromString("5"), true},
		{"toint false", `toint(v) > 3`, value.FromInt64(2), false},
		{"isnull", `isnull(v)`, value.Null(), true},
		{"not isnull", `isnull(v)`, value.FromString(""), false},
		{"kind", `kind(v) == "Integer"`, value.FromInt64(1), true},
		{"class", `class(v) == "Float64"`, value.FromString("1.5"), true},
		{"cmp", `cmp(v, 10) < 0`, value.FromString("9.5"), true},
		{"cmp text", `cmp(v, "b") > 0`, value.FromString("c"), true},
		{"eq", `eq(v, 5)`, value.FromString("5"), true},
		{"eq leading zero", `eq(v, 5)`, value.FromString("05"), false},
		{"text", `text(v) startsWith "ab"`, value.FromString("abc"), true},
		{"tofloat", `tofloat(v) * 2 == 5.0`, value.FromString("2.5"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.script)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Match(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`toint(v) >`, `toint(v)`, `nosuch(v)`} {
		if _, err := Compile(src); !errors.Is(err, ErrCompile) {
			t.Errorf("Compile(%q) err = %v, want ErrCompile", src, err)
		}
	}
}

func TestEvalError(t *testing.T) {
	p, err := Compile(`toint(v) > 0`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Match(value.FromString("x")); !errors.Is(err, ErrEval) {
		t.Errorf("Match(x) err = %v, want ErrEval", err)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("RV_EVAL_TEST", "abc")
	p, err := Compile(`text(v) == getenv("RV_EVAL_TEST")`)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := p.Match(value.FromString("abc")); err != nil || !ok {
		t.Errorf("Match() = (%v, %v)", ok, err)
	}
}
