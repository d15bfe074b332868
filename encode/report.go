package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/rvalue/format"
	"github.com/signadot/rvalue/value"

	"github.com/goccy/go-yaml"
)

// Report describes a value: its kind, how it orders, and what each
// conversion yields. Conversions that fail are left empty.
type Report struct {
	Kind   string `json:"kind" yaml:"kind"`
	Class  string `json:"class" yaml:"class"`
	Text   string `json:"text" yaml:"text"`
	Length int    `json:"length" yaml:"length"`
	Hash   string `json:"hash" yaml:"hash"`

	Int64   *int64 `json:"int64,omitempty" yaml:"int64,omitempty"`
	Float64 string `json:"float64,omitempty" yaml:"float64,omitempty"`
	Bool    *bool  `json:"bool,omitempty" yaml:"bool,omitempty"`

	kind value.Kind
}

func NewReport(v value.Value) *Report {
	r := &Report{
		Kind:   v.Kind().String(),
		Class:  v.Class().String(),
		Text:   v.String(),
		Length: v.Length(),
		Hash:   fmt.Sprintf("%016x", v.Hash()),
		kind:   v.Kind(),
	}
	if v.IsNull() {
		return r
	}
	if i, err := v.Int64(); err == nil {
		r.Int64 = &i
	}
	if f, err := v.Float64(); err == nil {
		r.Float64 = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if b, err := v.Bool(); err == nil {
		r.Bool = &b
	}
	return r
}

func EncodeReport(r *Report, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		return writeString(w, string(d))
	}
	return writeString(w, reportText(r, es))
}

func reportText(r *Report, es *EncState) string {
	field := func(name string) string {
		name = fmt.Sprintf("%-8s", name+":")
		if es.Color == nil {
			return name
		}
		return es.Color(r.kind, FieldColor, name)
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s %s\n", field("kind"), r.Kind)
	fmt.Fprintf(b, "%s %s\n", field("class"), r.Class)
	fmt.Fprintf(b, "%s %q\n", field("text"), r.Text)
	fmt.Fprintf(b, "%s %d\n", field("length"), r.Length)
	fmt.Fprintf(b, "%s %s\n", field("hash"), r.Hash)
	if r.Int64 != nil {
		fmt.Fprintf(b, "%s %d\n", field("int64"), *r.Int64)
	}
	if r.Float64 != "" {
		fmt.Fprintf(b, "%s %s\n", field("float64"), r.Float64)
	}
	if r.Bool != nil {
		fmt.Fprintf(b, "%s %t\n", field("bool"), *r.Bool)
	}
	return b.String()
}
