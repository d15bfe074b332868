package encode

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/rvalue/format"
	"github.com/signadot/rvalue/value"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format   format.Format
	noLabels bool

	Color func(value.Kind, ColorAttr, string) string
}

// Encode writes v to w followed by a newline.
//
// The text format follows the usual store client conventions: Null is
// "(nil)", integers are labelled "(integer)" and byte strings are quoted
// with Go escapes. JSON and YAML render Null as null, integers as numbers,
// valid UTF-8 as strings and other bytes as {"hex": ...}.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.Marshal(ToAny(v))
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := yaml.Marshal(ToAny(v))
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return writeString(w, string(d))
	}
	return writeString(w, encodeText(v, es)+"\n")
}

func encodeText(v value.Value, es *EncState) string {
	var label, text string
	switch v.Kind() {
	case value.NullKind:
		if es.noLabels {
			return ""
		}
		label = "(nil)"
	case value.IntegerKind:
		if !es.noLabels {
			label = "(integer) "
		}
		text = v.String()
	case value.RawKind:
		text = strconv.Quote(string(v.Bytes()))
	}
	if es.Color != nil {
		if label != "" {
			label = es.Color(v.Kind(), LabelColor, label)
		}
		if text != "" {
			text = es.Color(v.Kind(), ValueColor, text)
		}
	}
	return label + text
}

// ToAny returns the JSON/YAML data model form of v.
func ToAny(v value.Value) any {
	switch v.Kind() {
	case value.IntegerKind:
		return v.MustInt64()
	case value.RawKind:
		d := v.Bytes()
		if utf8.Valid(d) {
			return string(d)
		}
		return map[string]string{"hex": hex.EncodeToString(d)}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
