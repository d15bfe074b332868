package libdiff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/rvalue/value"
)

// Patch applies d to doc. The text of doc must match the equal and
// deleted runs of d. The result takes the kind of d.To, and is d.To itself
// when the patched text matches it. A doc holding bytes that are not
// valid UTF-8 cannot be patched.
func Patch(doc value.Value, d *Diff) (value.Value, error) {
	if d == nil {
		return doc, nil
	}
	if d.To.IsNull() {
		return value.Null(), nil
	}
	if !utf8.Valid(doc.Bytes()) {
		return value.Value{}, fmt.Errorf("%w: document is not valid UTF-8", ErrPatch)
	}
	txt := doc.String()
	res := &strings.Builder{}
	fi := 0
	for _, e := range d.Edits {
		switch e.Op {
		case EqualOp, DeleteOp:
			if !strings.HasPrefix(txt[fi:], e.Text) {
				return value.Value{}, fmt.Errorf("%w: unexpected text %q, expected %q", ErrPatch, txt[fi:], e.Text)
			}
			fi += len(e.Text)
			if e.Op == EqualOp {
				res.WriteString(e.Text)
			}
		case InsertOp:
			res.WriteString(e.Text)
		}
	}
	if fi != len(txt) {
		return value.Value{}, fmt.Errorf("%w: trailing text %q", ErrPatch, txt[fi:])
	}
	if res.String() == d.To.String() {
		return d.To, nil
	}
	out := value.FromString(res.String())
	if d.To.IsInteger() {
		i, err := out.Int64()
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return value.FromInt64(i), nil
	}
	return out, nil
}
