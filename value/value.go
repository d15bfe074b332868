package value

import (
	"bytes"
	"fmt"
	"strconv"
)

// Value is an immutable scalar: null, a signed 64-bit integer, or a byte
// sequence. The zero Value is Null.
//
// A Raw value borrows the buffer it was built from. Callers must not
// modify a buffer after handing it to FromBytes, nor modify the slice
// returned by Bytes.
type Value struct {
	kind Kind
	i64  int64
	raw  []byte
}

var emptyBytes = []byte{}

func Null() Value {
	return Value{}
}

func FromInt64(i int64) Value {
	return Value{kind: IntegerKind, i64: i}
}

// FromBytes wraps d without copying. A nil d gives Null, an empty non-nil
// d gives the empty Raw value.
func FromBytes(d []byte) Value {
	if d == nil {
		return Value{}
	}
	if len(d) == 0 {
		return Value{kind: RawKind, raw: emptyBytes}
	}
	return Value{kind: RawKind, raw: d}
}

func FromString(s string) Value {
	if s == "" {
		return Value{kind: RawKind, raw: emptyBytes}
	}
	return Value{kind: RawKind, raw: []byte(s)}
}

// FromStringPtr is FromString for optional text: nil gives Null.
func FromStringPtr(s *string) Value {
	if s == nil {
		return Value{}
	}
	return FromString(*s)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) IsInteger() bool { return v.kind == IntegerKind }

// IsNullOrEmpty reports whether v is Null or a zero-length Raw value. It
// is never true for an Integer.
func (v Value) IsNullOrEmpty() bool {
	switch v.kind {
	case NullKind:
		return true
	case RawKind:
		return len(v.raw) == 0
	}
	return false
}

func (v Value) HasValue() bool { return !v.IsNullOrEmpty() }

// Length is the number of bytes in the text form of v.
func (v Value) Length() int {
	switch v.kind {
	case IntegerKind:
		var buf [20]byte
		return len(strconv.AppendInt(buf[:0], v.i64, 10))
	case RawKind:
		return len(v.raw)
	}
	return 0
}

// Simplify returns the Integer form of a Raw value holding canonical
// decimal text, and v otherwise. The result is Equal to v.
func (v Value) Simplify() Value {
	if v.kind != RawKind {
		return v
	}
	i, ok := TryParseInt64(v.raw)
	if !ok {
		return v
	}
	var buf [20]byte
	if !bytes.Equal(strconv.AppendInt(buf[:0], i, 10), v.raw) {
		return v
	}
	return FromInt64(i)
}

// StartsWith reports whether the text form of v begins with the text form
// of prefix. A Null v starts with nothing.
func (v Value) StartsWith(prefix Value) (bool, error) {
	if prefix.IsNull() {
		return false, fmt.Errorf("%w: null prefix", ErrArgumentInvalid)
	}
	if v.IsNull() {
		return false, nil
	}
	var vb, pb [20]byte
	return bytes.HasPrefix(v.appendText(vb[:0]), prefix.appendText(pb[:0])), nil
}

// Key returns the bytes of v for use as a key argument. Keys may be empty
// but not Null.
func (v Value) Key() ([]byte, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("%w: null key", ErrArgumentInvalid)
	}
	return v.Bytes(), nil
}

// appendText appends the canonical bytes of v to dst. Raw values are
// returned as is when dst is empty so that no copy is made.
func (v Value) appendText(dst []byte) []byte {
	switch v.kind {
	case IntegerKind:
		return strconv.AppendInt(dst, v.i64, 10)
	case RawKind:
		if len(dst) == 0 {
			return v.raw
		}
		return append(dst, v.raw...)
	}
	return dst
}
