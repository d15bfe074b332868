package value

import (
	"encoding/binary"
	"strconv"
)

// Equal reports whether a and b hold the same value. An Integer equals a
// Raw value whose bytes are exactly its canonical decimal text, so 5
// equals "5" but not "05". Null equals only Null.
func Equal(a, b Value) bool {
	switch a.kind {
	case NullKind:
		return b.kind == NullKind
	case IntegerKind:
		switch b.kind {
		case IntegerKind:
			return a.i64 == b.i64
		case RawKind:
			return integerEqualsRaw(a.i64, b.raw)
		}
	case RawKind:
		switch b.kind {
		case IntegerKind:
			return integerEqualsRaw(b.i64, a.raw)
		case RawKind:
			return bytesEqual(a.raw, b.raw)
		}
	}
	return false
}

func (v Value) Equal(o Value) bool { return Equal(v, o) }

func (v Value) EqualString(s string) bool { return Equal(v, FromString(s)) }

func (v Value) EqualBytes(d []byte) bool { return Equal(v, FromBytes(d)) }

func (v Value) EqualInt64(i int64) bool { return Equal(v, FromInt64(i)) }

func integerEqualsRaw(i int64, raw []byte) bool {
	// a decimal int64 is at most 20 bytes, anything longer cannot match
	if len(raw) == 0 || len(raw) > 20 {
		return false
	}
	var buf [20]byte
	return bytesEqual(strconv.AppendInt(buf[:0], i, 10), raw)
}

// bytesEqual compares a and b eight bytes at a time and then byte by byte
// over the tail.
func bytesEqual(a, b []byte) bool {
	if len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0]) {
		// identical views, or both empty
		return (a == nil) == (b == nil)
	}
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	n := len(a) &^ 7
	for i := 0; i < n; i += 8 {
		if binary.LittleEndian.Uint64(a[i:i+8]) != binary.LittleEndian.Uint64(b[i:i+8]) {
			return false
		}
	}
	for i := n; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
