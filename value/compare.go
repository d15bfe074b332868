package value

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// Class is how a value takes part in ordering.
type Class uint8

const (
	NullClass Class = iota
	Int64Class
	Float64Class
	RawClass
)

func (c Class) String() string {
	switch c {
	case NullClass:
		return "Null"
	case Int64Class:
		return "Int64"
	case Float64Class:
		return "Float64"
	case RawClass:
		return "Raw"
	}
	return "<unknown class>"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type classified struct {
	class Class
	i64   int64
	f64   float64
}

// classify decides how v takes part in ordering: Integers and Raw values
// holding integer text compare as int64, other numeric text as float64,
// and everything else as text.
func classify(v Value) (classified, error) {
	switch v.kind {
	case NullKind:
		return classified{class: NullClass}, nil
	case IntegerKind:
		return classified{class: Int64Class, i64: v.i64}, nil
	case RawKind:
		if i, ok := TryParseInt64(v.raw); ok {
			return classified{class: Int64Class, i64: i}, nil
		}
		if f, ok := TryParseFloat64(v.raw); ok {
			return classified{class: Float64Class, f64: f}, nil
		}
		return classified{class: RawClass}, nil
	}
	return classified{}, fmt.Errorf("%w %d", errUnknownKind, v.kind)
}

// Compare returns -1, 0 or +1 as a sorts before, with or after b. Null
// sorts first and numbers compare numerically, with NaN below every other
// number. Anything else compares by its canonical bytes: the decimal text
// of an Integer and the stored bytes of a Raw value. Raw bytes that are
// not valid UTF-8 are compared as they are, not as the hex text String
// renders them as.
//
// Compare never panics. A failure is reported to the diagnostic sink and
// the values are treated as equal.
func Compare(a, b Value) (res int) {
	defer func() {
		if r := recover(); r != nil {
			report(fmt.Sprintf("value: compare %s with %s: %v", a.kind, b.kind, r))
			res = 0
		}
	}()
	ca, err := classify(a)
	if err != nil {
		report("value: compare: " + err.Error())
		return 0
	}
	cb, err := classify(b)
	if err != nil {
		report("value: compare: " + err.Error())
		return 0
	}
	if ca.class == NullClass {
		if cb.class == NullClass {
			return 0
		}
		return -1
	}
	if cb.class == NullClass {
		return 1
	}
	switch {
	case ca.class == Int64Class && cb.class == Int64Class:
		return cmp.Compare(ca.i64, cb.i64)
	case ca.class == Int64Class && cb.class == Float64Class:
		return cmp.Compare(float64(ca.i64), cb.f64)
	case ca.class == Float64Class && cb.class == Int64Class:
		return cmp.Compare(ca.f64, float64(cb.i64))
	case ca.class == Float64Class && cb.class == Float64Class:
		return cmp.Compare(ca.f64, cb.f64)
	}
	var bufA, bufB [20]byte
	return bytes.Compare(a.appendText(bufA[:0]), b.appendText(bufB[:0]))
}

func (v Value) Compare(o Value) int { return Compare(v, o) }

// Class returns the class Compare uses for v.
func (v Value) Class() Class {
	c, err := classify(v)
	if err != nil {
		return RawClass
	}
	return c.class
}

func Less(a, b Value) bool { return Compare(a, b) < 0 }

// Sort sorts vs in place by Compare, keeping the input order of values
// that compare equal.
func Sort(vs []Value) {
	slices.SortStableFunc(vs, Compare)
}
