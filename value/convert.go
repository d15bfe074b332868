package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func FromBool(b bool) Value {
	if b {
		return FromInt64(1)
	}
	return FromInt64(0)
}

func FromInt32(i int32) Value { return FromInt64(int64(i)) }

func FromInt(i int) Value { return FromInt64(int64(i)) }

// FromFloat64 stores integral values in the int64 range as Integers,
// infinities as "+inf" and "-inf", NaN as "nan", and everything else as
// the shortest text that parses back to f.
func FromFloat64(f float64) Value {
	switch {
	case math.IsInf(f, 1):
		return FromBytes(posInfToken)
	case math.IsInf(f, -1):
		return FromBytes(negInfToken)
	case math.IsNaN(f):
		return FromBytes(nanToken)
	}
	if f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 {
		return FromInt64(int64(f))
	}
	return FromBytes(strconv.AppendFloat(nil, f, 'g', -1, 64))
}

func FromFloat32(f float32) Value { return FromFloat64(float64(f)) }

// Int64 converts v to an int64. Null converts to 0.
func (v Value) Int64() (int64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case IntegerKind:
		return v.i64, nil
	case RawKind:
		if i, ok := TryParseInt64(v.raw); ok {
			return i, nil
		}
		return 0, fmt.Errorf("%w: %q is not an int64", ErrInvalidCast, v.String())
	}
	return 0, fmt.Errorf("%w: %w %d", ErrInvalidCast, errUnknownKind, v.kind)
}

func (v Value) Int32() (int32, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d overflows int32", ErrInvalidCast, i)
	}
	return int32(i), nil
}

// Float64 converts v to a float64. Null converts to 0.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case IntegerKind:
		return float64(v.i64), nil
	case RawKind:
		if f, ok := TryParseFloat64(v.raw); ok {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q is not a float64", ErrInvalidCast, v.String())
	}
	return 0, fmt.Errorf("%w: %w %d", ErrInvalidCast, errUnknownKind, v.kind)
}

// Bool converts 0 to false and 1 to true; Null is false.
func (v Value) Bool() (bool, error) {
	i, err := v.Int64()
	if err != nil {
		return false, err
	}
	switch i {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: %d is not a bool", ErrInvalidCast, i)
}

// TryInt64 is Int64 reporting failure with a flag. Null gives (0, true).
func (v Value) TryInt64() (int64, bool) {
	switch v.kind {
	case NullKind:
		return 0, true
	case IntegerKind:
		return v.i64, true
	case RawKind:
		return TryParseInt64(v.raw)
	}
	return 0, false
}

// TryFloat64 is Float64 reporting failure with a flag. Null gives (0, true).
func (v Value) TryFloat64() (float64, bool) {
	switch v.kind {
	case NullKind:
		return 0, true
	case IntegerKind:
		return float64(v.i64), true
	case RawKind:
		return TryParseFloat64(v.raw)
	}
	return 0, false
}

// String returns the text of v. Raw bytes that are not valid UTF-8 are
// rendered as dash separated hex pairs, e.g. "FF-00-1A". Null gives "".
func (v Value) String() string {
	switch v.kind {
	case IntegerKind:
		return strconv.FormatInt(v.i64, 10)
	case RawKind:
		if utf8.Valid(v.raw) {
			return string(v.raw)
		}
		return hexDump(v.raw)
	}
	return ""
}

// StringPtr is String with Null giving nil.
func (v Value) StringPtr() *string {
	if v.IsNull() {
		return nil
	}
	s := v.String()
	return &s
}

// Bytes returns the bytes of v. The buffer of a Raw value is returned
// without copying. Null gives nil.
func (v Value) Bytes() []byte {
	switch v.kind {
	case IntegerKind:
		return strconv.AppendInt(nil, v.i64, 10)
	case RawKind:
		return v.raw
	}
	return nil
}

func (v Value) NullableInt64() (*int64, error) {
	if v.IsNull() {
		return nil, nil
	}
	i, err := v.Int64()
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (v Value) NullableInt32() (*int32, error) {
	if v.IsNull() {
		return nil, nil
	}
	i, err := v.Int32()
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (v Value) NullableFloat64() (*float64, error) {
	if v.IsNull() {
		return nil, nil
	}
	f, err := v.Float64()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (v Value) NullableBool() (*bool, error) {
	if v.IsNull() {
		return nil, nil
	}
	b, err := v.Bool()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (v Value) MustInt64() int64 {
	i, err := v.Int64()
	if err != nil {
		panic(err)
	}
	return i
}

func (v Value) MustInt32() int32 {
	i, err := v.Int32()
	if err != nil {
		panic(err)
	}
	return i
}

func (v Value) MustFloat64() float64 {
	f, err := v.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

func (v Value) MustBool() bool {
	b, err := v.Bool()
	if err != nil {
		panic(err)
	}
	return b
}

const hexDigits = "0123456789ABCDEF"

func hexDump(d []byte) string {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(d)*3 - 1)
	for i, c := range d {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}
