// Package value provides the scalar exchanged with a key/value store: a
// Value holds either nothing (Null), a signed 64-bit integer, or an opaque
// byte sequence (Raw).
//
// # Kinds
//
// The kind of a Value is fixed when it is built:
//
//   - NullKind: no value. The zero Value is Null.
//   - IntegerKind: an int64, as produced by FromInt64, FromBool or an
//     integral FromFloat64.
//   - RawKind: bytes, as produced by FromBytes and FromString. A zero
//     length Raw value is empty text and is distinct from Null.
//
// # Equality, hashing and ordering
//
// Equal bridges the Integer and Raw encodings through canonical decimal
// text: FromInt64(5) equals FromString("5") but not FromString("05").
// Hash is consistent with Equal across encodings.
//
// Compare orders Null first, then compares values that parse as numbers
// numerically and everything else by its canonical bytes. It never
// panics, which makes it safe as a sort comparator; internal failures are
// passed to the sink installed with SetDiagnosticSink and the operands are
// treated as equal.
//
// # Conversions
//
// Each scalar type has a conversion method returning an error wrapping
// ErrInvalidCast when the content does not fit, a Must variant that panics
// and, for numbers and booleans, a Nullable variant mapping Null to nil:
//
//	v := value.FromInt64(42)
//	s := v.String()      // "42"
//	i, err := v.Int64()  // 42, nil
//	b, err := value.FromString("2").Bool() // false, ErrInvalidCast
//
// Of builds a Value from any supported Go scalar.
//
// # Buffers
//
// Raw values share the buffer they were built from, and Bytes returns that
// buffer. Neither side may modify it afterwards.
package value
