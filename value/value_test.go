package value

import (
	"errors"
	"testing"
)

func TestConstructors(t *testing.T) {
	empty := ""
	tests := []struct {
		name                    string
		v                       Value
		kind                    Kind
		isNull, isInt, nullOrEm bool
	}{
		{"Null", Null(), NullKind, true, false, true},
		{"Zero Value", Value{}, NullKind, true, false, true},
		{"Nil Text", FromStringPtr(nil), NullKind, true, false, true},
		{"Empty Text Ptr", FromStringPtr(&empty), RawKind, false, false, true},
		{"Empty Text", FromString(""), RawKind, false, false, true},
		{"Nil Bytes", FromBytes(nil), NullKind, true, false, true},
		{"Empty Bytes", FromBytes([]byte{}), RawKind, false, false, true},
		{"Text", FromString("a"), RawKind, false, false, false},
		{"Zero", FromInt64(0), IntegerKind, false, true, false},
		{"Bool", FromBool(false), IntegerKind, false, true, false},
		{"Int32", FromInt32(-1), IntegerKind, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %s, want %s", got, tt.kind)
			}
			if got := tt.v.IsNull(); got != tt.isNull {
				t.Errorf("IsNull() = %v, want %v", got, tt.isNull)
			}
			if got := tt.v.IsInteger(); got != tt.isInt {
				t.Errorf("IsInteger() = %v, want %v", got, tt.isInt)
			}
			if got := tt.v.IsNullOrEmpty(); got != tt.nullOrEm {
				t.Errorf("IsNullOrEmpty() = %v, want %v", got, tt.nullOrEm)
			}
			if got := tt.v.HasValue(); got == tt.nullOrEm {
				t.Errorf("HasValue() = %v", got)
			}
		})
	}
}

func TestLength(t *testing.T) {
	for _, tt := range []struct {
		v    Value
		want int
	}{
		{Null(), 0},
		{FromString(""), 0},
		{FromString("abc"), 3},
		{FromInt64(-123), 4},
		{FromInt64(0), 1},
	} {
		if got := tt.v.Length(); got != tt.want {
			t.Errorf("%s Length() = %d, want %d", tt.v.Kind(), got, tt.want)
		}
	}
}

func TestSimplify(t *testing.T) {
	for _, tt := range []struct {
		in   Value
		kind Kind
	}{
		{FromString("42"), IntegerKind},
		{FromString("-9"), IntegerKind},
		{FromString("042"), RawKind},
		{FromString("-0"), RawKind},
		{FromString("4.2"), RawKind},
		{FromString(""), RawKind},
		{FromInt64(3), IntegerKind},
		{Null(), NullKind},
	} {
		got := tt.in.Simplify()
		if got.Kind() != tt.kind {
			t.Errorf("Simplify(%q) kind = %s, want %s", tt.in, got.Kind(), tt.kind)
		}
		if !Equal(got, tt.in) {
			t.Errorf("Simplify(%q) = %q, not equal to input", tt.in, got)
		}
	}
}

func TestStartsWith(t *testing.T) {
	ok, err := FromString("hello").StartsWith(FromString("he"))
	if err != nil || !ok {
		t.Errorf("hello StartsWith he = (%v, %v)", ok, err)
	}
	ok, err = FromInt64(123).StartsWith(FromString("12"))
	if err != nil || !ok {
		t.Errorf("123 StartsWith 12 = (%v, %v)", ok, err)
	}
	ok, err = FromString("12").StartsWith(FromInt64(123))
	if err != nil || ok {
		t.Errorf("12 StartsWith 123 = (%v, %v)", ok, err)
	}
	ok, err = Null().StartsWith(FromString(""))
	if err != nil || ok {
		t.Errorf("Null StartsWith \"\" = (%v, %v)", ok, err)
	}
	if _, err := FromString("a").StartsWith(Null()); !errors.Is(err, ErrArgumentInvalid) {
		t.Errorf("StartsWith(Null) err = %v, want ErrArgumentInvalid", err)
	}
}

func TestKey(t *testing.T) {
	if _, err := Null().Key(); !errors.Is(err, ErrArgumentInvalid) {
		t.Errorf("Null().Key() err = %v, want ErrArgumentInvalid", err)
	}
	k, err := FromInt64(7).Key()
	if err != nil || string(k) != "7" {
		t.Errorf("Key() = (%q, %v)", k, err)
	}
	k, err = FromString("").Key()
	if err != nil || k == nil {
		t.Errorf("empty Key() = (%#v, %v)", k, err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("round trip %s gave %s", k, got)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Float")); err == nil {
		t.Error("UnmarshalText(Float) succeeded")
	}
}
