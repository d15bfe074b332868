package libdiff

import (
	"errors"
	"testing"

	"github.com/signadot/rvalue/value"

	"github.com/google/go-cmp/cmp"
)

func TestDiffEqual(t *testing.T) {
	if d := DiffValues(value.FromInt64(5), value.FromString("5")); d != nil {
		t.Errorf("diff of equal values: %s", d)
	}
	if d := DiffValues(value.Null(), value.Null()); d != nil {
		t.Errorf("diff of nulls: %s", d)
	}
}

func TestDiffValues(t *testing.T) {
	d := DiffValues(value.FromString("hello world"), value.FromString("hello there world"))
	if d == nil {
		t.Fatal("no diff")
	}
	want := []Edit{
		{EqualOp, "hello "},
		{InsertOp, "there "},
		{EqualOp, "world"},
	}
	if diff := cmp.Diff(want, d.Edits); diff != "" {
		t.Errorf("Edits mismatch (-want +got):\n%s", diff)
	}
	if got := d.String(); got != "hello {+there +}world" {
		t.Errorf("String() = %q", got)
	}
}

func TestDiffKind(t *testing.T) {
	d := DiffValues(value.Null(), value.FromString(""))
	if d == nil || !d.KindChanged() || len(d.Edits) != 0 {
		t.Fatalf("DiffValues(Null, \"\") = %#v", d)
	}
	if got := d.String(); got != "Null -> Raw: " {
		t.Errorf("String() = %q", got)
	}
	d = DiffValues(value.FromInt64(5), value.FromString("05"))
	if d == nil || !d.KindChanged() {
		t.Fatalf("DiffValues(5, \"05\") = %#v", d)
	}
}

func TestReversePatch(t *testing.T) {
	pairs := [][2]value.Value{
		{value.FromString("kitten"), value.FromString("sitting")},
		{value.FromInt64(1234), value.FromInt64(1294)},
		{value.FromString("abc"), value.FromInt64(42)},
		{value.FromString("line1\nline2\n"), value.FromString("line1\nline3\n")},
		{value.Null(), value.FromString("x")},
		{value.FromString("x"), value.Null()},
	}
	for _, p := range pairs {
		from, to := p[0], p[1]
		d := DiffValues(from, to)
		got, err := Patch(from, d)
		if err != nil {
			t.Errorf("Patch(%q -> %q): %v", from, to, err)
			continue
		}
		if !value.Equal(got, to) || got.Kind() != to.Kind() {
			t.Errorf("Patch(%q) = %s %q, want %s %q", from, got.Kind(), got, to.Kind(), to)
		}
		back, err := Patch(to, Reverse(d))
		if err != nil {
			t.Errorf("reverse Patch(%q -> %q): %v", to, from, err)
			continue
		}
		if !value.Equal(back, from) {
			t.Errorf("reverse Patch(%q) = %q, want %q", to, back, from)
		}
	}
}

func TestPatchMismatch(t *testing.T) {
	d := DiffValues(value.FromString("abc"), value.FromString("abd"))
	if _, err := Patch(value.FromString("xyz"), d); !errors.Is(err, ErrPatch) {
		t.Errorf("Patch mismatch err = %v, want ErrPatch", err)
	}
	if _, err := Patch(value.FromString("abcdef"), d); !errors.Is(err, ErrPatch) {
		t.Errorf("Patch trailing err = %v, want ErrPatch", err)
	}
}

func TestPatchBinary(t *testing.T) {
	bin := value.FromBytes([]byte{0xff, 0x01})
	d := DiffValues(bin, value.FromString("FF-02"))
	if _, err := Patch(bin, d); !errors.Is(err, ErrPatch) {
		t.Errorf("Patch(binary) err = %v, want ErrPatch", err)
	}
	got, err := Patch(bin, DiffValues(bin, value.Null()))
	if err != nil || !got.IsNull() {
		t.Errorf("Patch(binary -> Null) = (%q, %v), want Null", got, err)
	}
}
