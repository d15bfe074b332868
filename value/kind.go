package value

import "fmt"

// Kind is the discriminant of a Value.
type Kind uint8

const (
	NullKind Kind = iota
	IntegerKind
	RawKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case IntegerKind:
		return "Integer"
	case RawKind:
		return "Raw"
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Integer": IntegerKind,
		"Raw":     RawKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{NullKind, IntegerKind, RawKind}
}
