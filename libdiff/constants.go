package libdiff

import "errors"

// Op is what an Edit does to the text.
type Op int

const (
	EqualOp Op = iota
	DeleteOp
	InsertOp
)

func (o Op) String() string {
	switch o {
	case EqualOp:
		return "equal"
	case DeleteOp:
		return "delete"
	case InsertOp:
		return "insert"
	}
	return "<unknown op>"
}

var ErrPatch = errors.New("patch does not apply")
