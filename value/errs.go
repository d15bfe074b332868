package value

import "errors"

var (
	ErrInvalidCast     = errors.New("invalid cast")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrArgumentInvalid = errors.New("invalid argument")

	errUnknownKind = errors.New("unknown kind")
)
