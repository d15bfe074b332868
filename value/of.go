package value

import "fmt"

// Of builds a Value from any supported scalar: Value, string, []byte,
// bool, int, int32, int64, float32 or float64. A nil x gives Null. Other
// types fail with ErrUnsupportedType.
func Of(x any) (Value, error) {
	switch y := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return y, nil
	case string:
		return FromString(y), nil
	case []byte:
		return FromBytes(y), nil
	case bool:
		return FromBool(y), nil
	case int:
		return FromInt(y), nil
	case int32:
		return FromInt32(y), nil
	case int64:
		return FromInt64(y), nil
	case float32:
		return FromFloat32(y), nil
	case float64:
		return FromFloat64(y), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}
	return v
}
