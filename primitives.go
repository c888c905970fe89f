package valto

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Signed is the signed integer family accepted by IntOf.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is the unsigned integer family accepted by UintOf.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the floating-point family accepted by FloatOf.
type Float interface {
	~float32 | ~float64
}

// NullOf accepts only Null, producing the unit value.
func NullOf() Func[struct{}] {
	return func(v Value, at Pointer, h ErrorHandler) (struct{}, error) {
		if v.Kind == KindNull {
			return struct{}{}, nil
		}
		e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindNull}}, at)
		return struct{}{}, e
	}
}

// BoolOf accepts only Boolean.
func BoolOf() Func[bool] {
	return func(v Value, at Pointer, h ErrorHandler) (bool, error) {
		if v.Kind == KindBoolean {
			return v.Bool, nil
		}
		e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindBoolean}}, at)
		return false, e
	}
}

// StringOf accepts only String, verbatim.
func StringOf() Func[string] {
	return func(v Value, at Pointer, h ErrorHandler) (string, error) {
		if v.Kind == KindString {
			return v.Str, nil
		}
		e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindString}}, at)
		return "", e
	}
}

// RuneOf accepts a String containing exactly one character.
func RuneOf() Func[rune] {
	return func(v Value, at Pointer, h ErrorHandler) (rune, error) {
		if v.Kind != KindString {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindString}}, at)
			return 0, e
		}
		switch n := utf8.RuneCountInString(v.Str); n {
		case 1:
			r, _ := utf8.DecodeRuneInString(v.Str)
			return r, nil
		case 0:
			e, _ := h.NewError(nil, Unexpected{
				Msg: "expected a string of one character, but found an empty string",
			}, at)
			return 0, e
		default:
			e, _ := h.NewError(nil, Unexpected{
				Msg: fmt.Sprintf("expected a string of one character, but found the following string of %d characters: `%s`", n, v.Str),
			}, at)
			return 0, e
		}
	}
}

// signedBounds computes T's range without reflection: the maxima of the
// fixed-size signed types are exactly the values MaxInt64 >> n.
func signedBounds[T Signed]() (int64, int64) {
	max := int64(math.MaxInt64)
	for int64(T(max)) != max {
		max >>= 1
	}
	return -max - 1, max
}

// UintOf accepts Integer with a checked narrowing conversion. Magnitude
// overflow is Unexpected, naming the offending value and the type's maximum;
// a negative input is a kind mismatch, not a range error.
func UintOf[T Unsigned]() Func[T] {
	max := uint64(^T(0))
	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		if v.Kind != KindInteger {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindInteger}}, at)
			return 0, e
		}
		if v.Uint > max {
			e, _ := h.NewError(nil, Unexpected{
				Msg: fmt.Sprintf("value: `%d` is too large to be deserialized, maximum value authorized is `%d`", v.Uint, max),
			}, at)
			return 0, e
		}
		return T(v.Uint), nil
	}
}

// IntOf accepts Integer or NegativeInteger with checked narrowing; overflow
// and underflow are Unexpected, naming the bound violated.
func IntOf[T Signed]() Func[T] {
	min, max := signedBounds[T]()
	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		switch v.Kind {
		case KindInteger:
			if v.Uint > uint64(max) {
				e, _ := h.NewError(nil, Unexpected{
					Msg: fmt.Sprintf("value: `%d` is too large to be deserialized, maximum value authorized is `%d`", v.Uint, max),
				}, at)
				return 0, e
			}
			return T(v.Uint), nil
		case KindNegativeInteger:
			if v.Int < min {
				e, _ := h.NewError(nil, Unexpected{
					Msg: fmt.Sprintf("value: `%d` is too small to be deserialized, minimum value authorized is `%d`", v.Int, min),
				}, at)
				return 0, e
			}
			return T(v.Int), nil
		default:
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindInteger, KindNegativeInteger}}, at)
			return 0, e
		}
	}
}

// FloatOf accepts Float, Integer or NegativeInteger. Integers are widened
// with a plain cast; a float absorbs any 64-bit integer without a range
// check.
func FloatOf[T Float]() Func[T] {
	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		switch v.Kind {
		case KindFloat:
			return T(v.Float), nil
		case KindInteger:
			return T(v.Uint), nil
		case KindNegativeInteger:
			return T(v.Int), nil
		default:
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindFloat, KindInteger, KindNegativeInteger}}, at)
			return 0, e
		}
	}
}
