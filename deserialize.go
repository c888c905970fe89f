package valto

// Func is the single polymorphic deserialization operation: attempt to
// produce a T from an abstract value at a location, raising and merging
// failures through the handler. The value is consumed exactly once. On
// failure the returned error has always been routed through h; callers never
// see a raw unprocessed error.
type Func[T any] func(v Value, at Pointer, h ErrorHandler) (T, error)

// Deserialize adapts a concrete source into the abstract value model and
// runs f from the root location. It is the top-level entry point; everything
// else is recursion through Func values.
func Deserialize[T any](src Source, f Func[T], h ErrorHandler) (T, error) {
	return f(src.Value(), Root, h)
}

// Via deserializes an intermediate I and applies a fallible conversion to
// it, the from/try_from escape hatch. A conversion failure is routed through
// the handler as Unexpected, attributed to the location at which the whole
// value was being deserialized.
func Via[T, I any](inner Func[I], conv func(I) (T, error)) Func[T] {
	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		var zero T
		x, err := inner(v, at, h)
		if err != nil {
			return zero, err
		}
		out, err := conv(x)
		if err != nil {
			e, _ := h.NewError(nil, Unexpected{Msg: err.Error()}, at)
			return zero, e
		}
		return out, nil
	}
}
