package valto

import "fmt"

// NullableOf maps Null to a nil pointer and delegates everything else to
// inner, boxing the result. Absence and Null collapse to the same nil.
func NullableOf[T any](inner Func[T]) Func[*T] {
	return func(v Value, at Pointer, h ErrorHandler) (*T, error) {
		if v.Kind == KindNull {
			return nil, nil
		}
		out, err := inner(v, at, h)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// PtrOf boxes inner's result without interpreting Null itself.
func PtrOf[T any](inner Func[T]) Func[*T] {
	return func(v Value, at Pointer, h ErrorHandler) (*T, error) {
		out, err := inner(v, at, h)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// SliceOf accepts a Sequence and decodes each element at its index
// location. Element failures are merged through h, so an accumulating
// handler reports every bad element in one pass.
func SliceOf[T any](inner Func[T]) Func[[]T] {
	return func(v Value, at Pointer, h ErrorHandler) ([]T, error) {
		if v.Kind != KindSequence {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindSequence}}, at)
			return nil, e
		}
		items := v.Seq.Items()
		out := make([]T, 0, len(items))
		var err error
		for i, item := range items {
			elemAt := at.Index(i)
			elem, e := inner(item.Value(), elemAt, h)
			if e != nil {
				var stop bool
				err, stop = h.Merge(err, e, elemAt)
				if stop {
					return nil, err
				}
				continue
			}
			out = append(out, elem)
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// ArrayOf is SliceOf with a fixed length. A wrong-length sequence raises
// an arity error but the elements are still visited, so an accumulating
// handler sees both the arity problem and any element problems.
func ArrayOf[T any](n int, inner Func[T]) Func[[]T] {
	return func(v Value, at Pointer, h ErrorHandler) ([]T, error) {
		if v.Kind != KindSequence {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindSequence}}, at)
			return nil, e
		}
		items := v.Seq.Items()
		var err error
		if len(items) != n {
			var stop bool
			err, stop = h.NewError(nil, Unexpected{
				Msg: fmt.Sprintf("The sequence should have exactly %d elements, but found %d.", n, len(items)),
			}, at)
			if stop {
				return nil, err
			}
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			elemAt := at.Index(i)
			elem, e := inner(item.Value(), elemAt, h)
			if e != nil {
				var stop bool
				err, stop = h.Merge(err, e, elemAt)
				if stop {
					return nil, err
				}
				continue
			}
			out = append(out, elem)
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Pair is the result of Tuple2Of.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the result of Tuple3Of.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2Of accepts a Sequence of exactly two elements, each with its own
// decoder. A wrong arity is terminal: positional meaning is lost, so the
// elements are not visited.
func Tuple2Of[A, B any](first Func[A], second Func[B]) Func[Pair[A, B]] {
	return func(v Value, at Pointer, h ErrorHandler) (Pair[A, B], error) {
		var out Pair[A, B]
		if v.Kind != KindSequence {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindSequence}}, at)
			return out, e
		}
		items := v.Seq.Items()
		if len(items) != 2 {
			e, _ := h.NewError(nil, Unexpected{Msg: "The sequence should have exactly 2 elements."}, at)
			return out, e
		}
		var err error
		a, e := first(items[0].Value(), at.Index(0), h)
		if e != nil {
			var stop bool
			err, stop = h.Merge(err, e, at.Index(0))
			if stop {
				return out, err
			}
		}
		b, e := second(items[1].Value(), at.Index(1), h)
		if e != nil {
			var stop bool
			err, stop = h.Merge(err, e, at.Index(1))
			if stop {
				return out, err
			}
		}
		if err != nil {
			return out, err
		}
		out.First, out.Second = a, b
		return out, nil
	}
}

// Tuple3Of is Tuple2Of for three positions.
func Tuple3Of[A, B, C any](first Func[A], second Func[B], third Func[C]) Func[Triple[A, B, C]] {
	return func(v Value, at Pointer, h ErrorHandler) (Triple[A, B, C], error) {
		var out Triple[A, B, C]
		if v.Kind != KindSequence {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindSequence}}, at)
			return out, e
		}
		items := v.Seq.Items()
		if len(items) != 3 {
			e, _ := h.NewError(nil, Unexpected{Msg: "The sequence should have exactly 3 elements."}, at)
			return out, e
		}
		var err error
		a, e := first(items[0].Value(), at.Index(0), h)
		if e != nil {
			var stop bool
			err, stop = h.Merge(err, e, at.Index(0))
			if stop {
				return out, err
			}
		}
		b, e := second(items[1].Value(), at.Index(1), h)
		if e != nil {
			var stop bool
			err, stop = h.Merge(err, e, at.Index(1))
			if stop {
				return out, err
			}
		}
		c, e := third(items[2].Value(), at.Index(2), h)
		if e != nil {
			var stop bool
			err, stop = h.Merge(err, e, at.Index(2))
			if stop {
				return out, err
			}
		}
		if err != nil {
			return out, err
		}
		out.First, out.Second, out.Third = a, b, c
		return out, nil
	}
}

// StringKey is the identity key parser for MapOf.
func StringKey(s string) (string, error) { return s, nil }

// MapOf accepts a Map, parsing each string key with key and each value with
// inner at the key's location. A key that fails to parse is reported at the
// map's own location, naming the key and the target type.
func MapOf[K comparable, V any](key func(string) (K, error), inner Func[V]) Func[map[K]V] {
	return func(v Value, at Pointer, h ErrorHandler) (map[K]V, error) {
		if v.Kind != KindMap {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindMap}}, at)
			return nil, e
		}
		entries := v.Map.Entries()
		out := make(map[K]V, len(entries))
		var err error
		for _, entry := range entries {
			k, ke := key(entry.Key)
			if ke != nil {
				var zero K
				var stop bool
				err, stop = h.NewError(err, Unexpected{
					Msg: fmt.Sprintf("The key \"%s\" could not be deserialized into the key type `%T`", entry.Key, zero),
				}, at)
				if stop {
					return nil, err
				}
				continue
			}
			valAt := at.Key(entry.Key)
			val, e := inner(entry.Value.Value(), valAt, h)
			if e != nil {
				var stop bool
				err, stop = h.Merge(err, e, valAt)
				if stop {
					return nil, err
				}
				continue
			}
			out[k] = val
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// SetOf accepts a Sequence and collects the decoded elements into a set.
// Duplicates collapse silently.
func SetOf[T comparable](inner Func[T]) Func[map[T]struct{}] {
	return func(v Value, at Pointer, h ErrorHandler) (map[T]struct{}, error) {
		if v.Kind != KindSequence {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindSequence}}, at)
			return nil, e
		}
		items := v.Seq.Items()
		out := make(map[T]struct{}, len(items))
		var err error
		for i, item := range items {
			elemAt := at.Index(i)
			elem, e := inner(item.Value(), elemAt, h)
			if e != nil {
				var stop bool
				err, stop = h.Merge(err, e, elemAt)
				if stop {
					return nil, err
				}
				continue
			}
			out[elem] = struct{}{}
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}
