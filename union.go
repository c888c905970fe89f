package valto

import (
	"fmt"
	"sort"
)

// UnionBuilder assembles an internally tagged dispatcher: the input must be
// a map, the tag key is removed first, and its string value selects the
// variant decoder, which then sees the remaining map.
type UnionBuilder[T any] struct {
	tagKey   string
	names    []string
	variants map[string]Func[T]
}

// Union starts a builder for T dispatching on tagKey.
func Union[T any](tagKey string) *UnionBuilder[T] {
	return &UnionBuilder[T]{tagKey: tagKey, variants: make(map[string]Func[T])}
}

// Variant registers a decoder for the given tag value. The decoder
// receives the map with the tag already removed, so a Struct engine for
// the variant's fields plugs in directly.
func (b *UnionBuilder[T]) Variant(name string, f Func[T]) *UnionBuilder[T] {
	if _, dup := b.variants[name]; !dup {
		b.names = append(b.names, name)
	}
	b.variants[name] = f
	return b
}

// UnitVariant registers a tag value that carries no payload; remaining
// keys are ignored.
func (b *UnionBuilder[T]) UnitVariant(name string, v T) *UnionBuilder[T] {
	return b.Variant(name, func(Value, Pointer, ErrorHandler) (T, error) { return v, nil })
}

// Finish compiles the dispatcher. It fails when no variant is registered.
func (b *UnionBuilder[T]) Finish() (Func[T], error) {
	if len(b.names) == 0 {
		return nil, fmt.Errorf("union on %q has no variants", b.tagKey)
	}
	tagKey := b.tagKey
	names := append([]string(nil), b.names...)
	variants := b.variants

	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		var zero T
		if v.Kind != KindMap {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindMap}}, at)
			return zero, e
		}
		tag, ok := v.Map.Remove(tagKey)
		if !ok {
			e, _ := h.NewError(nil, MissingField{Field: tagKey}, at)
			return zero, e
		}
		tagVal := tag.Value()
		if tagVal.Kind != KindString {
			e, _ := h.NewError(nil, IncorrectKind{Actual: tagVal, Accepted: []Kind{KindString}}, at.Key(tagKey))
			return zero, e
		}
		f, ok := variants[tagVal.Str]
		if !ok {
			e, _ := h.NewError(nil, UnknownValue{Value: tagVal.Str, Accepted: names}, at)
			return zero, e
		}
		return f(v, at, h)
	}, nil
}

// MustFinish is Finish, panicking on builder misuse.
func (b *UnionBuilder[T]) MustFinish() Func[T] {
	f, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return f
}

// StringEnum decodes a bare string into one of a fixed set of values; an
// unmatched string reports the accepted set.
func StringEnum[T any](values map[string]T) Func[T] {
	accepted := make([]string, 0, len(values))
	for k := range values {
		accepted = append(accepted, k)
	}
	sort.Strings(accepted)

	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		var zero T
		if v.Kind != KindString {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindString}}, at)
			return zero, e
		}
		out, ok := values[v.Str]
		if !ok {
			e, _ := h.NewError(nil, UnknownValue{Value: v.Str, Accepted: accepted}, at)
			return zero, e
		}
		return out, nil
	}
}
