package valto

import (
	"fmt"

	"github.com/valtoio/valto/internal/caseconv"
)

// slot states during a single engine pass.
type slotState uint8

const (
	slotMissing slotState = iota
	slotErr
	slotPresent
)

// fieldSpec is the erased form of a registered field; compiled by Finish.
type fieldSpec[T any] interface {
	compile(rename RenamePolicy) fieldSlot[T]
}

type fieldSlot[T any] struct {
	key     string
	skip    bool
	initial func(*T) // non-nil when the slot starts Present (default or skip)
	decode  func(Value, Pointer, ErrorHandler) (func(*T), error)
	missing func(string, Pointer) error // nil means the standard missing-field error
}

// StructBuilder assembles a map-to-struct engine. Fields are registered
// through the free Field function; the builder methods configure
// struct-level behavior and Finish compiles the engine into a Func[T].
type StructBuilder[T any] struct {
	specs      []fieldSpec[T]
	rename     RenamePolicy
	unknown    UnknownPolicy
	unknownFn  func(key string, accepted []string, at Pointer) error
	validateFn func(T, Pointer) error
}

// Struct starts a builder for T.
func Struct[T any]() *StructBuilder[T] { return &StructBuilder[T]{} }

// RenameAll rewrites every field name into its wire key; a per-field
// Rename still wins.
func (b *StructBuilder[T]) RenameAll(policy RenamePolicy) *StructBuilder[T] {
	b.rename = policy
	return b
}

// DenyUnknownFields makes any key without a registered field an error
// naming the accepted keys.
func (b *StructBuilder[T]) DenyUnknownFields() *StructBuilder[T] {
	b.unknown = UnknownDeny
	return b
}

// UnknownKeyError installs a custom error supplier for unknown keys. The
// returned error is merged through the handler at the struct's location.
func (b *StructBuilder[T]) UnknownKeyError(fn func(key string, accepted []string, at Pointer) error) *StructBuilder[T] {
	b.unknown = UnknownDeny
	b.unknownFn = fn
	return b
}

// Validate installs a hook that runs on the built value when no field
// produced an error. A returned error is merged at the struct's location.
func (b *StructBuilder[T]) Validate(fn func(T, Pointer) error) *StructBuilder[T] {
	b.validateFn = fn
	return b
}

// FieldStep configures one registered field and hands chaining back
// through the embedded builder pointer.
type FieldStep[T, F any] struct {
	b       *StructBuilder[T]
	name    string
	renamed string
	skip    bool
	fn      Func[F]
	set     func(*T, F)
	mapFn   func(F) F
	def     func() F
	missing func(string, Pointer) error
}

// Field registers a field of T decoded by fn and written by set, returning
// a step for per-field options. Free function rather than a method so each
// field can carry its own value type.
func Field[T, F any](b *StructBuilder[T], name string, fn Func[F], set func(*T, F)) *FieldStep[T, F] {
	s := &FieldStep[T, F]{b: b, name: name, fn: fn, set: set}
	b.specs = append(b.specs, s)
	return s
}

// Rename overrides the wire key for this field.
func (s *FieldStep[T, F]) Rename(key string) *FieldStep[T, F] {
	s.renamed = key
	return s
}

// Default makes the field optional, substituting v when the key is absent.
func (s *FieldStep[T, F]) Default(v F) *FieldStep[T, F] {
	s.def = func() F { return v }
	return s
}

// DefaultFunc is Default with a lazily produced value.
func (s *FieldStep[T, F]) DefaultFunc(fn func() F) *FieldStep[T, F] {
	s.def = fn
	return s
}

// Skip removes the field from the wire entirely: its key in the input is
// treated as unknown, and the value comes from Default (or F's zero value).
func (s *FieldStep[T, F]) Skip() *FieldStep[T, F] {
	s.skip = true
	return s
}

// Map post-processes the decoded value before the setter runs.
func (s *FieldStep[T, F]) Map(fn func(F) F) *FieldStep[T, F] {
	s.mapFn = fn
	return s
}

// MissingError installs a custom error supplier for when the key is absent
// and no default applies. The error is merged at the struct's location.
func (s *FieldStep[T, F]) MissingError(fn func(field string, at Pointer) error) *FieldStep[T, F] {
	s.missing = fn
	return s
}

func (s *FieldStep[T, F]) compile(rename RenamePolicy) fieldSlot[T] {
	key := s.renamed
	if key == "" {
		switch rename {
		case RenameCamel:
			key = caseconv.Camel(s.name)
		case RenameLower:
			key = caseconv.Lower(s.name)
		default:
			key = s.name
		}
	}
	slot := fieldSlot[T]{key: key, skip: s.skip, missing: s.missing}
	set, mapFn := s.set, s.mapFn
	if def := s.def; def != nil || s.skip {
		slot.initial = func(t *T) {
			var v F
			if def != nil {
				v = def()
			}
			set(t, v)
		}
	}
	fn := s.fn
	slot.decode = func(v Value, at Pointer, h ErrorHandler) (func(*T), error) {
		out, err := fn(v, at, h)
		if err != nil {
			return nil, err
		}
		if mapFn != nil {
			out = mapFn(out)
		}
		return func(t *T) { set(t, out) }, nil
	}
	return slot
}

// Finish compiles the registered fields into a decoding Func. It fails on
// duplicate wire keys.
func (b *StructBuilder[T]) Finish() (Func[T], error) {
	slots := make([]fieldSlot[T], len(b.specs))
	byKey := make(map[string]int, len(b.specs))
	var accepted []string
	for i, spec := range b.specs {
		slots[i] = spec.compile(b.rename)
		if slots[i].skip {
			continue
		}
		if _, dup := byKey[slots[i].key]; dup {
			return nil, fmt.Errorf("duplicate field key %q", slots[i].key)
		}
		byKey[slots[i].key] = i
		accepted = append(accepted, slots[i].key)
	}
	unknown, unknownFn := b.unknown, b.unknownFn
	validateFn := b.validateFn

	return func(v Value, at Pointer, h ErrorHandler) (T, error) {
		var zero T
		if v.Kind != KindMap {
			e, _ := h.NewError(nil, IncorrectKind{Actual: v, Accepted: []Kind{KindMap}}, at)
			return zero, e
		}

		states := make([]slotState, len(slots))
		applies := make([]func(*T), len(slots))
		for i := range slots {
			if slots[i].initial != nil {
				states[i] = slotPresent
				applies[i] = slots[i].initial
			}
		}

		var err error
		for _, entry := range v.Map.Entries() {
			i, known := byKey[entry.Key]
			if !known {
				if unknown == UnknownIgnore {
					continue
				}
				var stop bool
				if unknownFn != nil {
					err, stop = h.Merge(err, unknownFn(entry.Key, accepted, at), at)
				} else {
					err, stop = h.NewError(err, UnknownKey{Key: entry.Key, Accepted: accepted}, at)
				}
				if stop {
					return zero, err
				}
				continue
			}
			fieldAt := at.Key(entry.Key)
			apply, e := slots[i].decode(entry.Value.Value(), fieldAt, h)
			if e != nil {
				var stop bool
				err, stop = h.Merge(err, e, fieldAt)
				if stop {
					return zero, err
				}
				states[i] = slotErr
				continue
			}
			states[i] = slotPresent
			applies[i] = apply
		}

		for i := range slots {
			if states[i] != slotMissing {
				continue
			}
			var stop bool
			if slots[i].missing != nil {
				err, stop = h.Merge(err, slots[i].missing(slots[i].key, at), at)
			} else {
				err, stop = h.NewError(err, MissingField{Field: slots[i].key}, at)
			}
			if stop {
				return zero, err
			}
		}

		if err != nil {
			return zero, err
		}
		var out T
		for _, apply := range applies {
			apply(&out)
		}
		if validateFn != nil {
			if e := validateFn(out, at); e != nil {
				e2, _ := h.Merge(nil, e, at)
				return zero, e2
			}
		}
		return out, nil
	}, nil
}

// MustFinish is Finish, panicking on builder misuse.
func (b *StructBuilder[T]) MustFinish() Func[T] {
	f, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return f
}
