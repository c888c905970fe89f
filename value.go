package valto

// Kind classifies a Value. It is the nullary projection of the value model,
// used for error reporting and acceptance sets.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger         // unsigned 64-bit magnitude
	KindNegativeInteger // signed 64-bit, strictly negative
	KindFloat
	KindString
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindNegativeInteger:
		return "NegativeInteger"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindSequence:
		return "Sequence"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Source adapts an external parsed representation (a JSON value, a YAML node,
// a query-parameter table) to the abstract value model. Classification and
// consumption are total: a well-formed representation always yields exactly
// one Value variant. Value consumes the receiver; call it at most once.
type Source interface {
	Kind() Kind
	Value() Value
}

// Sequence is the consumable view of a sequence-like aggregate. Items drains
// the receiver; it must be called at most once.
type Sequence interface {
	Len() int
	Items() []Source
}

// MapEntry is one key/value pair yielded by a Map.
type MapEntry struct {
	Key   string
	Value Source
}

// Map is the consumable view of a string-keyed aggregate. Entries drains the
// receiver in unspecified order. Remove pulls a single entry out ahead of
// Entries; a removed entry must not reappear. Remove before Entries is how
// tagged-union dispatch extracts the tag without disturbing field traversal.
type Map interface {
	Len() int
	Remove(key string) (Source, bool)
	Entries() []MapEntry
}

// Value is one node of parsed-but-untyped data. Exactly one variant is
// active, indicated by Kind; the matching payload field holds the data. A
// Value carries no location; locations are threaded alongside it as Pointers.
type Value struct {
	Kind  Kind
	Bool  bool
	Uint  uint64
	Int   int64
	Float float64
	Str   string
	Seq   Sequence
	Map   Map
}

// NullValue returns the Null variant.
func NullValue() Value { return Value{Kind: KindNull} }

// BoolValue returns the Boolean variant.
func BoolValue(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// UintValue returns the Integer variant holding a non-negative magnitude.
func UintValue(u uint64) Value { return Value{Kind: KindInteger, Uint: u} }

// IntValue returns the NegativeInteger variant. It is reserved for values
// that do not fit the unsigned variant; adapters must not produce it for
// non-negative numbers.
func IntValue(i int64) Value { return Value{Kind: KindNegativeInteger, Int: i} }

// FloatValue returns the Float variant.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue returns the String variant.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// SeqValue returns the Sequence variant wrapping the given capability.
func SeqValue(seq Sequence) Value { return Value{Kind: KindSequence, Seq: seq} }

// MapValue returns the Map variant wrapping the given capability.
func MapValue(m Map) Value { return Value{Kind: KindMap, Map: m} }
