// Package queryval adapts URL query parameters to the valto value model.
// Every leaf is a string; a repeated key becomes a sequence of strings.
// Pair it with the errmsg query-parameter renderer.
package queryval

import (
	"net/url"

	"github.com/valtoio/valto"
)

// Parse parses a raw query string ("a=1&b=x&b=y") into a Source.
func Parse(rawQuery string) (valto.Source, error) {
	vs, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return Values(vs), nil
}

// Values wraps an already-parsed parameter table as a Source.
func Values(vs url.Values) valto.Source { return tableSource{vs: vs} }

type tableSource struct{ vs url.Values }

func (s tableSource) Kind() valto.Kind { return valto.KindMap }

func (s tableSource) Value() valto.Value { return valto.MapValue(&table{vs: s.vs}) }

type table struct{ vs url.Values }

func (t *table) Len() int { return len(t.vs) }

func (t *table) Remove(key string) (valto.Source, bool) {
	vals, ok := t.vs[key]
	if !ok {
		return nil, false
	}
	delete(t.vs, key)
	return paramSource{vals: vals}, true
}

func (t *table) Entries() []valto.MapEntry {
	out := make([]valto.MapEntry, 0, len(t.vs))
	for k, vals := range t.vs {
		out = append(out, valto.MapEntry{Key: k, Value: paramSource{vals: vals}})
	}
	return out
}

// paramSource is the value side of one parameter: a bare string when the
// key appeared once, a sequence when it was repeated.
type paramSource struct{ vals []string }

func (p paramSource) Kind() valto.Kind {
	if len(p.vals) == 1 {
		return valto.KindString
	}
	return valto.KindSequence
}

func (p paramSource) Value() valto.Value {
	if len(p.vals) == 1 {
		return valto.StringValue(p.vals[0])
	}
	return valto.SeqValue(stringSeq(p.vals))
}

type stringSeq []string

func (s stringSeq) Len() int { return len(s) }

func (s stringSeq) Items() []valto.Source {
	out := make([]valto.Source, 0, len(s))
	for _, v := range s {
		out = append(out, leaf{s: v})
	}
	return out
}

type leaf struct{ s string }

func (l leaf) Kind() valto.Kind   { return valto.KindString }
func (l leaf) Value() valto.Value { return valto.StringValue(l.s) }
