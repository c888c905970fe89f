// Package gjsonval adapts gjson query results to the valto value model, so
// a sub-document selected with a gjson path can be deserialized without
// re-parsing.
package gjsonval

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/valtoio/valto"
)

// Parse parses raw JSON text into a Source.
func Parse(raw string) valto.Source { return Result(gjson.Parse(raw)) }

// Result wraps an already-obtained gjson.Result as a Source.
func Result(r gjson.Result) valto.Source { return resSource{r: r} }

type resSource struct{ r gjson.Result }

func (s resSource) Kind() valto.Kind {
	switch s.r.Type {
	case gjson.Null:
		return valto.KindNull
	case gjson.False, gjson.True:
		return valto.KindBoolean
	case gjson.Number:
		return numberKind(s.r.Raw)
	case gjson.String:
		return valto.KindString
	default:
		if s.r.IsArray() {
			return valto.KindSequence
		}
		return valto.KindMap
	}
}

func (s resSource) Value() valto.Value {
	switch s.r.Type {
	case gjson.Null:
		return valto.NullValue()
	case gjson.False:
		return valto.BoolValue(false)
	case gjson.True:
		return valto.BoolValue(true)
	case gjson.Number:
		return numberValue(s.r)
	case gjson.String:
		return valto.StringValue(s.r.String())
	default:
		if s.r.IsArray() {
			return valto.SeqValue(resSeq(s.r.Array()))
		}
		m := &resMap{}
		s.r.ForEach(func(k, v gjson.Result) bool {
			m.keys = append(m.keys, k.String())
			m.vals = append(m.vals, v)
			return true
		})
		return valto.MapValue(m)
	}
}

// numberKind classifies from the raw token so 64-bit integers are not
// forced through float64.
func numberKind(raw string) valto.Kind {
	if strings.ContainsAny(raw, ".eE") {
		return valto.KindFloat
	}
	if strings.HasPrefix(raw, "-") {
		return valto.KindNegativeInteger
	}
	return valto.KindInteger
}

func numberValue(r gjson.Result) valto.Value {
	raw := r.Raw
	if !strings.ContainsAny(raw, ".eE") {
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return valto.UintValue(u)
		}
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil && i < 0 {
			return valto.IntValue(i)
		}
	}
	return valto.FloatValue(r.Float())
}

type resSeq []gjson.Result

func (s resSeq) Len() int { return len(s) }

func (s resSeq) Items() []valto.Source {
	out := make([]valto.Source, 0, len(s))
	for _, r := range s {
		out = append(out, resSource{r: r})
	}
	return out
}

// resMap keeps the document's key order; Remove marks instead of shifting
// since gjson results are read-only views.
type resMap struct {
	keys    []string
	vals    []gjson.Result
	removed map[int]bool
}

func (m *resMap) Len() int {
	n := len(m.keys) - len(m.removed)
	return n
}

func (m *resMap) Remove(key string) (valto.Source, bool) {
	for i, k := range m.keys {
		if k == key && !m.removed[i] {
			if m.removed == nil {
				m.removed = make(map[int]bool)
			}
			m.removed[i] = true
			return resSource{r: m.vals[i]}, true
		}
	}
	return nil, false
}

func (m *resMap) Entries() []valto.MapEntry {
	out := make([]valto.MapEntry, 0, len(m.keys))
	for i, k := range m.keys {
		if m.removed[i] {
			continue
		}
		out = append(out, valto.MapEntry{Key: k, Value: resSource{r: m.vals[i]}})
	}
	return out
}
