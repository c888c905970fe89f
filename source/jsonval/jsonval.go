// Package jsonval adapts parsed JSON documents to the valto value model.
// Numbers are decoded as json.Number so 64-bit integers survive untouched.
package jsonval

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/valtoio/valto"
)

func parseUint(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

// Bytes parses a JSON document and returns it as a Source.
func Bytes(b []byte) (valto.Source, error) {
	return Reader(bytes.NewReader(b))
}

// Reader parses a JSON document from r and returns it as a Source.
func Reader(r io.Reader) (valto.Source, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v), nil
}

// FromAny wraps an already-decoded tree (the map[string]any / []any /
// json.Number shape produced by a JSON or YAML decoder, plus plain Go
// numbers) as a Source.
func FromAny(v any) valto.Source { return anySource{v: v} }

// ToAny drains a Value back into plain Go data, for embedding a received
// value in logs or custom errors.
func ToAny(v valto.Value) any {
	switch v.Kind {
	case valto.KindNull:
		return nil
	case valto.KindBoolean:
		return v.Bool
	case valto.KindInteger:
		return v.Uint
	case valto.KindNegativeInteger:
		return v.Int
	case valto.KindFloat:
		return v.Float
	case valto.KindString:
		return v.Str
	case valto.KindSequence:
		items := v.Seq.Items()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, ToAny(item.Value()))
		}
		return out
	default:
		entries := v.Map.Entries()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key] = ToAny(e.Value.Value())
		}
		return out
	}
}

type anySource struct{ v any }

func (s anySource) Kind() valto.Kind {
	switch n := s.v.(type) {
	case nil:
		return valto.KindNull
	case bool:
		return valto.KindBoolean
	case string:
		return valto.KindString
	case json.Number:
		// Same classification order as numberValue, so Kind and Value
		// always agree (notably for "-0").
		if _, err := parseUint(n.String()); err == nil {
			return valto.KindInteger
		}
		if i, err := n.Int64(); err == nil && i < 0 {
			return valto.KindNegativeInteger
		}
		return valto.KindFloat
	case int, int8, int16, int32, int64:
		if asInt64(s.v) >= 0 {
			return valto.KindInteger
		}
		return valto.KindNegativeInteger
	case uint, uint8, uint16, uint32, uint64:
		return valto.KindInteger
	case float32, float64:
		return valto.KindFloat
	case []any:
		return valto.KindSequence
	case map[string]any:
		return valto.KindMap
	default:
		return valto.KindString
	}
}

func (s anySource) Value() valto.Value {
	switch n := s.v.(type) {
	case nil:
		return valto.NullValue()
	case bool:
		return valto.BoolValue(n)
	case string:
		return valto.StringValue(n)
	case json.Number:
		return numberValue(n)
	case int, int8, int16, int32, int64:
		i := asInt64(s.v)
		if i >= 0 {
			return valto.UintValue(uint64(i))
		}
		return valto.IntValue(i)
	case uint:
		return valto.UintValue(uint64(n))
	case uint8:
		return valto.UintValue(uint64(n))
	case uint16:
		return valto.UintValue(uint64(n))
	case uint32:
		return valto.UintValue(uint64(n))
	case uint64:
		return valto.UintValue(n)
	case float32:
		return valto.FloatValue(float64(n))
	case float64:
		return valto.FloatValue(n)
	case []any:
		return valto.SeqValue(anySeq(n))
	case map[string]any:
		return valto.MapValue(&anyMap{m: n})
	default:
		// Last resort for exotic decoder output.
		return valto.StringValue(fmt.Sprint(n))
	}
}

// numberValue classifies a json.Number: non-negative integers keep their
// full 64-bit magnitude, negative integers keep their sign, everything
// else is a float.
func numberValue(n json.Number) valto.Value {
	if u, err := parseUint(n.String()); err == nil {
		return valto.UintValue(u)
	}
	if i, err := n.Int64(); err == nil && i < 0 {
		return valto.IntValue(i)
	}
	f, _ := n.Float64()
	return valto.FloatValue(f)
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

type anySeq []any

func (s anySeq) Len() int { return len(s) }

func (s anySeq) Items() []valto.Source {
	out := make([]valto.Source, 0, len(s))
	for _, v := range s {
		out = append(out, anySource{v: v})
	}
	return out
}

type anyMap struct{ m map[string]any }

func (m *anyMap) Len() int { return len(m.m) }

func (m *anyMap) Remove(key string) (valto.Source, bool) {
	v, ok := m.m[key]
	if !ok {
		return nil, false
	}
	delete(m.m, key)
	return anySource{v: v}, true
}

func (m *anyMap) Entries() []valto.MapEntry {
	out := make([]valto.MapEntry, 0, len(m.m))
	for k, v := range m.m {
		out = append(out, valto.MapEntry{Key: k, Value: anySource{v: v}})
	}
	return out
}
