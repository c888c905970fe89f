// Package errmsg renders structured deserialization failures into
// human-readable prose, in a JSON-document flavor and a query-parameter
// flavor. Both are exposed as plain formatting functions and as ready-made
// error handlers.
package errmsg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/valtoio/valto"
)

// LocationJSON describes a location in a JSON document, preceded by the
// given article, e.g. " at `.key1[8].key2`". The root renders as "".
func LocationJSON(steps []valto.Step, article string) string {
	if len(steps) == 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(article)
	b.WriteString(" `")
	for _, s := range steps {
		if s.Kind == valto.StepKey {
			b.WriteByte('.')
			b.WriteString(s.Key)
		} else {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	b.WriteByte('`')
	return b.String()
}

func kindOrder(k valto.Kind) int {
	switch k {
	case valto.KindNull:
		return 0
	case valto.KindBoolean:
		return 1
	case valto.KindInteger:
		return 2
	case valto.KindNegativeInteger:
		return 3
	case valto.KindFloat:
		return 4
	case valto.KindString:
		return 5
	case valto.KindSequence:
		return 6
	default:
		return 7
	}
}

func kindJSON(k valto.Kind) string {
	switch k {
	case valto.KindNull:
		return "null"
	case valto.KindBoolean:
		return "a boolean"
	case valto.KindInteger:
		return "a positive integer"
	case valto.KindNegativeInteger:
		return "a negative integer"
	case valto.KindFloat:
		return "a number"
	case valto.KindString:
		return "a string"
	case valto.KindSequence:
		return "an array"
	default:
		return "an object"
	}
}

// KindsJSON describes an acceptance set for a JSON document. Numeric kinds
// merge into "an integer" or "a number" when they cover each other.
func KindsJSON(kinds []valto.Kind) string {
	if len(kinds) == 0 {
		return "a different value"
	}
	sorted := append([]valto.Kind(nil), kinds...)
	sort.Slice(sorted, func(i, j int) bool { return kindOrder(sorted[i]) < kindOrder(sorted[j]) })
	dedup := sorted[:0]
	for _, k := range sorted {
		if len(dedup) == 0 || dedup[len(dedup)-1] != k {
			dedup = append(dedup, k)
		}
	}

	var parts []string
	rest := dedup
	for len(rest) > 0 {
		var part string
		switch {
		case len(rest) >= 2 &&
			(rest[0] == valto.KindInteger || rest[0] == valto.KindNegativeInteger) &&
			rest[1] == valto.KindFloat:
			part, rest = "a number", rest[2:]
		case len(rest) >= 3 && rest[0] == valto.KindInteger &&
			rest[1] == valto.KindNegativeInteger && rest[2] == valto.KindFloat:
			part, rest = "a number", rest[3:]
		case len(rest) >= 2 && rest[0] == valto.KindInteger &&
			rest[1] == valto.KindNegativeInteger:
			part, rest = "an integer", rest[2:]
		default:
			part, rest = kindJSON(rest[0]), rest[1:]
		}
		parts = append(parts, part)
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
	}
}

// toAny drains a Value into plain Go data for JSON rendering. Only used on
// error paths, where the value will not be consumed again.
func toAny(v valto.Value) any {
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
			out = append(out, toAny(item.Value()))
		}
		return out
	default:
		entries := v.Map.Entries()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key] = toAny(e.Value.Value())
		}
		return out
	}
}

// ValueJSON renders the value's JSON text preceded by a description of its
// kind, e.g. "an array: `[2]`". Null renders bare.
func ValueJSON(v valto.Value) string {
	if v.Kind == valto.KindNull {
		return "null"
	}
	raw, err := json.Marshal(toAny(v))
	if err != nil {
		return KindsJSON([]valto.Kind{v.Kind})
	}
	return fmt.Sprintf("%s: `%s`", KindsJSON([]valto.Kind{v.Kind}), raw)
}

func acceptedList(accepted []string) string {
	quoted := make([]string, 0, len(accepted))
	for _, a := range accepted {
		quoted = append(quoted, "`"+a+"`")
	}
	return strings.Join(quoted, ", ")
}

// MessageJSON renders one failure for a JSON document.
func MessageJSON(kind valto.ErrorKind, steps []valto.Step) string {
	switch k := kind.(type) {
	case valto.IncorrectKind:
		return fmt.Sprintf("Invalid value type%s: expected %s, but found %s",
			LocationJSON(steps, " at"), KindsJSON(k.Accepted), ValueJSON(k.Actual))
	case valto.MissingField:
		return fmt.Sprintf("Missing field `%s`%s", k.Field, LocationJSON(steps, " inside"))
	case valto.UnknownKey:
		return fmt.Sprintf("Unknown field `%s`%s: %sexpected one of %s",
			k.Key, LocationJSON(steps, " inside"), DidYouMean(k.Key, k.Accepted), acceptedList(k.Accepted))
	case valto.UnknownValue:
		return fmt.Sprintf("Unknown value `%s`%s: %sexpected one of %s",
			k.Value, LocationJSON(steps, " at"), DidYouMean(k.Value, k.Accepted), acceptedList(k.Accepted))
	case valto.Unexpected:
		return fmt.Sprintf("Invalid value%s: %s", LocationJSON(steps, " at"), k.Msg)
	default:
		return fmt.Sprintf("Invalid value%s", LocationJSON(steps, " at"))
	}
}
