package errmsg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valtoio/valto"
)

// LocationQuery describes a location in a query-parameter table, preceded
// by the given article, e.g. " for parameter `key5[2]`". Unlike the JSON
// form, the leading key carries no dot. The root renders as "".
func LocationQuery(steps []valto.Step, article string) string {
	if len(steps) == 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(article)
	b.WriteString(" `")
	for i, s := range steps {
		if s.Kind == valto.StepKey {
			if i > 0 {
				b.WriteByte('.')
			}
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

// KindsQuery describes an acceptance set for query parameters. Parameters
// are always written as strings, so the answer never varies.
func KindsQuery([]valto.Kind) string { return "a string" }

// ValueQuery renders the received value for query parameters. Aggregates
// are summarized rather than serialized.
func ValueQuery(v valto.Value) string {
	switch v.Kind {
	case valto.KindNull:
		return "null"
	case valto.KindBoolean:
		return fmt.Sprintf("a boolean: `%v`", v.Bool)
	case valto.KindInteger:
		return fmt.Sprintf("an integer: `%d`", v.Uint)
	case valto.KindNegativeInteger:
		return fmt.Sprintf("an integer: `%d`", v.Int)
	case valto.KindFloat:
		return fmt.Sprintf("a number: `%v`", v.Float)
	case valto.KindString:
		return fmt.Sprintf("a string: `%s`", v.Str)
	case valto.KindSequence:
		return "multiple values"
	default:
		return "multiple parameters"
	}
}

// MessageQuery renders one failure for a query-parameter table.
func MessageQuery(kind valto.ErrorKind, steps []valto.Step) string {
	switch k := kind.(type) {
	case valto.IncorrectKind:
		return fmt.Sprintf("Invalid value type%s: expected %s, but found %s",
			LocationQuery(steps, " for parameter"), KindsQuery(k.Accepted), ValueQuery(k.Actual))
	case valto.MissingField:
		return fmt.Sprintf("Missing parameter `%s`%s", k.Field, LocationQuery(steps, " inside"))
	case valto.UnknownKey:
		return fmt.Sprintf("Unknown parameter `%s`%s: %sexpected one of %s",
			k.Key, LocationQuery(steps, " inside"), DidYouMean(k.Key, k.Accepted), acceptedList(k.Accepted))
	case valto.UnknownValue:
		return fmt.Sprintf("Unknown value `%s`%s: %sexpected one of %s",
			k.Value, LocationQuery(steps, " for parameter"), DidYouMean(k.Value, k.Accepted), acceptedList(k.Accepted))
	case valto.Unexpected:
		return fmt.Sprintf("Invalid value%s: %s", LocationQuery(steps, " in parameter"), k.Msg)
	default:
		return fmt.Sprintf("Invalid value%s", LocationQuery(steps, " in parameter"))
	}
}
