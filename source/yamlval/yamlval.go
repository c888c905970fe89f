// Package yamlval adapts YAML documents to the valto value model by
// normalizing the decoded tree into the JSON shape and delegating to
// jsonval.
package yamlval

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/valtoio/valto"
	"github.com/valtoio/valto/source/jsonval"
)

// Bytes parses a YAML document and returns it as a Source.
func Bytes(b []byte) (valto.Source, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return jsonval.FromAny(normalize(v)), nil
}

// normalize rewrites the YAML decoder's tree into map[string]any / []any
// form. Non-string map keys are rendered to strings, integers via strconv.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[keyString(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, normalize(val))
		}
		return out
	default:
		return v
	}
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
