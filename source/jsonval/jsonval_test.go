package jsonval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtoio/valto"
	"github.com/valtoio/valto/source/jsonval"
)

func TestBytesClassification(t *testing.T) {
	cases := []struct {
		raw  string
		kind valto.Kind
	}{
		{`null`, valto.KindNull},
		{`true`, valto.KindBoolean},
		{`0`, valto.KindInteger},
		{`12`, valto.KindInteger},
		{`18446744073709551615`, valto.KindInteger},
		{`-3`, valto.KindNegativeInteger},
		{`-9223372036854775808`, valto.KindNegativeInteger},
		{`2.5`, valto.KindFloat},
		{`1e10`, valto.KindFloat},
		{`-0`, valto.KindFloat},
		{`"x"`, valto.KindString},
		{`[1,2]`, valto.KindSequence},
		{`{"a":1}`, valto.KindMap},
	}
	for _, tc := range cases {
		src, err := jsonval.Bytes([]byte(tc.raw))
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.kind, src.Kind(), tc.raw)
	}
}

func TestFullUint64Survives(t *testing.T) {
	src, err := jsonval.Bytes([]byte(`18446744073709551615`))
	require.NoError(t, err)
	v, err2 := valto.Deserialize(src, valto.UintOf[uint64](), valto.FailFast())
	require.NoError(t, err2)
	require.Equal(t, uint64(18446744073709551615), v)
}

func TestNegativeZeroKindMatchesValue(t *testing.T) {
	src, err := jsonval.Bytes([]byte(`-0`))
	require.NoError(t, err)
	require.Equal(t, valto.KindFloat, src.Kind())
	v := src.Value()
	require.Equal(t, valto.KindFloat, v.Kind)
	require.Equal(t, float64(0), v.Float)
}

func TestReader(t *testing.T) {
	src, err := jsonval.Reader(strings.NewReader(`{"n": -7}`))
	require.NoError(t, err)
	v := src.Value()
	require.Equal(t, valto.KindMap, v.Kind)
	inner, ok := v.Map.Remove("n")
	require.True(t, ok)
	require.Equal(t, valto.KindNegativeInteger, inner.Kind())
	require.Equal(t, int64(-7), inner.Value().Int)
}

func TestBytesRejectsMalformed(t *testing.T) {
	_, err := jsonval.Bytes([]byte(`{"a":`))
	require.Error(t, err)
}

func TestMapRemoveConsumes(t *testing.T) {
	src := jsonval.FromAny(map[string]any{"tag": "x", "rest": 1})
	m := src.Value().Map
	_, ok := m.Remove("tag")
	require.True(t, ok)
	_, ok = m.Remove("tag")
	require.False(t, ok)

	entries := m.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "rest", entries[0].Key)
}

func TestFromAnyGoNumbers(t *testing.T) {
	require.Equal(t, valto.KindInteger, jsonval.FromAny(7).Kind())
	require.Equal(t, valto.KindNegativeInteger, jsonval.FromAny(-7).Kind())
	require.Equal(t, valto.KindInteger, jsonval.FromAny(uint64(7)).Kind())
	require.Equal(t, valto.KindFloat, jsonval.FromAny(7.5).Kind())
}

func TestToAnyRoundTrip(t *testing.T) {
	tree := map[string]any{
		"s": "x",
		"n": -2,
		"l": []any{true, nil},
	}
	got := jsonval.ToAny(jsonval.FromAny(tree).Value())
	m, ok := got.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "x", m["s"])
	require.Equal(t, int64(-2), m["n"])
	require.Equal(t, []any{true, nil}, m["l"])
}
