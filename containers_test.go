package valto_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtoio/valto"
	"github.com/valtoio/valto/source/jsonval"
)

func TestSliceOf(t *testing.T) {
	v, err := decode(t, []any{1, 2, 3}, valto.SliceOf(valto.UintOf[uint8]()))
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3}, v)

	_, err = decode(t, "nope", valto.SliceOf(valto.UintOf[uint8]()))
	kindErr(t, err)
}

func TestSliceOfFailFastStopsAtFirstBadElement(t *testing.T) {
	_, err := decode(t, []any{1, "two", "three"}, valto.SliceOf(valto.UintOf[uint8]()))
	ke := kindErr(t, err)
	require.Equal(t, []valto.Step{{Kind: valto.StepIndex, Index: 1}}, ke.Location)
}

func TestSliceOfCollectReportsEveryBadElement(t *testing.T) {
	src := jsonval.FromAny([]any{1, "two", 300})
	_, err := valto.Deserialize(src, valto.SliceOf(valto.UintOf[uint8]()), valto.Collect())
	iss, ok := valto.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	require.Equal(t, "[1]", iss[0].Path)
	require.Equal(t, valto.CodeInvalidType, iss[0].Code)
	require.Equal(t, "[2]", iss[1].Path)
	require.Equal(t, valto.CodeUnexpected, iss[1].Code)
}

func TestNullableOf(t *testing.T) {
	v, err := decode(t, nil, valto.NullableOf(valto.StringOf()))
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = decode(t, "catto", valto.NullableOf(valto.StringOf()))
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "catto", *v)

	_, err = decode(t, 2, valto.NullableOf(valto.StringOf()))
	kindErr(t, err)
}

func TestPtrOf(t *testing.T) {
	v, err := decode(t, "x", valto.PtrOf(valto.StringOf()))
	require.NoError(t, err)
	require.Equal(t, "x", *v)
}

func TestArrayOf(t *testing.T) {
	v, err := decode(t, []any{1, 2}, valto.ArrayOf(2, valto.UintOf[uint]()))
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2}, v)

	_, err = decode(t, []any{1, 2, 3}, valto.ArrayOf(2, valto.UintOf[uint]()))
	ke := kindErr(t, err)
	require.Equal(t, "The sequence should have exactly 2 elements, but found 3.", ke.Error())

	_, err = decode(t, []any{1, 2}, valto.ArrayOf(3, valto.UintOf[uint]()))
	ke = kindErr(t, err)
	require.Equal(t, "The sequence should have exactly 3 elements, but found 2.", ke.Error())
}

func TestArrayOfCollectSeesArityAndElements(t *testing.T) {
	src := jsonval.FromAny([]any{1, "x", 3})
	_, err := valto.Deserialize(src, valto.ArrayOf(2, valto.UintOf[uint]()), valto.Collect())
	iss, ok := valto.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	require.Equal(t, valto.CodeUnexpected, iss[0].Code) // arity first
	require.Equal(t, valto.CodeInvalidType, iss[1].Code)
}

func TestTuple2Of(t *testing.T) {
	f := valto.Tuple2Of(valto.UintOf[uint](), valto.StringOf())
	v, err := decode(t, []any{4, "legs"}, f)
	require.NoError(t, err)
	require.Equal(t, uint(4), v.First)
	require.Equal(t, "legs", v.Second)

	_, err = decode(t, []any{4}, f)
	ke := kindErr(t, err)
	require.Equal(t, "The sequence should have exactly 2 elements.", ke.Error())

	_, err = decode(t, []any{4, "legs", "tail"}, f)
	ke = kindErr(t, err)
	require.Equal(t, "The sequence should have exactly 2 elements.", ke.Error())
}

func TestTuple3Of(t *testing.T) {
	f := valto.Tuple3Of(valto.UintOf[uint](), valto.StringOf(), valto.BoolOf())
	v, err := decode(t, []any{1, "two", true}, f)
	require.NoError(t, err)
	require.Equal(t, uint(1), v.First)
	require.Equal(t, "two", v.Second)
	require.True(t, v.Third)

	_, err = decode(t, []any{1, "two"}, f)
	ke := kindErr(t, err)
	require.Equal(t, "The sequence should have exactly 3 elements.", ke.Error())
}

func TestTupleElementLocation(t *testing.T) {
	f := valto.Tuple2Of(valto.UintOf[uint](), valto.StringOf())
	_, err := decode(t, []any{4, 7}, f)
	ke := kindErr(t, err)
	require.Equal(t, []valto.Step{{Kind: valto.StepIndex, Index: 1}}, ke.Location)
}

func TestMapOf(t *testing.T) {
	f := valto.MapOf(valto.StringKey, valto.UintOf[uint]())
	v, err := decode(t, map[string]any{"a": 1, "b": 2}, f)
	require.NoError(t, err)
	require.Equal(t, map[string]uint{"a": 1, "b": 2}, v)

	_, err = decode(t, []any{}, f)
	kindErr(t, err)
}

func TestMapOfParsedKeys(t *testing.T) {
	f := valto.MapOf(strconv.Atoi, valto.StringOf())
	v, err := decode(t, map[string]any{"1": "one", "2": "two"}, f)
	require.NoError(t, err)
	require.Equal(t, map[int]string{1: "one", 2: "two"}, v)

	_, err = decode(t, map[string]any{"nope": "x"}, f)
	ke := kindErr(t, err)
	require.Equal(t,
		"The key \"nope\" could not be deserialized into the key type `int`",
		ke.Error())
	require.Empty(t, ke.Location) // reported at the map itself
}

func TestMapOfValueLocation(t *testing.T) {
	f := valto.MapOf(valto.StringKey, valto.UintOf[uint]())
	_, err := decode(t, map[string]any{"a": "x"}, f)
	ke := kindErr(t, err)
	require.Equal(t, []valto.Step{{Kind: valto.StepKey, Key: "a"}}, ke.Location)
}

func TestSetOf(t *testing.T) {
	v, err := decode(t, []any{"a", "b", "a"}, valto.SetOf(valto.StringOf()))
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"a": {}, "b": {}}, v)
}
