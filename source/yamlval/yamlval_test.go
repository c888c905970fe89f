package yamlval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtoio/valto"
	"github.com/valtoio/valto/source/yamlval"
)

func TestBytesDecodesThroughEngine(t *testing.T) {
	doc := []byte("name: doggo\nage: 4\ntags:\n  - good\n  - fast\n")

	type pet struct {
		Name string
		Age  uint8
		Tags []string
	}
	b := valto.Struct[pet]()
	valto.Field(b, "name", valto.StringOf(), func(p *pet, v string) { p.Name = v })
	valto.Field(b, "age", valto.UintOf[uint8](), func(p *pet, v uint8) { p.Age = v })
	valto.Field(b, "tags", valto.SliceOf(valto.StringOf()), func(p *pet, v []string) { p.Tags = v })

	src, err := yamlval.Bytes(doc)
	require.NoError(t, err)
	got, err := valto.Deserialize(src, b.MustFinish(), valto.FailFast())
	require.NoError(t, err)
	require.Equal(t, pet{Name: "doggo", Age: 4, Tags: []string{"good", "fast"}}, got)
}

func TestNumberClassification(t *testing.T) {
	src, err := yamlval.Bytes([]byte("7"))
	require.NoError(t, err)
	require.Equal(t, valto.KindInteger, src.Kind())

	src, err = yamlval.Bytes([]byte("-7"))
	require.NoError(t, err)
	require.Equal(t, valto.KindNegativeInteger, src.Kind())

	src, err = yamlval.Bytes([]byte("2.5"))
	require.NoError(t, err)
	require.Equal(t, valto.KindFloat, src.Kind())
}

func TestIntegerKeysRendered(t *testing.T) {
	src, err := yamlval.Bytes([]byte("1: one\n2: two\n"))
	require.NoError(t, err)
	v := src.Value()
	require.Equal(t, valto.KindMap, v.Kind)

	inner, ok := v.Map.Remove("1")
	require.True(t, ok)
	require.Equal(t, "one", inner.Value().Str)
}

func TestMalformed(t *testing.T) {
	_, err := yamlval.Bytes([]byte(":\n  - ]"))
	require.Error(t, err)
}
