package valto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtoio/valto"
)

func TestPointerRendering(t *testing.T) {
	p := valto.Root.Key("a").Index(2).Key("b")
	require.Equal(t, ".a[2].b", p.String())
	require.Equal(t, "", valto.Root.String())
}

func TestPointerPath(t *testing.T) {
	p := valto.Root.Key("users").Index(0).Key("name")
	steps := p.Path()
	require.Equal(t, []valto.Step{
		{Kind: valto.StepKey, Key: "users"},
		{Kind: valto.StepIndex, Index: 0},
		{Kind: valto.StepKey, Key: "name"},
	}, steps)
}

func TestPointerParentStaysValid(t *testing.T) {
	parent := valto.Root.Key("outer")
	_ = parent.Index(4).Key("inner")
	// extending must not disturb the receiver
	require.Equal(t, ".outer", parent.String())
}

func TestPointerIsRoot(t *testing.T) {
	require.True(t, valto.Root.IsRoot())
	require.False(t, valto.Root.Key("x").IsRoot())

	var zero valto.Pointer
	require.True(t, zero.IsRoot())
}

func TestPointerLastField(t *testing.T) {
	p := valto.Root.Key("a").Key("b").Index(7)
	field, ok := p.LastField()
	require.True(t, ok)
	require.Equal(t, "b", field)

	_, ok = valto.Root.LastField()
	require.False(t, ok)

	_, ok = valto.Root.Index(1).LastField()
	require.False(t, ok)
}
