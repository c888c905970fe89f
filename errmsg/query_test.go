package errmsg_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtoio/valto"
	"github.com/valtoio/valto/errmsg"
	"github.com/valtoio/valto/source/queryval"
)

func TestKindsQuery(t *testing.T) {
	require.Equal(t, "a string", errmsg.KindsQuery(nil))
	require.Equal(t, "a string", errmsg.KindsQuery([]valto.Kind{valto.KindMap, valto.KindSequence}))
}

func TestLocationQuery(t *testing.T) {
	steps := valto.Root.Key("key5").Index(2).Key("x").Path()
	require.Equal(t, " for parameter `key5[2].x`", errmsg.LocationQuery(steps, " for parameter"))
	require.Equal(t, "", errmsg.LocationQuery(nil, " for parameter"))
}

func TestValueQuery(t *testing.T) {
	require.Equal(t, "null", errmsg.ValueQuery(valto.NullValue()))
	require.Equal(t, "a boolean: `true`", errmsg.ValueQuery(valto.BoolValue(true)))
	require.Equal(t, "an integer: `2`", errmsg.ValueQuery(valto.UintValue(2)))
	require.Equal(t, "an integer: `-2`", errmsg.ValueQuery(valto.IntValue(-2)))
	require.Equal(t, "a number: `2.5`", errmsg.ValueQuery(valto.FloatValue(2.5)))
	require.Equal(t, "a string: `doggo`", errmsg.ValueQuery(valto.StringValue("doggo")))
}

func TestMessageQuery(t *testing.T) {
	at := valto.Root.Key("me").Path()

	require.Equal(t, "Missing parameter `me`",
		errmsg.MessageQuery(valto.MissingField{Field: "me"}, nil))

	require.Equal(t,
		"Unknown value `la` for parameter `me`: expected one of `One`, `Two`, `Three`",
		errmsg.MessageQuery(valto.UnknownValue{Value: "la", Accepted: []string{"One", "Two", "Three"}}, at))

	require.Equal(t,
		"Unknown parameter `uwu`: expected one of `me`, `and`",
		errmsg.MessageQuery(valto.UnknownKey{Key: "uwu", Accepted: []string{"me", "and"}}, nil))

	require.Equal(t,
		"Invalid value in parameter `me`: The sequence should have exactly 2 elements.",
		errmsg.MessageQuery(valto.Unexpected{Msg: "The sequence should have exactly 2 elements."}, at))
}

func TestQueryHandlerEndToEnd(t *testing.T) {
	type params struct{ Me string }
	b := valto.Struct[params]()
	valto.Field(b, "me", valto.StringOf(), func(p *params, v string) { p.Me = v })
	f := b.MustFinish()

	src := queryval.Values(url.Values{"me": {"a", "b"}})
	_, err := valto.Deserialize(src, f, errmsg.Query())
	require.EqualError(t, err,
		"Invalid value type for parameter `me`: expected a string, but found multiple values")

	src = queryval.Values(url.Values{"toto": {"2"}})
	_, err = valto.Deserialize(src, f, errmsg.Query())
	require.EqualError(t, err, "Missing parameter `me`")
}
