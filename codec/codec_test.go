package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cssel/codec"
	"github.com/npillmayer/cssel/geom"
)

func TestRoundTripBindsBehavior(t *testing.T) {
	r := geom.New(4, 5)
	text, err := codec.ToJSON(r)
	require.NoError(t, err)

	parsed, err := codec.FromJSON[geom.Rect](text)
	require.NoError(t, err)
	assert.Equal(t, r, parsed, "round-trip should preserve field values")
	assert.Equal(t, 20.0, parsed.Area(), "parsed value should expose Rect behavior")
}

func TestToJSONStableKeyOrder(t *testing.T) {
	v := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}
	text, err := codec.ToJSON(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"mid":3,"zeta":1}`, text)
}

func TestFromJSONSurfacesParseError(t *testing.T) {
	_, err := codec.FromJSON[geom.Rect](`{"width":4,`)
	assert.Error(t, err)
}

func TestFromJSONIgnoresUnknownFields(t *testing.T) {
	parsed, err := codec.FromJSON[geom.Rect](`{"width":2,"height":3,"color":"red"}`)
	require.NoError(t, err)
	assert.Equal(t, geom.New(2, 3), parsed)
}
