package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_AddRemove(t *testing.T) {
	var b Bundle
	b.Add(Lumber, 3)
	b.Add(Ore, 1)
	b.Add(Any, 5) // ignored

	assert.Equal(t, 3, b.Get(Lumber))
	assert.Equal(t, 1, b.Get(Ore))
	assert.Equal(t, 0, b.Get(Any))
	assert.Equal(t, 4, b.Total())

	assert.True(t, b.Remove(Lumber, 2))
	assert.False(t, b.Remove(Lumber, 2), "only one lumber left")
	assert.Equal(t, 1, b.Get(Lumber))
	assert.False(t, b.Remove(None, 0))
}

func TestBundle_Spend(t *testing.T) {
	b := Bundle{Lumber: 1, Brick: 1, Grain: 1}
	cost := Bundle{Lumber: 1, Brick: 1, Grain: 1, Wool: 1}

	assert.False(t, b.CanAfford(cost))
	assert.False(t, b.Spend(cost))
	assert.Equal(t, Bundle{Lumber: 1, Brick: 1, Grain: 1}, b, "failed spend must not mutate")

	b.Add(Wool, 2)
	require.True(t, b.Spend(cost))
	assert.Equal(t, Bundle{Wool: 1}, b)
}

func TestBundle_Arithmetic(t *testing.T) {
	a := Bundle{Lumber: 2, Ore: 1}
	c := Bundle{Lumber: 1, Grain: 4}

	assert.Equal(t, Bundle{Lumber: 3, Grain: 4, Ore: 1}, a.Plus(c))
	assert.Equal(t, Bundle{Lumber: 1, Grain: -4, Ore: 1}, a.Minus(c))
	assert.Equal(t, []Kind{Lumber, Ore}, a.Kinds())
	assert.True(t, Bundle{}.IsZero())
	assert.Equal(t, Bundle{Brick: 2}, Of(Brick, 2))
}

func TestKind_TextRoundTrip(t *testing.T) {
	type wrapper struct {
		Kind Kind `json:"kind"`
	}
	for _, k := range append([]Kind{None, Any}, All...) {
		data, err := json.Marshal(wrapper{Kind: k})
		require.NoError(t, err)

		var got wrapper
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, k, got.Kind)
	}

	_, err := Parse("gold")
	assert.Error(t, err)
}

func TestKind_Tradeable(t *testing.T) {
	for _, k := range All {
		assert.True(t, k.Tradeable(), k.String())
	}
	assert.False(t, None.Tradeable())
	assert.False(t, Any.Tradeable())
}
