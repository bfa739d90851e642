package maps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
)

func TestLoadAll_Standard(t *testing.T) {
	require.NoError(t, LoadAll())
	m := Get("standard")
	require.NotNil(t, m)

	assert.Equal(t, 19, m.TileCount())
	assert.Equal(t, 9, m.PortCount())
	assert.Equal(t, map[string]int{"lumber": 4, "grain": 4, "wool": 4, "brick": 3, "ore": 3, "none": 1}, m.ResourceCounts())

	infos := List()
	require.NotEmpty(t, infos)
	assert.Equal(t, "standard", infos[0].ID)
	assert.Contains(t, m.Debug(), "Ring 2:")
}

func TestBuild_Standard(t *testing.T) {
	m, err := Load("standard.json")
	require.NoError(t, err)

	b, err := Build(m)
	require.NoError(t, err)
	assert.Equal(t, 19, b.TileCount())
	assert.Equal(t, 54, b.VertexCount())
	assert.Equal(t, 72, b.EdgeCount())
	require.NoError(t, b.CheckInvariants())

	assertPortsApart(t, m, b)
}

// Every harbor side has its own two corners.
func assertPortsApart(t *testing.T, m *Map, b *board.Board) {
	t.Helper()
	owner := make(map[board.VertexID]string)
	for _, spec := range m.Tiles {
		for side := range spec.Ports {
			key := fmt.Sprintf("%s/%d", spec.Cell, side)
			for _, corner := range []int{hex.Wrap(side - 1), side} {
				v := b.VertexAt(spec.Cell, corner)
				require.NotNil(t, v)
				if prev, ok := owner[v.ID]; ok {
					t.Errorf("harbors %s and %s share a corner", prev, key)
				}
				owner[v.ID] = key
			}
		}
	}
}

func TestLoadFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"missing id", `{"name":"x","tiles":[{"q":0,"r":0,"resource":"desert"}]}`},
		{"no tiles", `{"id":"x","name":"x"}`},
		{"duplicate cell", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"desert"},{"q":0,"r":0,"resource":"desert"}]}`},
		{"bad resource", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"gold","dice":5}]}`},
		{"wildcard terrain", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"any","dice":5}]}`},
		{"seven", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"ore","dice":7}]}`},
		{"no dice", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"ore"}]}`},
		{"desert with dice", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"desert","dice":6}]}`},
		{"outside radius", `{"id":"x","name":"x","radius":1,"tiles":[{"q":2,"r":0,"resource":"desert"}]}`},
		{"bad port side", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"desert","ports":[{"side":6,"resource":"any"}]}]}`},
		{"bad port kind", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"desert","ports":[{"side":0,"resource":"none"}]}]}`},
		{"inland port", `{"id":"x","name":"x","tiles":[{"q":0,"r":0,"resource":"desert","ports":[{"side":0,"resource":"any"}]},{"q":1,"r":-1,"resource":"ore","dice":5}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromJSON([]byte(tc.json))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromJSON_Ports(t *testing.T) {
	m, err := LoadFromJSON([]byte(`{"id":"tiny","name":"Tiny","tiles":[
		{"q":0,"r":0,"resource":"wool","dice":9,"ports":[{"side":0,"resource":"any"},{"side":3,"resource":"brick"}]}
	]}`))
	require.NoError(t, err)

	tile := m.TileAt(hex.NewCell(0, 0))
	require.NotNil(t, tile)
	assert.Equal(t, board.GenericPort(), tile.Ports[0])

	b, err := Build(m)
	require.NoError(t, err)
	bt := b.Tile(hex.NewCell(0, 0))
	assert.Equal(t, board.GenericPort(), bt.Ports[5])
	assert.Equal(t, board.GenericPort(), bt.Ports[0])
	assert.Equal(t, board.SpecialPort(tile.Ports[3].Resource), bt.Ports[2])
	assert.Equal(t, board.SpecialPort(tile.Ports[3].Resource), bt.Ports[3])
	assert.Len(t, bt.Ports, 4)
}

func TestGenerator(t *testing.T) {
	for _, radius := range []int{2, 3} {
		t.Run(fmt.Sprintf("radius_%d", radius), func(t *testing.T) {
			opts := GeneratorOptions{Radius: radius, Seed: 7}
			m, err := NewGenerator(opts).Generate()
			require.NoError(t, err)
			assert.Equal(t, 3*radius*radius+3*radius+1, m.TileCount())
			assert.Greater(t, m.PortCount(), 0)

			b, err := Build(m)
			require.NoError(t, err)
			require.NoError(t, b.CheckInvariants())
			assertPortsApart(t, m, b)

			// Same seed, same map
			again, err := NewGenerator(opts).Generate()
			require.NoError(t, err)
			assert.Equal(t, m.Debug(), again.Debug())
		})
	}
}

func TestGenerator_StandardComposition(t *testing.T) {
	m, err := NewGenerator(GeneratorOptions{Radius: 2, Ports: 9, Seed: 99}).Generate()
	require.NoError(t, err)

	assert.Equal(t, 1, m.ResourceCounts()["none"])
	assert.Equal(t, 9, m.PortCount())
	for _, tile := range m.Tiles {
		if tile.Dice != 6 && tile.Dice != 8 {
			continue
		}
		for _, n := range tile.Cell.Neighbors() {
			if other := m.TileAt(n); other != nil {
				assert.NotContains(t, []int{6, 8}, other.Dice, "%s and %s", tile.Cell, n)
			}
		}
	}
}

func TestGenerator_HarborMix(t *testing.T) {
	m, err := NewGenerator(DefaultOptions()).Generate()
	require.NoError(t, err)

	generic, special := 0, 0
	for _, tile := range m.Tiles {
		for _, p := range tile.Ports {
			if p == board.GenericPort() {
				generic++
			} else {
				special++
			}
		}
	}
	assert.Equal(t, 4, generic)
	assert.Equal(t, 5, special)
}
