package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-settlers/internal/board"
	"hex-settlers/internal/resource"
)

// Helper to lay a chain of roads along the origin tile's sides.
func placeRoadChain(t *testing.T, b *board.Board, owner string, sides ...int) {
	t.Helper()
	for _, side := range sides {
		placePiece(t, b, board.PieceRoad, owner, origin, side)
	}
}

func TestLongestRoad_SimpleChains(t *testing.T) {
	tests := []struct {
		name  string
		sides []int
		want  int
	}{
		{"none", nil, 0},
		{"single", []int{0}, 1},
		{"four", []int{0, 1, 2, 3}, 4},
		{"five", []int{0, 1, 2, 3, 4}, 5},
		{"ring", []int{0, 1, 2, 3, 4, 5}, 6},
		{"split", []int{0, 1, 3, 4}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := createTestBoard(t)
			placeRoadChain(t, b, "A", tc.sides...)
			assert.Equal(t, tc.want, LongestRoad(b, "A", RoadExhaustive))
			assert.Equal(t, tc.want, LongestRoad(b, "A", RoadGreedy))
			assert.Equal(t, 0, LongestRoad(b, "B", RoadExhaustive))
		})
	}
}

func TestLongestRoad_CrossesTiles(t *testing.T) {
	b := createTestBoard(t)
	placeRoadChain(t, b, "A", 0, 1, 2, 3, 4)

	// Extend from corner 4 onto the edge owned only by neighboring tiles
	v4 := b.VertexAt(origin, 4)
	for _, e := range v4.Edges {
		edge := b.Edge(e)
		if edge.Occupant == nil && !isOriginSide(edge) {
			loc := edge.LocationOf()
			placePiece(t, b, board.PieceRoad, "A", loc.Cell, loc.Index)
		}
	}

	assert.Equal(t, 6, LongestRoad(b, "A", RoadExhaustive))
}

func TestLongestRoad_BlockedByOpponentBuilding(t *testing.T) {
	b := createTestBoard(t)
	placeRoadChain(t, b, "A", 0, 1, 2, 3, 4)

	// Own settlement does not break the chain
	placePiece(t, b, board.PieceSettlement, "A", origin, 0)
	assert.Equal(t, 5, LongestRoad(b, "A", RoadExhaustive))

	// Corner 2 sits between sides 2 and 3
	placePiece(t, b, board.PieceSettlement, "B", origin, 2)
	assert.Equal(t, 3, LongestRoad(b, "A", RoadExhaustive))
	assert.Equal(t, 3, LongestRoad(b, "A", RoadGreedy))
}

func TestLongestRoad_GreedyCommitsToLowestEdgeAtJunction(t *testing.T) {
	// Two tiles: edges are numbered origin first, so at the shared corner
	// (origin corner 0) the one-road spur on origin side 0 has the lowest ID.
	east := origin.Neighbor(0)
	b, err := board.NewFromTiles(
		board.NewTile(origin, resource.Lumber, 8),
		board.NewTile(east, resource.Grain, 6),
	)
	require.NoError(t, err)

	junction := b.VertexAt(origin, 0)
	require.Equal(t, junction.ID, b.VertexAt(east, 2).ID)
	spur, _ := b.Tile(origin).EdgeID(0)
	arm, _ := b.Tile(origin).EdgeID(1)
	other, _ := b.Tile(east).EdgeID(2)
	require.Less(t, spur, arm)
	require.Less(t, arm, other)

	// Spur of one, an arm of three along origin, an arm of two along east
	placeRoadChain(t, b, "A", 0, 1, 2, 3)
	placePiece(t, b, board.PieceRoad, "A", east, 2)
	placePiece(t, b, board.PieceRoad, "A", east, 1)

	assert.Equal(t, 5, LongestRoad(b, "A", RoadExhaustive))
	// Every start reaches the junction and takes the spur or the long arm,
	// never both arms.
	assert.Equal(t, 4, LongestRoad(b, "A", RoadGreedy))
}

func TestParseRoadMode(t *testing.T) {
	for _, mode := range []RoadMode{RoadExhaustive, RoadGreedy} {
		got, err := ParseRoadMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	got, err := ParseRoadMode("")
	require.NoError(t, err)
	assert.Equal(t, RoadExhaustive, got)

	_, err = ParseRoadMode("fastest")
	assert.Error(t, err)
}

func TestAwardLongestRoad(t *testing.T) {
	players := createTestPlayers()
	a, b := players[0], players[1]

	// Four does not qualify
	assert.Empty(t, AwardLongestRoad(players, []int{4, 0}))
	assert.False(t, a.LongestRoad)

	// Five does
	events := AwardLongestRoad(players, []int{5, 0})
	assert.Equal(t, []BonusEvent{{Kind: BonusLongestRoad, PlayerID: "A", Gained: true}}, events)
	assert.True(t, a.LongestRoad)
	assert.Equal(t, 2, a.VictoryPoints())

	// Unchanged standings emit nothing
	assert.Empty(t, AwardLongestRoad(players, []int{5, 3}))

	// Strictly longer transfers
	events = AwardLongestRoad(players, []int{5, 6})
	assert.Equal(t, []BonusEvent{
		{Kind: BonusLongestRoad, PlayerID: "A", Gained: false},
		{Kind: BonusLongestRoad, PlayerID: "B", Gained: true},
	}, events)
	assert.False(t, a.LongestRoad)
	assert.True(t, b.LongestRoad)

	// Tie at the top strips everyone
	events = AwardLongestRoad(players, []int{6, 6})
	assert.Equal(t, []BonusEvent{{Kind: BonusLongestRoad, PlayerID: "B", Gained: false}}, events)
	assert.False(t, a.LongestRoad)
	assert.False(t, b.LongestRoad)

	// Holder cut below the minimum loses it
	AwardLongestRoad(players, []int{7, 2})
	require.True(t, a.LongestRoad)
	events = AwardLongestRoad(players, []int{4, 2})
	assert.Equal(t, []BonusEvent{{Kind: BonusLongestRoad, PlayerID: "A", Gained: false}}, events)

	// Mismatched input is ignored
	assert.Nil(t, AwardLongestRoad(players, []int{9}))
}

func TestAwardLargestArmy(t *testing.T) {
	players := createTestPlayers()
	a, b := players[0], players[1]

	a.KnightsPlayed = 2
	assert.Empty(t, AwardLargestArmy(players))

	a.KnightsPlayed = 3
	AwardLargestArmy(players)
	assert.True(t, a.LargestArmy)

	// Same rules as longest road: a tie at the top strips the holder
	b.KnightsPlayed = 3
	events := AwardLargestArmy(players)
	assert.Equal(t, []BonusEvent{{Kind: BonusLargestArmy, PlayerID: "A", Gained: false}}, events)

	b.KnightsPlayed = 4
	AwardLargestArmy(players)
	assert.False(t, a.LargestArmy)
	assert.True(t, b.LargestArmy)
}

func TestRecomputeLongestRoad_Transfer(t *testing.T) {
	g := createTestGame(t)
	a, b := g.Player("A"), g.Player("B")

	placeRoadChain(t, g.Board, "A", 0, 1, 2, 3, 4)
	events := g.RecomputeLongestRoad()
	require.Len(t, events, 1)
	assert.True(t, a.LongestRoad)
	assert.Equal(t, 5, a.RoadLength)

	// B builds a six-road ring around a far tile
	far := origin.Neighbor(3).Neighbor(3)
	for side := 0; side < 6; side++ {
		placePiece(t, g.Board, board.PieceRoad, "B", far, side)
	}
	g.RecomputeLongestRoad()
	assert.False(t, a.LongestRoad)
	assert.True(t, b.LongestRoad)
	assert.Equal(t, 6, b.RoadLength)
}

func isOriginSide(e *board.Edge) bool {
	for _, s := range e.Sides {
		if s.Cell == origin {
			return true
		}
	}
	return false
}
