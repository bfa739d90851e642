package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
)

// Helper to put a piece straight onto the board, bypassing the rules.
func placePiece(t *testing.T, b *board.Board, kind board.PieceKind, owner string, cell hex.Cell, index int) *board.Piece {
	t.Helper()
	p := board.NewPiece(kind, owner)
	require.NoError(t, b.Place(p, board.At(cell, kind.Slot(), index)))
	return p
}

func createTestPlayers() []*Player {
	return []*Player{
		NewPlayer("A", "Alice", ColorRed),
		NewPlayer("B", "Bob", ColorBlue),
	}
}

func TestCanPlaceSettlement_DistanceRuleAcrossTiles(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceSettlement, "A", origin, 0)

	v := b.VertexAt(origin, 0)
	for _, adj := range b.AdjacentVertices(v.ID) {
		for _, corner := range b.Vertex(adj).Corners {
			assert.False(t,
				CanPlaceSettlement(b, corner.Cell, corner.Index, players, 1, PhaseSetup),
				"%s corner %d is adjacent to a settlement", corner.Cell, corner.Index)
		}
	}

	// Reached only through the neighbor's own perimeter
	n := origin.Neighbor(0)
	assert.False(t, CanPlaceSettlement(b, n, 1, players, 1, PhaseSetup))
	// Same physical point seen from the neighbor
	assert.False(t, CanPlaceSettlement(b, n, 2, players, 1, PhaseSetup))

	// Two edges away is fine
	assert.True(t, CanPlaceSettlement(b, origin, 2, players, 1, PhaseSetup))
	assert.True(t, CanPlaceSettlement(b, n, 0, players, 1, PhaseSetup))
}

func TestCanPlaceSettlement_SetupRequiresUntouchedVertex(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceRoad, "A", origin, 3)

	// Side 3 runs from corner 2 to corner 3
	assert.False(t, CanPlaceSettlement(b, origin, 2, players, 1, PhaseSetup))
	assert.False(t, CanPlaceSettlement(b, origin, 3, players, 1, PhaseSetup))
	assert.True(t, CanPlaceSettlement(b, origin, 5, players, 1, PhaseSetup))
}

func TestCanPlaceSettlement_SetupOrder(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	a := players[0]

	s := placePiece(t, b, board.PieceSettlement, "A", origin, 0)
	a.SettlementsBuilt = 1
	a.SetupSettlements = []string{s.ID}

	// The road for the first settlement comes next
	assert.False(t, CanPlaceSettlement(b, hex.NewCell(2, 0), 4, players, 0, PhaseSetup))

	a.RoadsBuilt = 1
	assert.True(t, CanPlaceSettlement(b, hex.NewCell(2, 0), 4, players, 0, PhaseSetup))

	a.SetupSettlements = append(a.SetupSettlements, "second")
	a.RoadsBuilt = 2
	assert.False(t, CanPlaceSettlement(b, hex.NewCell(-2, 0), 3, players, 0, PhaseSetup), "only two setup settlements")
}

func TestCanPlaceSettlement_NormalNeedsOwnRoad(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceRoad, "A", origin, 2)

	assert.True(t, CanPlaceSettlement(b, origin, 2, players, 0, PhaseNormal))
	assert.True(t, CanPlaceSettlement(b, origin, 1, players, 0, PhaseNormal))
	assert.False(t, CanPlaceSettlement(b, origin, 3, players, 0, PhaseNormal))
	assert.False(t, CanPlaceSettlement(b, origin, 2, players, 1, PhaseNormal), "road belongs to A")
}

func TestCanPlaceSettlement_PoolExhausted(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	players[1].SettlementsBuilt = MaxSettlements

	assert.False(t, CanPlaceSettlement(b, origin, 0, players, 1, PhaseSetup))
}

func TestCanPlaceRoad_SetupNextInOrder(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	a := players[0]

	first := placePiece(t, b, board.PieceSettlement, "A", origin, 0)
	a.SetupSettlements = []string{first.ID}

	assert.True(t, CanPlaceRoad(b, origin, 0, players, 0, PhaseSetup))
	assert.True(t, CanPlaceRoad(b, origin, 1, players, 0, PhaseSetup))
	assert.False(t, CanPlaceRoad(b, origin, 3, players, 0, PhaseSetup))

	placePiece(t, b, board.PieceRoad, "A", origin, 1)
	a.RoadsBuilt = 1
	second := placePiece(t, b, board.PieceSettlement, "A", hex.NewCell(2, 0), 4)
	a.SetupSettlements = append(a.SetupSettlements, second.ID)

	// The second road must touch the second settlement
	assert.False(t, CanPlaceRoad(b, origin, 0, players, 0, PhaseSetup))
	assert.True(t, CanPlaceRoad(b, hex.NewCell(2, 0), 4, players, 0, PhaseSetup))

	// No settlement waiting for a road
	assert.False(t, CanPlaceRoad(b, origin, 0, players, 1, PhaseSetup))
}

func TestCanPlaceRoad_NormalConnectivity(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceSettlement, "A", origin, 0)

	assert.True(t, CanPlaceRoad(b, origin, 0, players, 0, PhaseNormal))
	assert.True(t, CanPlaceRoad(b, origin, 1, players, 0, PhaseNormal))
	assert.False(t, CanPlaceRoad(b, origin, 2, players, 0, PhaseNormal))
	assert.False(t, CanPlaceRoad(b, origin, 1, players, 1, PhaseNormal))

	placePiece(t, b, board.PieceRoad, "A", origin, 1)
	assert.True(t, CanPlaceRoad(b, origin, 2, players, 0, PhaseNormal), "extends own road")
	assert.False(t, CanPlaceRoad(b, origin, 1, players, 0, PhaseNormal), "occupied")

	// The road continues onto the neighbors sharing corner 1
	v1 := b.VertexAt(origin, 1)
	for _, e := range v1.Edges {
		edge := b.Edge(e)
		if edge.Occupant != nil {
			continue
		}
		for _, side := range edge.Sides {
			assert.True(t, CanPlaceRoad(b, side.Cell, side.Index, players, 0, PhaseNormal))
		}
	}

	// B's settlement on corner 1 cuts the road there
	placePiece(t, b, board.PieceSettlement, "B", origin, 1)
	assert.False(t, CanPlaceRoad(b, origin, 2, players, 0, PhaseNormal))
	assert.True(t, CanPlaceRoad(b, origin, 0, players, 0, PhaseNormal))
	assert.True(t, CanPlaceRoad(b, origin, 2, players, 1, PhaseNormal), "B builds from its settlement")
}

func TestCanPlaceCity(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceSettlement, "A", origin, 0)
	placePiece(t, b, board.PieceCity, "B", origin, 3)

	assert.True(t, CanPlaceCity(b, origin, 0, players, 0, PhaseNormal))
	assert.True(t, CanPlaceCity(b, origin.Neighbor(0), 2, players, 0, PhaseNormal), "same corner from the neighbor")
	assert.False(t, CanPlaceCity(b, origin, 0, players, 0, PhaseSetup))
	assert.False(t, CanPlaceCity(b, origin, 0, players, 1, PhaseNormal))
	assert.False(t, CanPlaceCity(b, origin, 3, players, 1, PhaseNormal), "already a city")
	assert.False(t, CanPlaceCity(b, origin, 2, players, 0, PhaseNormal))

	players[0].CitiesBuilt = MaxCities
	assert.False(t, CanPlaceCity(b, origin, 0, players, 0, PhaseNormal))
}

func TestValidators_RejectNonsense(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	off := hex.NewCell(7, -3)

	for _, i := range []int{-1, 6, 100} {
		assert.False(t, CanPlaceSettlement(b, origin, i, players, 0, PhaseSetup))
		assert.False(t, CanPlaceRoad(b, origin, i, players, 0, PhaseNormal))
		assert.False(t, CanPlaceCity(b, origin, i, players, 0, PhaseNormal))
	}
	assert.False(t, CanPlaceSettlement(b, off, 0, players, 0, PhaseSetup))
	assert.False(t, CanPlaceRoad(b, off, 0, players, 0, PhaseSetup))

	for _, acting := range []int{-1, 2} {
		assert.False(t, CanPlaceSettlement(b, origin, 0, players, acting, PhaseSetup))
		assert.False(t, CanPlaceRoad(b, origin, 0, players, acting, PhaseSetup))
	}
	assert.False(t, CanPlaceSettlement(b, origin, 0, players, 0, PhaseFinished))
	assert.False(t, CanPlaceRoad(b, origin, 0, players, 0, PhaseFinished))
}

func TestValidators_DoNotMutate(t *testing.T) {
	b := createTestBoard(t)
	players := createTestPlayers()
	placePiece(t, b, board.PieceSettlement, "A", origin, 0)
	before := len(b.Pieces())

	for i := 0; i < 6; i++ {
		first := CanPlaceSettlement(b, origin, i, players, 1, PhaseSetup)
		assert.Equal(t, first, CanPlaceSettlement(b, origin, i, players, 1, PhaseSetup))
		CanPlaceRoad(b, origin, i, players, 0, PhaseNormal)
	}
	assert.Len(t, b.Pieces(), before)
	assert.Equal(t, 0, players[1].SettlementsBuilt)
}
