package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-settlers/internal/hex"
)

func TestPlace_VisibleFromEveryTouchingTile(t *testing.T) {
	a := hex.Cell{}
	n := a.Neighbor(0)
	b := createTestBoard(t, a, n)

	// Corner 0 of a is corner 2 of its direction-0 neighbor.
	s := NewPiece(PieceSettlement, "p1")
	require.NoError(t, b.Place(s, At(a, SlotVertex, 0)))

	assert.Same(t, s, b.OccupantAt(a, SlotVertex, 0))
	assert.Same(t, s, b.OccupantAt(n, SlotVertex, 2))
	assertSharedState(t, b)

	loc, placed := s.Location()
	assert.True(t, placed)
	assert.Equal(t, At(a, SlotVertex, 0), loc)

	// Removing through the piece clears both views.
	require.NoError(t, b.Remove(s))
	assert.Nil(t, b.OccupantAt(a, SlotVertex, 0))
	assert.Nil(t, b.OccupantAt(n, SlotVertex, 2))
	assertSharedState(t, b)
}

func TestPlace_SharedSlotRejectsSecondPiece(t *testing.T) {
	a := hex.Cell{}
	n := a.Neighbor(0)
	b := createTestBoard(t, a, n)

	require.NoError(t, b.Place(NewPiece(PieceRoad, "p1"), At(a, SlotEdge, 0)))
	err := b.Place(NewPiece(PieceRoad, "p2"), At(n, SlotEdge, 3))
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestPlace_Rejections(t *testing.T) {
	b := createTestBoard(t, hex.Cell{})

	road := NewPiece(PieceRoad, "p1")
	assert.ErrorIs(t, b.Place(road, At(hex.NewCell(3, 0), SlotEdge, 0)), ErrNoTile)
	assert.ErrorIs(t, b.Place(road, At(hex.Cell{}, SlotEdge, 6)), ErrInvalidIndex)
	assert.ErrorIs(t, b.Place(road, At(hex.Cell{}, SlotEdge, -1)), ErrInvalidIndex)
	assert.ErrorIs(t, b.Place(road, At(hex.Cell{}, SlotVertex, 0)), ErrSlotMismatch)
	assert.False(t, road.Placed())

	robber := NewPiece(PieceRobber, "")
	assert.ErrorIs(t, b.Place(robber, At(hex.Cell{}, SlotCenter, 1)), ErrInvalidIndex)
	require.NoError(t, b.Place(robber, At(hex.Cell{}, SlotCenter, 0)))
	assert.ErrorIs(t, b.Place(robber, At(hex.Cell{}, SlotCenter, 0)), ErrAlreadyPlaced)
	assert.Same(t, robber, b.Robber())
	assert.Same(t, robber, b.Tile(hex.Cell{}).Robber())

	assert.ErrorIs(t, b.Remove(road), ErrNotPlaced)
	assert.ErrorIs(t, b.Move(road, At(hex.Cell{}, SlotEdge, 1)), ErrNotPlaced)
}

func TestMove_FailedTargetKeepsOldLocation(t *testing.T) {
	a := hex.Cell{}
	n := a.Neighbor(1)
	b := createTestBoard(t, a, n)

	blocker := NewPiece(PieceSettlement, "p2")
	require.NoError(t, b.Place(blocker, At(n, SlotVertex, 0)))

	s := NewPiece(PieceSettlement, "p1")
	require.NoError(t, b.Place(s, At(a, SlotVertex, 3)))

	err := b.Move(s, At(n, SlotVertex, 0))
	assert.ErrorIs(t, err, ErrSlotOccupied)
	assert.Same(t, s, b.OccupantAt(a, SlotVertex, 3))
	loc, placed := s.Location()
	assert.True(t, placed)
	assert.Equal(t, At(a, SlotVertex, 3), loc)

	err = b.Move(s, At(hex.NewCell(9, -9), SlotVertex, 0))
	assert.ErrorIs(t, err, ErrNoTile)
	assert.Same(t, s, b.OccupantAt(a, SlotVertex, 3))
	assertSharedState(t, b)
}

func TestMove_AcrossTiles(t *testing.T) {
	a := hex.Cell{}
	n := a.Neighbor(1)
	b := createTestBoard(t, a, n)

	road := NewPiece(PieceRoad, "p1")
	require.NoError(t, b.Place(road, At(a, SlotEdge, 5)))
	require.NoError(t, b.Move(road, At(n, SlotEdge, 4)))

	assert.Nil(t, b.OccupantAt(a, SlotEdge, 5))
	assert.Same(t, road, b.OccupantAt(n, SlotEdge, 4))
	assert.Same(t, road, b.OccupantAt(a, SlotEdge, 1), "side 1 of a is side 4 of its direction-1 neighbor")
	assertSharedState(t, b)

	// Moving onto its own current slot is a no-op, not a collision.
	require.NoError(t, b.Move(road, At(a, SlotEdge, 1)))
	assert.Same(t, road, b.OccupantAt(n, SlotEdge, 4))
}

func TestMove_Robber(t *testing.T) {
	a := hex.Cell{}
	n := a.Neighbor(3)
	b := createTestBoard(t, a, n)

	robber := NewPiece(PieceRobber, "")
	require.NoError(t, b.Place(robber, At(a, SlotCenter, 0)))
	require.NoError(t, b.Move(robber, At(n, SlotCenter, 0)))

	assert.Nil(t, b.Tile(a).Robber())
	assert.Same(t, robber, b.Tile(n).Robber())
	assert.False(t, b.Tile(n).Produces(6))
	assert.True(t, b.Tile(a).Produces(6))
}

func TestPiecesOf(t *testing.T) {
	b := createTestBoard(t, hex.Spiral(hex.Cell{}, 1)...)
	require.NoError(t, b.Place(NewPiece(PieceRoad, "p1"), At(hex.Cell{}, SlotEdge, 0)))
	require.NoError(t, b.Place(NewPiece(PieceRoad, "p1"), At(hex.Cell{}, SlotEdge, 1)))
	require.NoError(t, b.Place(NewPiece(PieceRoad, "p2"), At(hex.Cell{}, SlotEdge, 3)))
	s := NewPiece(PieceSettlement, "p1")
	require.NoError(t, b.Place(s, At(hex.Cell{}, SlotVertex, 0)))

	assert.Len(t, b.PiecesOf("p1", PieceRoad), 2)
	assert.Len(t, b.PiecesOf("p2", PieceRoad), 1)
	assert.Equal(t, []*Piece{s}, b.PiecesOf("p1", PieceSettlement))
	assert.Len(t, b.Pieces(), 4)

	v, ok := b.VertexOf(s)
	require.True(t, ok)
	assert.Same(t, b.Vertex(v), b.VertexAt(hex.Cell{}, 0))
	_, ok = b.EdgeOf(s)
	assert.False(t, ok)
	assertSharedState(t, b)
}
