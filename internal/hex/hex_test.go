package hex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirections_SumToZeroAndOppose(t *testing.T) {
	for i, d := range Directions {
		assert.True(t, d.Valid(), "direction %d breaks q+r+s=0", i)
		assert.Equal(t, Cell{}, d.Add(Direction(Opposite(i))), "direction %d and its opposite should cancel", i)
	}
}

func TestDirections_ConsecutiveSidesAreAdjacent(t *testing.T) {
	// Direction i and i+2 combine into the direction between them.
	for i := 0; i < 6; i++ {
		assert.Equal(t, Direction(i+1), Direction(i).Add(Direction(i+2)))
	}
}

func TestNeighbors(t *testing.T) {
	c := NewCell(2, -1)
	n := c.Neighbors()
	for i, nb := range n {
		assert.Equal(t, 1, Distance(c, nb))
		assert.Equal(t, i, c.DirectionTo(nb))
		assert.Equal(t, nb, c.Neighbor(i))
	}
	assert.Equal(t, -1, c.DirectionTo(c))
	assert.Equal(t, -1, c.DirectionTo(NewCell(5, 5)))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 5, Wrap(-1))
	assert.Equal(t, 0, Wrap(6))
	assert.Equal(t, 1, Wrap(13))
	assert.Equal(t, 3, Opposite(0))
	assert.Equal(t, 1, Opposite(4))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(NewCell(0, 0), NewCell(0, 0)))
	assert.Equal(t, 3, Distance(NewCell(0, 0), NewCell(3, -3)))
	assert.Equal(t, 4, Distance(NewCell(-2, 0), NewCell(2, -1)))
}

func TestRingAndSpiral(t *testing.T) {
	origin := Cell{}
	assert.Equal(t, []Cell{origin}, Ring(origin, 0))

	ring := Ring(origin, 2)
	require.Len(t, ring, 12)
	seen := make(map[Cell]bool)
	for _, c := range ring {
		assert.Equal(t, 2, Distance(origin, c))
		seen[c] = true
	}
	assert.Len(t, seen, 12)

	spiral := Spiral(origin, 2)
	assert.Len(t, spiral, 19)
	assert.Equal(t, origin, spiral[0])
}

func TestWorldToCell_RoundTrip(t *testing.T) {
	layouts := []Layout{
		DefaultLayout(),
		{Size: 32, Origin: Point{X: 100, Y: -40}},
		{Size: 0.75, Origin: Point{X: -3, Y: 7, Z: 2}},
	}
	for _, l := range layouts {
		for _, c := range Spiral(Cell{}, 6) {
			assert.Equal(t, c, l.WorldToCell(l.CellToWorld(c)), "layout %+v cell %s", l, c)
		}
	}
}

func TestWorldToCell_PointsInsideHex(t *testing.T) {
	l := Layout{Size: 10}
	c := NewCell(1, 2)
	center := l.CellToWorld(c)
	// Anything well inside the inscribed circle belongs to the same cell.
	inner := l.Size * math.Sqrt(3) / 2 * 0.9
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		p := Point{X: center.X + inner*math.Cos(rad), Y: center.Y + inner*math.Sin(rad)}
		assert.Equal(t, c, l.WorldToCell(p), "angle %d", deg)
	}
}

func TestRound_CorrectsLargestError(t *testing.T) {
	// Naive rounding gives (0,0,-1); q strays furthest so it is rebuilt.
	got := Round(FractionalCell{Q: 0.45, R: 0.4, S: -0.85})
	assert.True(t, got.Valid())
	assert.Equal(t, Cell{Q: 1, R: 0, S: -1}, got)
}

func TestCorner_SharedBetweenNeighbors(t *testing.T) {
	l := Layout{Size: 5}
	c := Cell{}
	for i := 0; i < 6; i++ {
		own := l.Corner(c, i)
		viaN := l.Corner(c.Neighbor(i), i+2)
		viaN1 := l.Corner(c.Neighbor(i+1), i+4)
		assert.InDelta(t, own.X, viaN.X, 1e-9)
		assert.InDelta(t, own.Y, viaN.Y, 1e-9)
		assert.InDelta(t, own.X, viaN1.X, 1e-9)
		assert.InDelta(t, own.Y, viaN1.Y, 1e-9)
	}
}

func TestEdgeMidpoint_SharedAcrossSide(t *testing.T) {
	l := Layout{Size: 3}
	c := NewCell(-1, 1)
	for i := 0; i < 6; i++ {
		a := l.EdgeMidpoint(c, i)
		b := l.EdgeMidpoint(c.Neighbor(i), Opposite(i))
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.Y, b.Y, 1e-9)
	}
}
