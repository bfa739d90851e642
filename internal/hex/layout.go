package hex

import "math"

var sqrt3 = math.Sqrt(3)

// Point is a position in world space. Z carries tile height and is ignored
// when mapping back to a cell.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FractionalCell is an unrounded cube coordinate.
type FractionalCell struct {
	Q, R, S float64
}

// Layout maps cells to world space for a flat-top grid.
type Layout struct {
	Size   float64 // Center-to-corner distance
	Origin Point   // World position of cell (0,0,0)
}

// DefaultLayout returns a unit-size layout centered at the origin.
func DefaultLayout() Layout {
	return Layout{Size: 1}
}

// CellToWorld returns the world-space center of a cell.
func (l Layout) CellToWorld(c Cell) Point {
	q := float64(c.Q)
	r := float64(c.R)
	return Point{
		X: l.Origin.X + l.Size*1.5*q,
		Y: l.Origin.Y + l.Size*sqrt3*(r+q/2),
		Z: l.Origin.Z,
	}
}

// WorldToFractional converts a world point into fractional cube coordinates.
func (l Layout) WorldToFractional(p Point) FractionalCell {
	x := (p.X - l.Origin.X) / l.Size
	y := (p.Y - l.Origin.Y) / l.Size
	q := 2.0 / 3.0 * x
	r := -1.0/3.0*x + sqrt3/3.0*y
	return FractionalCell{Q: q, R: r, S: -q - r}
}

// WorldToCell returns the cell containing a world point.
func (l Layout) WorldToCell(p Point) Cell {
	return Round(l.WorldToFractional(p))
}

// Corner returns the world position of vertex i of a cell. Vertex i lies
// between side i and side i+1, at angle 60*i degrees.
func (l Layout) Corner(c Cell, i int) Point {
	center := l.CellToWorld(c)
	angle := math.Pi / 3 * float64(Wrap(i))
	return Point{
		X: center.X + l.Size*math.Cos(angle),
		Y: center.Y + l.Size*math.Sin(angle),
		Z: center.Z,
	}
}

// EdgeMidpoint returns the world position of the middle of side i.
func (l Layout) EdgeMidpoint(c Cell, i int) Point {
	a := l.Corner(c, i-1)
	b := l.Corner(c, i)
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}

// Round snaps a fractional coordinate to the nearest cell. Each axis is
// rounded independently, then the axis with the largest rounding error is
// recomputed from the other two so that q+r+s stays zero.
func Round(f FractionalCell) Cell {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cell{Q: int(q), R: int(r), S: int(s)}
}
