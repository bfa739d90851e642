// Package hex provides cube coordinates for a flat-top hex grid.
// Cells are identified by (q, r, s) with q + r + s = 0.
package hex

import "fmt"

// Cell is a position on the hex grid in cube coordinates.
type Cell struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// NewCell builds a cell from axial coordinates; s is derived.
func NewCell(q, r int) Cell {
	return Cell{Q: q, R: r, S: -q - r}
}

// Valid reports whether the cube constraint holds.
func (c Cell) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Sub returns the component-wise difference of two cells.
func (c Cell) Sub(o Cell) Cell {
	return Cell{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

// Scale multiplies every component by k.
func (c Cell) Scale(k int) Cell {
	return Cell{Q: c.Q * k, R: c.R * k, S: c.S * k}
}

// String returns the cell as "(q,r,s)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}

// Directions are the six unit offsets. Consecutive entries are adjacent
// sides of the hexagon, so Opposite(i) is always i+3.
var Directions = [6]Cell{
	{Q: 1, R: -1, S: 0},
	{Q: 1, R: 0, S: -1},
	{Q: 0, R: 1, S: -1},
	{Q: -1, R: 1, S: 0},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: -1, S: 1},
}

// Direction returns the unit offset for direction i (taken mod 6).
func Direction(i int) Cell {
	return Directions[Wrap(i)]
}

// Wrap normalizes any integer into the 0-5 side range.
func Wrap(i int) int {
	return ((i % 6) + 6) % 6
}

// Opposite returns the side facing back across side i.
func Opposite(i int) int {
	return Wrap(i + 3)
}

// Neighbor returns the cell adjacent to c across side i.
func (c Cell) Neighbor(i int) Cell {
	return c.Add(Direction(i))
}

// Neighbors returns the six adjacent cells in direction order.
func (c Cell) Neighbors() [6]Cell {
	var result [6]Cell
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// DirectionTo returns the side index whose neighbor is o, or -1 if o is
// not adjacent to c.
func (c Cell) DirectionTo(o Cell) int {
	d := o.Sub(c)
	for i, dir := range Directions {
		if dir == d {
			return i
		}
	}
	return -1
}

// Distance returns the number of steps between two cells.
func Distance(a, b Cell) int {
	d := a.Sub(b)
	return max(abs(d.Q), abs(d.R), abs(d.S))
}

// Ring returns the cells exactly radius steps from center, walking the ring
// in direction order starting from the cell in direction 4.
func Ring(center Cell, radius int) []Cell {
	if radius <= 0 {
		return []Cell{center}
	}
	results := make([]Cell, 0, 6*radius)
	c := center.Add(Direction(4).Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			results = append(results, c)
			c = c.Neighbor(side)
		}
	}
	return results
}

// Spiral returns the center followed by every ring out to radius.
func Spiral(center Cell, radius int) []Cell {
	results := []Cell{center}
	for k := 1; k <= radius; k++ {
		results = append(results, Ring(center, k)...)
	}
	return results
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
