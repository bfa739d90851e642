package board

import (
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// Port is a trade deal available to whoever builds on a port vertex.
// Resource is resource.Any for a generic port.
type Port struct {
	Resource resource.Kind `json:"resource"`
	Give     int           `json:"give"`
	Receive  int           `json:"receive"`
}

// GenericPort is the 3:1 any-resource harbor.
func GenericPort() Port {
	return Port{Resource: resource.Any, Give: 3, Receive: 1}
}

// SpecialPort is the 2:1 single-resource harbor.
func SpecialPort(k resource.Kind) Port {
	return Port{Resource: k, Give: 2, Receive: 1}
}

// Tile is one hex of the board.
type Tile struct {
	Cell     hex.Cell      `json:"cell"`
	Height   float64       `json:"height"`
	Resource resource.Kind `json:"resource"` // None for desert
	Dice     int           `json:"dice"`     // 0 when the tile never produces
	Ports    map[int]Port  `json:"ports,omitempty"`

	vertices [6]VertexID
	edges    [6]EdgeID
	robber   *Piece
}

// NewTile creates a tile at a cell.
func NewTile(cell hex.Cell, res resource.Kind, dice int) *Tile {
	return &Tile{Cell: cell, Resource: res, Dice: dice}
}

// WithPort attaches a port deal to vertex index i and returns the tile.
func (t *Tile) WithPort(i int, p Port) *Tile {
	if t.Ports == nil {
		t.Ports = make(map[int]Port)
	}
	t.Ports[i] = p
	return t
}

// VertexID returns the shared vertex node at corner i.
func (t *Tile) VertexID(i int) (VertexID, bool) {
	if !validIndex(i) {
		return 0, false
	}
	return t.vertices[i], true
}

// EdgeID returns the shared edge node at side i.
func (t *Tile) EdgeID(i int) (EdgeID, bool) {
	if !validIndex(i) {
		return 0, false
	}
	return t.edges[i], true
}

// Robber returns the robber if it sits on this tile.
func (t *Tile) Robber() *Piece {
	return t.robber
}

// Produces returns true if the tile yields resources on a roll of dice.
func (t *Tile) Produces(dice int) bool {
	return t.Dice == dice && t.Resource.Tradeable() && t.robber == nil
}

func validIndex(i int) bool {
	return i >= 0 && i < 6
}
