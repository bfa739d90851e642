// Package maps handles map loading, processing, and generation.
package maps

import (
	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// RawMap is the format stored in JSON files.
type RawMap struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Radius int       `json:"radius"`
	Tiles  []RawTile `json:"tiles"`
}

// RawTile is tile data from the JSON file. S is implied by q+r+s=0.
type RawTile struct {
	Q        int       `json:"q"`
	R        int       `json:"r"`
	Resource string    `json:"resource"` // lumber, grain, wool, brick, ore, or desert
	Dice     int       `json:"dice"`
	Ports    []RawPort `json:"ports,omitempty"`
}

// RawPort is a harbor on one side of a coastal tile.
type RawPort struct {
	Side     int    `json:"side"`
	Resource string `json:"resource"` // "any" for the 3:1 harbor
}

// Map is the processed, runtime map data.
type Map struct {
	ID     string
	Name   string
	Radius int
	Tiles  []*TileSpec

	byCell map[hex.Cell]*TileSpec
}

// TileSpec describes one tile before it is put on a board.
type TileSpec struct {
	Cell     hex.Cell
	Resource resource.Kind
	Dice     int
	Ports    map[int]board.Port // keyed by side
}

// TileAt returns the tile at a cell, or nil.
func (m *Map) TileAt(c hex.Cell) *TileSpec {
	return m.byCell[c]
}

// TileCount returns the number of tiles.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// PortCount returns the number of harbors.
func (m *Map) PortCount() int {
	n := 0
	for _, t := range m.Tiles {
		n += len(t.Ports)
	}
	return n
}

// Coastal returns true if side i of the tile at c faces off the map.
func (m *Map) Coastal(c hex.Cell, i int) bool {
	return m.byCell[c] != nil && m.byCell[c.Neighbor(i)] == nil
}
