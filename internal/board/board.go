// Package board holds the tile topology of a hex board and the pieces
// placed on it.
//
// Every physical vertex and edge is a single node in an arena. Tiles keep
// six vertex IDs and six edge IDs, so a point shared by up to three tiles
// has exactly one occupant no matter which tile it is read through.
//
// Side i of a tile faces hex.Direction(i). Corner i sits between side i and
// side i+1, which gives the cross-tile mapping:
//
//	edge i   == neighbor(i).edge(i+3)
//	vertex i == neighbor(i).vertex(i+2) == neighbor(i+1).vertex(i+4)
package board

import (
	"sort"

	"hex-settlers/internal/hex"
)

// VertexID indexes the vertex arena.
type VertexID int

// EdgeID indexes the edge arena.
type EdgeID int

// Corner names one tile's view of a shared point.
type Corner struct {
	Cell  hex.Cell `json:"cell"`
	Index int      `json:"index"`
}

// Vertex is a physical corner shared by one to three tiles.
type Vertex struct {
	ID       VertexID
	Corners  []Corner // Every tile corner that is this vertex
	Edges    []EdgeID // Two or three edges meeting here
	Occupant *Piece
}

// Edge is a physical side shared by one or two tiles.
type Edge struct {
	ID       EdgeID
	Sides    []Corner // Every tile side that is this edge
	Vertices [2]VertexID
	Occupant *Piece
}

// SharedPoint is a view of a tile's vertex or edge from a neighboring tile.
type SharedPoint struct {
	Neighbor      *Tile
	Index         int // Index on the tile being asked about
	NeighborIndex int // Index of the same point on Neighbor
}

// Board is the set of tiles plus the shared vertex/edge arena.
type Board struct {
	tiles    map[hex.Cell]*Tile
	vertices []Vertex
	edges    []Edge
	pieces   map[string]*Piece // Placed pieces by ID
}

// New creates an empty board.
func New() *Board {
	return &Board{
		tiles:  make(map[hex.Cell]*Tile),
		pieces: make(map[string]*Piece),
	}
}

// NewFromTiles creates a board and builds its topology once.
func NewFromTiles(tiles ...*Tile) (*Board, error) {
	b := New()
	for _, t := range tiles {
		if err := b.insert(t); err != nil {
			return nil, err
		}
	}
	b.rebuild()
	return b, nil
}

// AddTile adds a tile and rebuilds the shared-point arena.
func (b *Board) AddTile(t *Tile) error {
	if err := b.insert(t); err != nil {
		return err
	}
	b.rebuild()
	b.verify()
	return nil
}

// RemoveTile removes a tile and rebuilds the arena. Pieces on points shared
// with a remaining tile survive; pieces that could only be reached through
// the removed tile are detached and returned. A robber on the tile is
// taken off the board.
func (b *Board) RemoveTile(cell hex.Cell) ([]*Piece, error) {
	t, ok := b.tiles[cell]
	if !ok {
		return nil, ErrNoTile
	}
	b.rehome(t)
	delete(b.tiles, cell)
	if t.robber != nil {
		t.robber.placed = false
		delete(b.pieces, t.robber.ID)
		t.robber = nil
	}
	detached := b.rebuild()
	b.verify()
	return detached, nil
}

// rehome re-records pieces on t's shared points against another tile that
// still touches them, so removing t does not orphan them.
func (b *Board) rehome(t *Tile) {
	for i := 0; i < 6; i++ {
		if p := b.vertices[t.vertices[i]].Occupant; p != nil && p.loc.Cell == t.Cell {
			for _, c := range b.vertices[t.vertices[i]].Corners {
				if c.Cell != t.Cell {
					p.loc = Location{Cell: c.Cell, Slot: SlotVertex, Index: c.Index}
					break
				}
			}
		}
		if p := b.edges[t.edges[i]].Occupant; p != nil && p.loc.Cell == t.Cell {
			for _, c := range b.edges[t.edges[i]].Sides {
				if c.Cell != t.Cell {
					p.loc = Location{Cell: c.Cell, Slot: SlotEdge, Index: c.Index}
					break
				}
			}
		}
	}
}

func (b *Board) insert(t *Tile) error {
	if !t.Cell.Valid() {
		return ErrInvalidCell
	}
	if _, exists := b.tiles[t.Cell]; exists {
		return ErrTileExists
	}
	b.tiles[t.Cell] = t
	return nil
}

// Tile returns the tile at a cell, or nil if there is none.
func (b *Board) Tile(cell hex.Cell) *Tile {
	return b.tiles[cell]
}

// Tiles returns all tiles ordered by (q, r).
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(b.tiles))
	for _, c := range b.sortedCells() {
		tiles = append(tiles, b.tiles[c])
	}
	return tiles
}

// TileCount returns the number of tiles.
func (b *Board) TileCount() int {
	return len(b.tiles)
}

// VertexCount returns the number of distinct physical vertices.
func (b *Board) VertexCount() int {
	return len(b.vertices)
}

// EdgeCount returns the number of distinct physical edges.
func (b *Board) EdgeCount() int {
	return len(b.edges)
}

func (b *Board) sortedCells() []hex.Cell {
	cells := make([]hex.Cell, 0, len(b.tiles))
	for c := range b.tiles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Q != cells[j].Q {
			return cells[i].Q < cells[j].Q
		}
		return cells[i].R < cells[j].R
	})
	return cells
}

// rebuild recreates the arena from the current tile set and re-seats every
// placed piece at its recorded location. Pieces whose tile is gone are
// detached and returned.
func (b *Board) rebuild() []*Piece {
	b.vertices = b.vertices[:0]
	b.edges = b.edges[:0]

	built := make(map[hex.Cell]bool, len(b.tiles))
	for _, c := range b.sortedCells() {
		t := b.tiles[c]
		t.robber = nil

		// Vertices first: reuse a node already created by a neighbor.
		for i := 0; i < 6; i++ {
			id, ok := b.sharedVertex(c, i, built)
			if !ok {
				id = VertexID(len(b.vertices))
				b.vertices = append(b.vertices, Vertex{ID: id})
			}
			t.vertices[i] = id
			b.vertices[id].Corners = append(b.vertices[id].Corners, Corner{Cell: c, Index: i})
		}

		// Edges: side i runs from corner i-1 to corner i.
		for i := 0; i < 6; i++ {
			n := c.Neighbor(i)
			if built[n] {
				id := b.tiles[n].edges[hex.Opposite(i)]
				t.edges[i] = id
				b.edges[id].Sides = append(b.edges[id].Sides, Corner{Cell: c, Index: i})
				continue
			}
			id := EdgeID(len(b.edges))
			from, to := t.vertices[hex.Wrap(i-1)], t.vertices[i]
			b.edges = append(b.edges, Edge{
				ID:       id,
				Sides:    []Corner{{Cell: c, Index: i}},
				Vertices: [2]VertexID{from, to},
			})
			t.edges[i] = id
			b.vertices[from].Edges = append(b.vertices[from].Edges, id)
			b.vertices[to].Edges = append(b.vertices[to].Edges, id)
		}

		built[c] = true
	}

	return b.reseat()
}

// sharedVertex looks for corner i of cell c on an already built neighbor.
func (b *Board) sharedVertex(c hex.Cell, i int, built map[hex.Cell]bool) (VertexID, bool) {
	if n := c.Neighbor(i); built[n] {
		return b.tiles[n].vertices[hex.Wrap(i+2)], true
	}
	if n := c.Neighbor(i + 1); built[n] {
		return b.tiles[n].vertices[hex.Wrap(i+4)], true
	}
	return 0, false
}

func (b *Board) reseat() []*Piece {
	ids := make([]string, 0, len(b.pieces))
	for id := range b.pieces {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var detached []*Piece
	for _, id := range ids {
		p := b.pieces[id]
		t := b.tiles[p.loc.Cell]
		if t == nil {
			p.placed = false
			delete(b.pieces, id)
			detached = append(detached, p)
			continue
		}
		switch p.loc.Slot {
		case SlotVertex:
			b.vertices[t.vertices[p.loc.Index]].Occupant = p
		case SlotEdge:
			b.edges[t.edges[p.loc.Index]].Occupant = p
		case SlotCenter:
			t.robber = p
		}
	}
	return detached
}

// Vertex returns a vertex node by ID.
func (b *Board) Vertex(id VertexID) *Vertex {
	if id < 0 || int(id) >= len(b.vertices) {
		return nil
	}
	return &b.vertices[id]
}

// Edge returns an edge node by ID.
func (b *Board) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(b.edges) {
		return nil
	}
	return &b.edges[id]
}

// VertexAt returns the vertex node at corner i of the tile at cell.
func (b *Board) VertexAt(cell hex.Cell, i int) *Vertex {
	t := b.tiles[cell]
	if t == nil || !validIndex(i) {
		return nil
	}
	return &b.vertices[t.vertices[i]]
}

// EdgeAt returns the edge node at side i of the tile at cell.
func (b *Board) EdgeAt(cell hex.Cell, i int) *Edge {
	t := b.tiles[cell]
	if t == nil || !validIndex(i) {
		return nil
	}
	return &b.edges[t.edges[i]]
}

// OccupantAt returns the piece at a tile's vertex, edge or center, or nil.
// A shared point reports the same piece from every tile touching it.
func (b *Board) OccupantAt(cell hex.Cell, slot Slot, i int) *Piece {
	switch slot {
	case SlotVertex:
		if v := b.VertexAt(cell, i); v != nil {
			return v.Occupant
		}
	case SlotEdge:
		if e := b.EdgeAt(cell, i); e != nil {
			return e.Occupant
		}
	case SlotCenter:
		if t := b.tiles[cell]; t != nil && i == 0 {
			return t.robber
		}
	}
	return nil
}

// SharedVertices lists, for every corner of the tile shared with a
// neighbor, the neighbor and the corner index on it.
func (b *Board) SharedVertices(cell hex.Cell) []SharedPoint {
	if b.tiles[cell] == nil {
		return nil
	}
	var shared []SharedPoint
	for i := 0; i < 6; i++ {
		if n := b.tiles[cell.Neighbor(i)]; n != nil {
			shared = append(shared, SharedPoint{Neighbor: n, Index: i, NeighborIndex: hex.Wrap(i + 2)})
		}
		if n := b.tiles[cell.Neighbor(i+1)]; n != nil {
			shared = append(shared, SharedPoint{Neighbor: n, Index: i, NeighborIndex: hex.Wrap(i + 4)})
		}
	}
	return shared
}

// SharedEdges lists, for every side of the tile shared with a neighbor, the
// neighbor and the side index on it.
func (b *Board) SharedEdges(cell hex.Cell) []SharedPoint {
	if b.tiles[cell] == nil {
		return nil
	}
	var shared []SharedPoint
	for i := 0; i < 6; i++ {
		if n := b.tiles[cell.Neighbor(i)]; n != nil {
			shared = append(shared, SharedPoint{Neighbor: n, Index: i, NeighborIndex: hex.Opposite(i)})
		}
	}
	return shared
}

// AdjacentVertices returns the vertices one edge away from v.
func (b *Board) AdjacentVertices(v VertexID) []VertexID {
	node := b.Vertex(v)
	if node == nil {
		return nil
	}
	adjacent := make([]VertexID, 0, len(node.Edges))
	for _, e := range node.Edges {
		adjacent = append(adjacent, b.edges[e].Other(v))
	}
	return adjacent
}

// TilesAtVertex returns the tiles touching a vertex.
func (b *Board) TilesAtVertex(v VertexID) []*Tile {
	node := b.Vertex(v)
	if node == nil {
		return nil
	}
	tiles := make([]*Tile, 0, len(node.Corners))
	for _, c := range node.Corners {
		tiles = append(tiles, b.tiles[c.Cell])
	}
	return tiles
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v VertexID) VertexID {
	if e.Vertices[0] == v {
		return e.Vertices[1]
	}
	return e.Vertices[0]
}

// Touches returns true if v is an endpoint of e.
func (e *Edge) Touches(v VertexID) bool {
	return e.Vertices[0] == v || e.Vertices[1] == v
}

// LocationOf returns a canonical location for a vertex: the first tile
// corner that names it.
func (v *Vertex) LocationOf() Location {
	c := v.Corners[0]
	return Location{Cell: c.Cell, Slot: SlotVertex, Index: c.Index}
}

// LocationOf returns a canonical location for an edge.
func (e *Edge) LocationOf() Location {
	c := e.Sides[0]
	return Location{Cell: c.Cell, Slot: SlotEdge, Index: c.Index}
}
