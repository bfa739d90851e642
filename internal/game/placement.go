package game

import (
	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
)

// CanPlaceSettlement reports whether the acting player may put a
// settlement on corner vertex of the tile at cell. It never mutates and
// returns false for unknown tiles, out-of-range indices or players.
//
// During setup the vertex and every edge touching it must be empty. In
// normal play the vertex must touch one of the player's roads. In both
// phases no neighboring vertex, on this tile or any tile sharing the
// point, may hold a building.
func CanPlaceSettlement(b *board.Board, cell hex.Cell, vertex int, players []*Player, acting int, phase Phase) bool {
	p := playerAt(players, acting)
	if p == nil || p.SettlementsLeft() <= 0 {
		return false
	}
	v := b.VertexAt(cell, vertex)
	if v == nil || v.Occupant != nil {
		return false
	}

	switch phase {
	case PhaseSetup:
		// Next in order must be a settlement, not the road that follows one
		if len(p.SetupSettlements) != p.RoadsBuilt || len(p.SetupSettlements) >= 2 {
			return false
		}
		for _, e := range v.Edges {
			if b.Edge(e).Occupant != nil {
				return false
			}
		}
	case PhaseNormal:
		if !touchesOwnRoad(b, v, p.ID) {
			return false
		}
	default:
		return false
	}

	return distanceRuleHolds(b, v.ID)
}

// CanPlaceRoad reports whether the acting player may put a road on side
// edge of the tile at cell.
//
// During setup the road must touch the settlement whose setup sequence
// number equals the number of roads the player already has. Outside setup
// it must touch one of the player's buildings, or one of the player's
// roads through a vertex that no other player has built on.
func CanPlaceRoad(b *board.Board, cell hex.Cell, edge int, players []*Player, acting int, phase Phase) bool {
	p := playerAt(players, acting)
	if p == nil || p.RoadsLeft() <= 0 {
		return false
	}
	e := b.EdgeAt(cell, edge)
	if e == nil || e.Occupant != nil {
		return false
	}

	switch phase {
	case PhaseSetup:
		if p.RoadsBuilt >= len(p.SetupSettlements) {
			return false
		}
		s := b.Piece(p.SetupSettlements[p.RoadsBuilt])
		if s == nil {
			return false
		}
		v, ok := b.VertexOf(s)
		return ok && e.Touches(v)
	case PhaseNormal:
		return connectsToNetwork(b, e, p.ID)
	default:
		return false
	}
}

// CanPlaceCity reports whether the acting player may upgrade the
// settlement on corner vertex of the tile at cell to a city.
func CanPlaceCity(b *board.Board, cell hex.Cell, vertex int, players []*Player, acting int, phase Phase) bool {
	p := playerAt(players, acting)
	if p == nil || p.CitiesLeft() <= 0 || phase != PhaseNormal {
		return false
	}
	v := b.VertexAt(cell, vertex)
	if v == nil || v.Occupant == nil {
		return false
	}
	return v.Occupant.Kind == board.PieceSettlement && v.Occupant.Owner == p.ID
}

// distanceRuleHolds checks that no vertex one edge away holds a building.
// Vertex adjacency comes from the shared edge arena, so vertices reached
// through a neighboring tile are included.
func distanceRuleHolds(b *board.Board, v board.VertexID) bool {
	for _, n := range b.AdjacentVertices(v) {
		if occ := b.Vertex(n).Occupant; occ != nil && occ.IsBuilding() {
			return false
		}
	}
	return true
}

// touchesOwnRoad checks whether any edge meeting at v carries the player's road.
func touchesOwnRoad(b *board.Board, v *board.Vertex, playerID string) bool {
	for _, e := range v.Edges {
		if ownedRoad(b.Edge(e), playerID) {
			return true
		}
	}
	return false
}

// connectsToNetwork checks whether edge e joins the player's existing
// buildings or roads. Another player's building on an endpoint cuts the
// connection through that endpoint.
func connectsToNetwork(b *board.Board, e *board.Edge, playerID string) bool {
	for _, vid := range e.Vertices {
		v := b.Vertex(vid)
		if v.Occupant != nil {
			if v.Occupant.Owner == playerID {
				return true
			}
			continue
		}
		for _, other := range v.Edges {
			if other != e.ID && ownedRoad(b.Edge(other), playerID) {
				return true
			}
		}
	}
	return false
}

func ownedRoad(e *board.Edge, playerID string) bool {
	return e.Occupant != nil && e.Occupant.Kind == board.PieceRoad && e.Occupant.Owner == playerID
}

// passable reports whether a road chain may continue through v.
func passable(b *board.Board, v board.VertexID, playerID string) bool {
	occ := b.Vertex(v).Occupant
	return occ == nil || occ.Owner == playerID
}
