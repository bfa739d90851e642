package board

import (
	"fmt"

	"github.com/google/uuid"

	"hex-settlers/internal/hex"
)

// PieceKind identifies what a placeable unit is.
type PieceKind int

const (
	PieceRoad PieceKind = iota
	PieceSettlement
	PieceCity
	PieceRobber
)

// String returns the piece name.
func (k PieceKind) String() string {
	switch k {
	case PieceRoad:
		return "road"
	case PieceSettlement:
		return "settlement"
	case PieceCity:
		return "city"
	case PieceRobber:
		return "robber"
	default:
		return "unknown"
	}
}

// ParsePieceKind converts a piece name back into a PieceKind.
func ParsePieceKind(s string) (PieceKind, error) {
	switch s {
	case "road":
		return PieceRoad, nil
	case "settlement":
		return PieceSettlement, nil
	case "city":
		return PieceCity, nil
	case "robber":
		return PieceRobber, nil
	}
	return PieceRoad, fmt.Errorf("unknown piece kind %q", s)
}

// Slot returns the kind of placement point the piece occupies.
func (k PieceKind) Slot() Slot {
	switch k {
	case PieceRoad:
		return SlotEdge
	case PieceSettlement, PieceCity:
		return SlotVertex
	default:
		return SlotCenter
	}
}

// Slot identifies a placement point type on a tile.
type Slot int

const (
	SlotVertex Slot = iota
	SlotEdge
	SlotCenter
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotVertex:
		return "vertex"
	case SlotEdge:
		return "edge"
	case SlotCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Location addresses a placement point through one of the tiles touching it.
type Location struct {
	Cell  hex.Cell `json:"cell"`
	Slot  Slot     `json:"slot"`
	Index int      `json:"index"`
}

// At builds a location.
func At(cell hex.Cell, slot Slot, index int) Location {
	return Location{Cell: cell, Slot: slot, Index: index}
}

// String returns a compact description like "(0,1,-1) vertex 3".
func (l Location) String() string {
	return fmt.Sprintf("%s %s %d", l.Cell, l.Slot, l.Index)
}

// Piece is a road, settlement, city or the robber.
type Piece struct {
	ID    string    `json:"id"`
	Kind  PieceKind `json:"kind"`
	Owner string    `json:"owner,omitempty"` // Player ID, empty for the robber

	loc    Location
	placed bool
}

// NewPiece creates an unplaced piece.
func NewPiece(kind PieceKind, owner string) *Piece {
	return &Piece{
		ID:    uuid.New().String(),
		Kind:  kind,
		Owner: owner,
	}
}

// Location returns where the piece is attached, and false if it is in the
// owner's pool.
func (p *Piece) Location() (Location, bool) {
	return p.loc, p.placed
}

// Placed returns true if the piece is on the board.
func (p *Piece) Placed() bool {
	return p.placed
}

// IsBuilding returns true for settlements and cities.
func (p *Piece) IsBuilding() bool {
	return p.Kind == PieceSettlement || p.Kind == PieceCity
}
