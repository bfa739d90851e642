package board

import (
	"fmt"

	"hex-settlers/internal/hex"
)

// CheckInvariants verifies that every tile's view of a shared point agrees
// with its neighbors' views and that every placed piece is reachable from
// its recorded location. A non-nil result means the arena was built or
// mutated incorrectly.
func (b *Board) CheckInvariants() error {
	for cell, t := range b.tiles {
		for i := 0; i < 6; i++ {
			if n := b.tiles[cell.Neighbor(i)]; n != nil {
				if t.edges[i] != n.edges[hex.Opposite(i)] {
					return fmt.Errorf("edge %d of %s disagrees with edge %d of %s", i, cell, hex.Opposite(i), n.Cell)
				}
				if t.vertices[i] != n.vertices[hex.Wrap(i+2)] {
					return fmt.Errorf("vertex %d of %s disagrees with vertex %d of %s", i, cell, hex.Wrap(i+2), n.Cell)
				}
			}
			if n := b.tiles[cell.Neighbor(i+1)]; n != nil {
				if t.vertices[i] != n.vertices[hex.Wrap(i+4)] {
					return fmt.Errorf("vertex %d of %s disagrees with vertex %d of %s", i, cell, hex.Wrap(i+4), n.Cell)
				}
			}
		}
	}

	for _, v := range b.vertices {
		for _, c := range v.Corners {
			if b.tiles[c.Cell].vertices[c.Index] != v.ID {
				return fmt.Errorf("vertex %d lists corner %s/%d that points elsewhere", v.ID, c.Cell, c.Index)
			}
		}
		if v.Occupant != nil && !b.at(v.Occupant, SlotVertex, int(v.ID)) {
			return fmt.Errorf("vertex %d holds %s %s recorded elsewhere", v.ID, v.Occupant.Kind, v.Occupant.ID)
		}
	}
	for _, e := range b.edges {
		for _, c := range e.Sides {
			if b.tiles[c.Cell].edges[c.Index] != e.ID {
				return fmt.Errorf("edge %d lists side %s/%d that points elsewhere", e.ID, c.Cell, c.Index)
			}
		}
		if e.Occupant != nil && !b.at(e.Occupant, SlotEdge, int(e.ID)) {
			return fmt.Errorf("edge %d holds %s %s recorded elsewhere", e.ID, e.Occupant.Kind, e.Occupant.ID)
		}
	}

	for id, p := range b.pieces {
		if !p.placed {
			return fmt.Errorf("piece %s is registered but not placed", id)
		}
		if b.OccupantAt(p.loc.Cell, p.loc.Slot, p.loc.Index) != p {
			return fmt.Errorf("piece %s is not found at %s", id, p.loc)
		}
	}
	return nil
}

// at reports whether a placed piece's recorded location resolves to node.
func (b *Board) at(p *Piece, slot Slot, node int) bool {
	if !p.placed || p.loc.Slot != slot {
		return false
	}
	t := b.tiles[p.loc.Cell]
	if t == nil {
		return false
	}
	if slot == SlotVertex {
		return int(t.vertices[p.loc.Index]) == node
	}
	return int(t.edges[p.loc.Index]) == node
}

// verify panics on a broken invariant in debug builds.
func (b *Board) verify() {
	if !debugChecks {
		return
	}
	if err := b.CheckInvariants(); err != nil {
		panic("board: " + err.Error())
	}
}
