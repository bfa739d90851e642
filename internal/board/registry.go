package board

import "sort"

// Place attaches a piece to a location. The target is validated before
// anything is mutated.
func (b *Board) Place(p *Piece, loc Location) error {
	if p.placed {
		return ErrAlreadyPlaced
	}
	if err := b.CheckTarget(p, loc); err != nil {
		return err
	}
	b.attach(p, loc)
	b.verify()
	return nil
}

// Remove returns a piece to its owner's pool.
func (b *Board) Remove(p *Piece) error {
	if !p.placed {
		return ErrNotPlaced
	}
	b.detach(p)
	b.verify()
	return nil
}

// Move relocates a placed piece. A rejected target leaves the piece where
// it was.
func (b *Board) Move(p *Piece, loc Location) error {
	if !p.placed {
		return ErrNotPlaced
	}
	if err := b.CheckTarget(p, loc); err != nil {
		return err
	}
	b.detach(p)
	b.attach(p, loc)
	b.verify()
	return nil
}

// CheckTarget reports why a piece cannot go to loc, or nil if the slot is
// free (or already holds p itself).
func (b *Board) CheckTarget(p *Piece, loc Location) error {
	t := b.tiles[loc.Cell]
	if t == nil {
		return ErrNoTile
	}
	if loc.Slot != p.Kind.Slot() {
		return ErrSlotMismatch
	}
	if loc.Slot == SlotCenter {
		if loc.Index != 0 {
			return ErrInvalidIndex
		}
	} else if !validIndex(loc.Index) {
		return ErrInvalidIndex
	}
	if occ := b.OccupantAt(loc.Cell, loc.Slot, loc.Index); occ != nil && occ != p {
		return ErrSlotOccupied
	}
	return nil
}

func (b *Board) attach(p *Piece, loc Location) {
	t := b.tiles[loc.Cell]
	switch loc.Slot {
	case SlotVertex:
		b.vertices[t.vertices[loc.Index]].Occupant = p
	case SlotEdge:
		b.edges[t.edges[loc.Index]].Occupant = p
	case SlotCenter:
		t.robber = p
	}
	p.loc = loc
	p.placed = true
	b.pieces[p.ID] = p
}

func (b *Board) detach(p *Piece) {
	if t := b.tiles[p.loc.Cell]; t != nil {
		switch p.loc.Slot {
		case SlotVertex:
			if v := &b.vertices[t.vertices[p.loc.Index]]; v.Occupant == p {
				v.Occupant = nil
			}
		case SlotEdge:
			if e := &b.edges[t.edges[p.loc.Index]]; e.Occupant == p {
				e.Occupant = nil
			}
		case SlotCenter:
			if t.robber == p {
				t.robber = nil
			}
		}
	}
	p.placed = false
	delete(b.pieces, p.ID)
}

// VertexOf returns the vertex node a placed settlement or city sits on.
func (b *Board) VertexOf(p *Piece) (VertexID, bool) {
	if !p.placed || p.loc.Slot != SlotVertex {
		return 0, false
	}
	return b.tiles[p.loc.Cell].vertices[p.loc.Index], true
}

// EdgeOf returns the edge node a placed road sits on.
func (b *Board) EdgeOf(p *Piece) (EdgeID, bool) {
	if !p.placed || p.loc.Slot != SlotEdge {
		return 0, false
	}
	return b.tiles[p.loc.Cell].edges[p.loc.Index], true
}

// Piece returns a placed piece by ID, or nil.
func (b *Board) Piece(id string) *Piece {
	return b.pieces[id]
}

// Pieces returns every placed piece ordered by ID.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].ID < pieces[j].ID })
	return pieces
}

// PiecesOf returns the placed pieces of one kind owned by a player.
func (b *Board) PiecesOf(owner string, kind PieceKind) []*Piece {
	var pieces []*Piece
	for _, p := range b.Pieces() {
		if p.Owner == owner && p.Kind == kind {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Robber returns the robber piece if it is on the board.
func (b *Board) Robber() *Piece {
	for _, p := range b.pieces {
		if p.Kind == PieceRobber {
			return p
		}
	}
	return nil
}
