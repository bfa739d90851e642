package board

import "errors"

// Placement errors. All of them are routine rejections of an interactive
// placement attempt.
var (
	ErrNoTile        = errors.New("no tile at cell")
	ErrTileExists    = errors.New("tile already exists at cell")
	ErrInvalidCell   = errors.New("cell breaks q+r+s=0")
	ErrInvalidIndex  = errors.New("placement index out of range")
	ErrSlotMismatch  = errors.New("piece cannot occupy this slot type")
	ErrSlotOccupied  = errors.New("slot already occupied")
	ErrAlreadyPlaced = errors.New("piece is already on the board")
	ErrNotPlaced     = errors.New("piece is not on the board")
)
