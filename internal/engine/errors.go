package engine

import (
	"errors"
	"fmt"

	"hex-settlers/internal/board"
	"hex-settlers/internal/game"
	"hex-settlers/internal/protocol"
)

// errBadPayload marks actions whose payload could not be decoded.
var errBadPayload = errors.New("malformed payload")

func badPayload(err error) error {
	return fmt.Errorf("%w: %v", errBadPayload, err)
}

// CodeFor maps an action error to its wire code.
func CodeFor(err error) protocol.ErrorCode {
	switch {
	case errors.Is(err, errBadPayload):
		return protocol.ErrCodeBadPayload
	case errors.Is(err, game.ErrNotYourTurn):
		return protocol.ErrCodeNotYourTurn
	case errors.Is(err, game.ErrGameOver):
		return protocol.ErrCodeGameOver
	case errors.Is(err, game.ErrRobberRequired):
		return protocol.ErrCodeRobberRequired
	case errors.Is(err, game.ErrInsufficientResources):
		return protocol.ErrCodeInsufficientResources
	case errors.Is(err, game.ErrNoPiecesLeft):
		return protocol.ErrCodeNoPiecesLeft
	case errors.Is(err, game.ErrIllegalPlacement):
		return protocol.ErrCodeIllegalPlacement
	case errors.Is(err, game.ErrInvalidTrade):
		return protocol.ErrCodeInvalidTrade
	case errors.Is(err, game.ErrInvalidTarget),
		errors.Is(err, board.ErrNoTile),
		errors.Is(err, game.ErrInvalidDice):
		return protocol.ErrCodeInvalidTarget
	case errors.Is(err, game.ErrInvalidAction),
		errors.Is(err, game.ErrDiceNotRolled),
		errors.Is(err, game.ErrAlreadyRolled),
		errors.Is(err, game.ErrKnightAlreadyPlayed):
		return protocol.ErrCodeInvalidAction
	}
	return protocol.ErrCodeInternalError
}
