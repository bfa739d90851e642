package game

import "errors"

// Game errors
var (
	ErrNotYourTurn           = errors.New("not your turn")
	ErrInvalidAction         = errors.New("invalid action for current phase")
	ErrInvalidTarget         = errors.New("invalid target")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrNoPiecesLeft          = errors.New("no pieces of that kind left")
	ErrIllegalPlacement      = errors.New("placement breaks the building rules")
	ErrDiceNotRolled         = errors.New("dice have not been rolled this turn")
	ErrAlreadyRolled         = errors.New("dice already rolled this turn")
	ErrInvalidDice           = errors.New("dice value must be between 2 and 12")
	ErrRobberRequired        = errors.New("robber must be moved first")
	ErrKnightAlreadyPlayed   = errors.New("a knight was already played this turn")
	ErrInvalidTrade          = errors.New("trade cannot be matched")
	ErrGameOver              = errors.New("game is over")
	ErrPlayerCount           = errors.New("need between 2 and 4 players")
)
