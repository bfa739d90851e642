package game

import (
	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// RobberRoll is the dice total that activates the robber.
const RobberRoll = 7

// RollDice records the active player's roll. A 7 requires the robber to
// move; any other total produces resources. The produced amounts are
// returned keyed by player ID.
func (g *GameState) RollDice(playerID string, value int) (map[string]resource.Bundle, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	if g.Phase != PhaseNormal {
		return nil, ErrInvalidAction
	}
	if g.DiceRolled {
		return nil, ErrAlreadyRolled
	}
	if g.TurnStep == TurnRobber {
		return nil, ErrRobberRequired
	}
	if value < 2 || value > 12 {
		return nil, ErrInvalidDice
	}
	g.beginAction()

	g.DiceRolled = true
	g.DiceValue = value
	if value == RobberRoll {
		g.TurnStep = TurnRobber
		return nil, nil
	}
	g.TurnStep = TurnMain
	return g.Produce(value), nil
}

// Produce pays out every tile matching value: one resource per adjacent
// settlement and two per city. A tile holding the robber pays nothing.
func (g *GameState) Produce(value int) map[string]resource.Bundle {
	gains := make(map[string]resource.Bundle)
	for _, t := range g.Board.Tiles() {
		if !t.Produces(value) {
			continue
		}
		for i := 0; i < 6; i++ {
			occ := g.Board.OccupantAt(t.Cell, board.SlotVertex, i)
			if occ == nil {
				continue
			}
			amount := 1
			if occ.Kind == board.PieceCity {
				amount = 2
			}
			b := gains[occ.Owner]
			b.Add(t.Resource, amount)
			gains[occ.Owner] = b
		}
	}

	for id, b := range gains {
		if p := g.Player(id); p != nil {
			p.Resources = p.Resources.Plus(b)
		}
	}
	return gains
}

// grantStartingResources gives one of each resource around a settlement.
func (g *GameState) grantStartingResources(p *Player, settlement *board.Piece) {
	v, ok := g.Board.VertexOf(settlement)
	if !ok {
		return
	}
	for _, t := range g.Board.TilesAtVertex(v) {
		if t.Resource.Tradeable() {
			p.Resources.Add(t.Resource, 1)
		}
	}
}

// MoveRobber puts the robber on another tile. It is allowed only after a 7
// or a knight.
func (g *GameState) MoveRobber(playerID string, cell hex.Cell) error {
	if err := g.checkTurn(playerID); err != nil {
		return err
	}
	if g.Phase != PhaseNormal || g.TurnStep != TurnRobber {
		return ErrInvalidAction
	}
	if g.Board.Tile(cell) == nil {
		return ErrInvalidTarget
	}
	loc := board.At(cell, board.SlotCenter, 0)

	robber := g.Board.Robber()
	switch {
	case robber == nil:
		if err := g.Board.Place(board.NewPiece(board.PieceRobber, ""), loc); err != nil {
			return ErrInvalidTarget
		}
	default:
		if current, _ := robber.Location(); current.Cell == cell {
			return ErrInvalidTarget
		}
		if err := g.Board.Move(robber, loc); err != nil {
			return ErrInvalidTarget
		}
	}
	g.beginAction()

	if g.DiceRolled {
		g.TurnStep = TurnMain
	} else {
		g.TurnStep = TurnRoll
	}
	return nil
}

// PlayKnight pays for a knight, counts it for the active player and
// requires a robber move. It may be played before or after rolling, once
// per turn.
func (g *GameState) PlayKnight(playerID string) error {
	if err := g.checkTurn(playerID); err != nil {
		return err
	}
	if g.Phase != PhaseNormal {
		return ErrInvalidAction
	}
	if g.TurnStep == TurnRobber {
		return ErrRobberRequired
	}
	if g.KnightPlayed {
		return ErrKnightAlreadyPlayed
	}
	p := g.Active()
	if !p.Resources.Spend(CostKnight) {
		return ErrInsufficientResources
	}
	g.beginAction()

	g.KnightPlayed = true
	p.KnightsPlayed++
	g.BonusEvents = append(g.BonusEvents, AwardLargestArmy(g.Players)...)
	g.TurnStep = TurnRobber
	g.checkWinner()
	return nil
}

// BankTrade exchanges resources with the bank at the player's best rates.
// Nothing changes when the trade cannot be matched.
func (g *GameState) BankTrade(playerID string, request, offer resource.Bundle) (TradeResult, error) {
	if err := g.checkMainStep(playerID); err != nil {
		return TradeResult{Leftovers: offer}, err
	}
	p := g.Active()
	result := EvaluateTrade(request, offer, PlayerDeals(g.Board, p.ID))
	if !result.Valid {
		return result, ErrInvalidTrade
	}
	if err := ApplyTrade(p, result); err != nil {
		return TradeResult{Leftovers: offer}, err
	}
	g.beginAction()
	return result, nil
}
