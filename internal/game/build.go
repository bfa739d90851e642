package game

import (
	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
)

// BuildSettlement places a settlement for playerID on corner vertex of the
// tile at cell. Setup settlements are free; the second one yields starting
// resources.
func (g *GameState) BuildSettlement(playerID string, cell hex.Cell, vertex int) (*board.Piece, error) {
	if err := g.checkBuildStep(playerID, SetupSettlement); err != nil {
		return nil, err
	}
	p := g.Active()
	if p.SettlementsLeft() <= 0 {
		return nil, ErrNoPiecesLeft
	}
	if !CanPlaceSettlement(g.Board, cell, vertex, g.Players, g.ActivePlayer, g.Phase) {
		return nil, ErrIllegalPlacement
	}
	if g.Phase == PhaseNormal && !p.CanAffordSettlement() {
		return nil, ErrInsufficientResources
	}
	g.beginAction()

	piece := board.NewPiece(board.PieceSettlement, p.ID)
	if err := g.Board.Place(piece, board.At(cell, board.SlotVertex, vertex)); err != nil {
		return nil, ErrIllegalPlacement
	}
	p.SettlementsBuilt++

	if g.Phase == PhaseSetup {
		p.SetupSettlements = append(p.SetupSettlements, piece.ID)
		if len(p.SetupSettlements) == 2 {
			g.grantStartingResources(p, piece)
		}
		g.SetupStep = SetupRoad
	} else {
		p.Resources.Spend(CostSettlement)
	}

	// A new building can cut an opponent's road
	g.RecomputeLongestRoad()
	g.checkWinner()
	return piece, nil
}

// BuildRoad places a road for playerID on side edge of the tile at cell.
func (g *GameState) BuildRoad(playerID string, cell hex.Cell, edge int) (*board.Piece, error) {
	if err := g.checkBuildStep(playerID, SetupRoad); err != nil {
		return nil, err
	}
	p := g.Active()
	if p.RoadsLeft() <= 0 {
		return nil, ErrNoPiecesLeft
	}
	if !CanPlaceRoad(g.Board, cell, edge, g.Players, g.ActivePlayer, g.Phase) {
		return nil, ErrIllegalPlacement
	}
	if g.Phase == PhaseNormal && !p.CanAffordRoad() {
		return nil, ErrInsufficientResources
	}
	g.beginAction()

	piece := board.NewPiece(board.PieceRoad, p.ID)
	if err := g.Board.Place(piece, board.At(cell, board.SlotEdge, edge)); err != nil {
		return nil, ErrIllegalPlacement
	}
	p.RoadsBuilt++

	if g.Phase == PhaseNormal {
		p.Resources.Spend(CostRoad)
	}

	g.RecomputeLongestRoad()
	if g.Phase == PhaseSetup {
		g.advanceSetup()
		return piece, nil
	}
	g.checkWinner()
	return piece, nil
}

// BuildCity upgrades playerID's settlement on corner vertex of the tile at
// cell. The settlement returns to the player's pool.
func (g *GameState) BuildCity(playerID string, cell hex.Cell, vertex int) (*board.Piece, error) {
	if err := g.checkMainStep(playerID); err != nil {
		return nil, err
	}
	p := g.Active()
	if p.CitiesLeft() <= 0 {
		return nil, ErrNoPiecesLeft
	}
	if !CanPlaceCity(g.Board, cell, vertex, g.Players, g.ActivePlayer, g.Phase) {
		return nil, ErrIllegalPlacement
	}
	if !p.CanAffordCity() {
		return nil, ErrInsufficientResources
	}
	g.beginAction()

	loc := board.At(cell, board.SlotVertex, vertex)
	settlement := g.Board.OccupantAt(cell, board.SlotVertex, vertex)
	if err := g.Board.Remove(settlement); err != nil {
		return nil, err
	}
	city := board.NewPiece(board.PieceCity, p.ID)
	if err := g.Board.Place(city, loc); err != nil {
		// Put the settlement back so the board is unchanged
		_ = g.Board.Place(settlement, loc)
		return nil, ErrIllegalPlacement
	}
	p.SettlementsBuilt--
	p.CitiesBuilt++
	p.Resources.Spend(CostCity)

	g.checkWinner()
	return city, nil
}

// checkBuildStep validates turn and step for a settlement or road. During
// setup only the expected piece may be placed.
func (g *GameState) checkBuildStep(playerID string, setupStep SetupStep) error {
	if err := g.checkTurn(playerID); err != nil {
		return err
	}
	if g.Phase == PhaseSetup {
		if g.SetupStep != setupStep {
			return ErrInvalidAction
		}
		return nil
	}
	return g.checkMainStep(playerID)
}
