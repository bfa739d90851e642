package game

import (
	"fmt"
	"sort"

	"hex-settlers/internal/board"
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// PlayerRecord is the saved form of a player.
type PlayerRecord struct {
	ID        string `json:"id"`
	TurnOrder int    `json:"turnOrder"`
	DiceRoll  int    `json:"diceRoll"`
	Lumber    int    `json:"lumber"`
	Grain     int    `json:"grain"`
	Wool      int    `json:"wool"`
	Brick     int    `json:"brick"`
	Ore       int    `json:"ore"`

	Name             string      `json:"name,omitempty"`
	Color            PlayerColor `json:"color,omitempty"`
	KnightsPlayed    int         `json:"knightsPlayed,omitempty"`
	LongestRoad      bool        `json:"longestRoad,omitempty"`
	LargestArmy      bool        `json:"largestArmy,omitempty"`
	SetupSettlements []string    `json:"setupSettlements,omitempty"`
}

// GameRecord is the saved form of the global game state.
type GameRecord struct {
	IsNetwork         bool           `json:"isNetwork"`
	Players           []PlayerRecord `json:"players"`
	LocalPlayerID     string         `json:"localPlayerID"`
	LocalPlayerIndex  int            `json:"localPlayerIndex"`
	ActivePlayerID    string         `json:"activePlayerID"`
	ActivePlayerIndex int            `json:"activePlayerIndex"`
	GameState         string         `json:"gameState"`
	NewGameFlowState  string         `json:"newGameFlowState"`
	TurnState         string         `json:"turnState"`
	DiceRolled        bool           `json:"diceRolled"`
	DiceVal           int            `json:"diceVal"`

	ID            string `json:"id,omitempty"`
	MapID         string `json:"mapId,omitempty"`
	Round         int    `json:"round,omitempty"`
	SetupTurn     int    `json:"setupTurn,omitempty"`
	VictoryPoints int    `json:"victoryPoints,omitempty"`
	RoadMode      string `json:"roadMode,omitempty"`
	WinnerID      string `json:"winnerId,omitempty"`
	KnightPlayed  bool   `json:"knightPlayed,omitempty"`
}

// PieceRecord is a placed piece, addressed through the tile that holds it.
type PieceRecord struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Owner string `json:"owner,omitempty"`
	Index int    `json:"index"`
}

// TileRecord is the per-tile metadata and the pieces placed through it.
type TileRecord struct {
	Cell     hex.Cell           `json:"cell"`
	Resource resource.Kind      `json:"resource"`
	Dice     int                `json:"dice"`
	Ports    map[int]board.Port `json:"ports,omitempty"`
	Pieces   []PieceRecord      `json:"pieces,omitempty"`
}

// SaveData is everything needed to resume a game on a freshly built board.
type SaveData struct {
	Game  GameRecord   `json:"game"`
	Tiles []TileRecord `json:"tiles"`
}

// Snapshot captures the game for saving.
func Snapshot(g *GameState) SaveData {
	rec := GameRecord{
		IsNetwork:         g.Settings.IsNetwork,
		LocalPlayerID:     g.Settings.LocalPlayerID,
		LocalPlayerIndex:  -1,
		ActivePlayerID:    g.ActivePlayerID(),
		ActivePlayerIndex: g.ActivePlayer,
		GameState:         g.Phase.String(),
		NewGameFlowState:  g.SetupStep.String(),
		TurnState:         g.TurnStep.String(),
		DiceRolled:        g.DiceRolled,
		DiceVal:           g.DiceValue,
		ID:                g.ID,
		MapID:             g.Settings.MapID,
		Round:             g.Round,
		SetupTurn:         g.SetupTurn,
		VictoryPoints:     g.Settings.VictoryPoints,
		RoadMode:          g.Settings.RoadMode.String(),
		WinnerID:          g.WinnerID,
		KnightPlayed:      g.KnightPlayed,
	}
	for i, p := range g.Players {
		if p.ID == g.Settings.LocalPlayerID {
			rec.LocalPlayerIndex = i
		}
		rec.Players = append(rec.Players, PlayerRecord{
			ID:               p.ID,
			TurnOrder:        p.TurnOrder,
			DiceRoll:         p.DiceRoll,
			Lumber:           p.Resources.Lumber,
			Grain:            p.Resources.Grain,
			Wool:             p.Resources.Wool,
			Brick:            p.Resources.Brick,
			Ore:              p.Resources.Ore,
			Name:             p.Name,
			Color:            p.Color,
			KnightsPlayed:    p.KnightsPlayed,
			LongestRoad:      p.LongestRoad,
			LargestArmy:      p.LargestArmy,
			SetupSettlements: append([]string(nil), p.SetupSettlements...),
		})
	}

	tiles := make(map[hex.Cell]*TileRecord)
	var cells []hex.Cell
	for _, t := range g.Board.Tiles() {
		tr := &TileRecord{Cell: t.Cell, Resource: t.Resource, Dice: t.Dice}
		if len(t.Ports) > 0 {
			tr.Ports = make(map[int]board.Port, len(t.Ports))
			for i, port := range t.Ports {
				tr.Ports[i] = port
			}
		}
		tiles[t.Cell] = tr
		cells = append(cells, t.Cell)
	}
	for _, p := range g.Board.Pieces() {
		loc, _ := p.Location()
		tr := tiles[loc.Cell]
		tr.Pieces = append(tr.Pieces, PieceRecord{
			ID:    p.ID,
			Kind:  p.Kind.String(),
			Owner: p.Owner,
			Index: loc.Index,
		})
	}

	data := SaveData{Game: rec}
	for _, c := range cells {
		data.Tiles = append(data.Tiles, *tiles[c])
	}
	return data
}

// Restore rebuilds a game from saved data onto a board freshly built from
// the same map. Tile metadata in the save overrides the map's.
func Restore(b *board.Board, data SaveData) (*GameState, error) {
	rec := data.Game

	phase, err := ParsePhase(rec.GameState)
	if err != nil {
		return nil, err
	}
	setupStep, err := ParseSetupStep(rec.NewGameFlowState)
	if err != nil {
		return nil, err
	}
	turnStep, err := ParseTurnStep(rec.TurnState)
	if err != nil {
		return nil, err
	}
	roadMode, err := ParseRoadMode(rec.RoadMode)
	if err != nil {
		return nil, err
	}

	g := &GameState{
		ID: rec.ID,
		Settings: Settings{
			MapID:         rec.MapID,
			VictoryPoints: rec.VictoryPoints,
			RoadMode:      roadMode,
			IsNetwork:     rec.IsNetwork,
			LocalPlayerID: rec.LocalPlayerID,
		},
		Board:        b,
		Round:        rec.Round,
		Phase:        phase,
		SetupStep:    setupStep,
		SetupTurn:    rec.SetupTurn,
		TurnStep:     turnStep,
		ActivePlayer: rec.ActivePlayerIndex,
		DiceRolled:   rec.DiceRolled,
		DiceValue:    rec.DiceVal,
		WinnerID:     rec.WinnerID,
		KnightPlayed: rec.KnightPlayed,
	}
	if g.Settings.VictoryPoints <= 0 {
		g.Settings.VictoryPoints = DefaultSettings().VictoryPoints
	}

	players := append([]PlayerRecord(nil), rec.Players...)
	sort.SliceStable(players, func(i, j int) bool { return players[i].TurnOrder < players[j].TurnOrder })
	for _, pr := range players {
		p := NewPlayer(pr.ID, pr.Name, pr.Color)
		p.TurnOrder = pr.TurnOrder
		p.DiceRoll = pr.DiceRoll
		p.Resources = resource.Bundle{Lumber: pr.Lumber, Grain: pr.Grain, Wool: pr.Wool, Brick: pr.Brick, Ore: pr.Ore}
		p.KnightsPlayed = pr.KnightsPlayed
		p.LongestRoad = pr.LongestRoad
		p.LargestArmy = pr.LargestArmy
		p.SetupSettlements = append([]string(nil), pr.SetupSettlements...)
		g.Players = append(g.Players, p)
	}
	if len(g.Players) < MinPlayers || len(g.Players) > MaxPlayers {
		return nil, ErrPlayerCount
	}
	if rec.ActivePlayerID != "" {
		for i, p := range g.Players {
			if p.ID == rec.ActivePlayerID {
				g.ActivePlayer = i
			}
		}
	}
	if playerAt(g.Players, g.ActivePlayer) == nil {
		return nil, fmt.Errorf("active player index %d out of range", g.ActivePlayer)
	}

	if err := restoreTiles(b, data.Tiles); err != nil {
		return nil, err
	}

	for _, piece := range b.Pieces() {
		p := g.Player(piece.Owner)
		if p == nil {
			continue
		}
		switch piece.Kind {
		case board.PieceRoad:
			p.RoadsBuilt++
		case board.PieceSettlement:
			p.SettlementsBuilt++
		case board.PieceCity:
			p.CitiesBuilt++
		}
	}
	for _, p := range g.Players {
		p.RoadLength = LongestRoad(b, p.ID, roadMode)
	}
	return g, nil
}

func restoreTiles(b *board.Board, tiles []TileRecord) error {
	for _, p := range b.Pieces() {
		if err := b.Remove(p); err != nil {
			return err
		}
	}
	for _, tr := range tiles {
		t := b.Tile(tr.Cell)
		if t == nil {
			return fmt.Errorf("saved tile %s: %w", tr.Cell, board.ErrNoTile)
		}
		t.Resource = tr.Resource
		t.Dice = tr.Dice
		t.Ports = nil
		for i, port := range tr.Ports {
			t.WithPort(i, port)
		}
	}
	for _, tr := range tiles {
		for _, pr := range tr.Pieces {
			kind, err := board.ParsePieceKind(pr.Kind)
			if err != nil {
				return err
			}
			piece := board.NewPiece(kind, pr.Owner)
			if pr.ID != "" {
				piece.ID = pr.ID
			}
			if err := b.Place(piece, board.At(tr.Cell, kind.Slot(), pr.Index)); err != nil {
				return fmt.Errorf("restore %s at %s: %w", kind, tr.Cell, err)
			}
		}
	}
	return nil
}

// BoardFor builds a board holding exactly the saved tiles, for games whose
// map cannot be rebuilt from its ID. Restore fills in the tile metadata.
func BoardFor(data SaveData) (*board.Board, error) {
	tiles := make([]*board.Tile, 0, len(data.Tiles))
	for _, tr := range data.Tiles {
		tiles = append(tiles, board.NewTile(tr.Cell, tr.Resource, tr.Dice))
	}
	return board.NewFromTiles(tiles...)
}
