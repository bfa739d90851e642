// Package game contains the rules of a hex-settlers game: placement
// legality, production, longest road, trading and turn flow. It is
// single-threaded; callers serialize access (see internal/engine).
package game

import (
	"sort"

	"github.com/google/uuid"

	"hex-settlers/internal/board"
	"hex-settlers/internal/resource"
)

// Player count limits.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// GameState represents the complete state of a game.
type GameState struct {
	ID       string       `json:"id"`
	Settings Settings     `json:"settings"`
	Board    *board.Board `json:"-"`
	Players  []*Player    `json:"players"` // In turn order
	Round    int          `json:"round"`

	Phase        Phase     `json:"phase"`
	SetupStep    SetupStep `json:"setupStep"`
	SetupTurn    int       `json:"setupTurn"` // Position in the snake draft
	TurnStep     TurnStep  `json:"turnStep"`
	ActivePlayer int       `json:"activePlayer"`
	DiceRolled   bool      `json:"diceRolled"`
	DiceValue    int       `json:"diceValue"`
	KnightPlayed bool      `json:"knightPlayed"` // Limits knights to one per turn
	WinnerID     string    `json:"winnerId,omitempty"`

	BonusEvents []BonusEvent `json:"bonusEvents,omitempty"` // Bonus changes caused by the last action
}

// Settings contains the configurable game parameters.
type Settings struct {
	MapID         string   `json:"mapId"`
	VictoryPoints int      `json:"victoryPoints"`
	RoadMode      RoadMode `json:"roadMode"`
	IsNetwork     bool     `json:"isNetwork"`
	LocalPlayerID string   `json:"localPlayerId,omitempty"`
}

// DefaultSettings returns the standard rules.
func DefaultSettings() Settings {
	return Settings{
		MapID:         "standard",
		VictoryPoints: 10,
		RoadMode:      RoadExhaustive,
	}
}

// NewGame creates a game on a built board. Players are ordered by their
// DiceRoll, highest first, and the robber starts on the first desert.
func NewGame(settings Settings, b *board.Board, players []*Player) (*GameState, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, ErrPlayerCount
	}
	if settings.VictoryPoints <= 0 {
		settings.VictoryPoints = DefaultSettings().VictoryPoints
	}

	ordered := append([]*Player(nil), players...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DiceRoll > ordered[j].DiceRoll
	})
	for i, p := range ordered {
		p.TurnOrder = i
	}

	g := &GameState{
		ID:       uuid.New().String(),
		Settings: settings,
		Board:    b,
		Players:  ordered,
		Phase:    PhaseSetup,
	}

	if b.Robber() == nil {
		for _, t := range b.Tiles() {
			if t.Resource == resource.None {
				if err := b.Place(board.NewPiece(board.PieceRobber, ""), board.At(t.Cell, board.SlotCenter, 0)); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	g.ActivePlayer = setupOrder(len(ordered))[0]
	return g, nil
}

// Player returns a player by ID, or nil.
func (g *GameState) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Active returns the player whose turn it is.
func (g *GameState) Active() *Player {
	return playerAt(g.Players, g.ActivePlayer)
}

// ActivePlayerID returns the ID of the player whose turn it is.
func (g *GameState) ActivePlayerID() string {
	if p := g.Active(); p != nil {
		return p.ID
	}
	return ""
}

// IsGameOver checks if the game has ended.
func (g *GameState) IsGameOver() bool {
	return g.Phase == PhaseFinished
}

// Winner returns the winning player, or nil if the game is not over.
func (g *GameState) Winner() *Player {
	if !g.IsGameOver() {
		return nil
	}
	return g.Player(g.WinnerID)
}

// checkTurn validates that the game is running and it is playerID's turn.
func (g *GameState) checkTurn(playerID string) error {
	if g.Phase == PhaseFinished {
		return ErrGameOver
	}
	if g.ActivePlayerID() != playerID {
		return ErrNotYourTurn
	}
	return nil
}

// checkMainStep validates that playerID may build or trade now.
func (g *GameState) checkMainStep(playerID string) error {
	if err := g.checkTurn(playerID); err != nil {
		return err
	}
	if g.Phase != PhaseNormal {
		return ErrInvalidAction
	}
	switch g.TurnStep {
	case TurnRoll:
		return ErrDiceNotRolled
	case TurnRobber:
		return ErrRobberRequired
	}
	return nil
}

// beginAction clears per-action output.
func (g *GameState) beginAction() {
	g.BonusEvents = nil
}

// RecomputeLongestRoad measures every player's road network and moves the
// longest road bonus. It must run after the placement that changed the
// network has been committed to the board.
func (g *GameState) RecomputeLongestRoad() []BonusEvent {
	lengths := make([]int, len(g.Players))
	for i, p := range g.Players {
		p.RoadLength = LongestRoad(g.Board, p.ID, g.Settings.RoadMode)
		lengths[i] = p.RoadLength
	}
	events := AwardLongestRoad(g.Players, lengths)
	g.BonusEvents = append(g.BonusEvents, events...)
	return events
}

// checkWinner ends the game when the active player reaches the target.
// Points are only counted on the owner's turn.
func (g *GameState) checkWinner() {
	p := g.Active()
	if p == nil || g.Phase != PhaseNormal {
		return
	}
	if p.VictoryPoints() >= g.Settings.VictoryPoints {
		g.Phase = PhaseFinished
		g.WinnerID = p.ID
	}
}

// advanceSetup moves the snake draft to the next placement, or starts
// normal play when every player has placed twice.
func (g *GameState) advanceSetup() {
	order := setupOrder(len(g.Players))
	g.SetupTurn++
	if g.SetupTurn >= len(order) {
		g.Phase = PhaseNormal
		g.SetupStep = SetupDone
		g.TurnStep = TurnRoll
		g.ActivePlayer = 0
		g.Round = 1
		return
	}
	g.SetupStep = SetupSettlement
	g.ActivePlayer = order[g.SetupTurn]
}

// EndTurn passes play to the next player.
func (g *GameState) EndTurn(playerID string) error {
	if err := g.checkMainStep(playerID); err != nil {
		return err
	}
	g.beginAction()

	g.ActivePlayer = (g.ActivePlayer + 1) % len(g.Players)
	if g.ActivePlayer == 0 {
		g.Round++
	}
	g.TurnStep = TurnRoll
	g.DiceRolled = false
	g.DiceValue = 0
	g.KnightPlayed = false
	return nil
}
