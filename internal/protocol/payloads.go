package protocol

import (
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// ==================== Action Payloads ====================

// PlacementPayload addresses a corner or side of a tile. It is the payload
// of build_road, build_settlement and build_city.
type PlacementPayload struct {
	Cell  hex.Cell `json:"cell"`
	Index int      `json:"index"`
}

// RollDicePayload carries the dice total. Dice are rolled by the caller so
// replaying the action log is deterministic.
type RollDicePayload struct {
	Value int `json:"value"`
}

// MoveRobberPayload names the robber's new tile.
type MoveRobberPayload struct {
	Cell hex.Cell `json:"cell"`
}

// TradePayload is a bank or port trade.
type TradePayload struct {
	Request resource.Bundle `json:"request"`
	Offer   resource.Bundle `json:"offer"`
}

// PlayerTradePayload is a direct trade with another player.
type PlayerTradePayload struct {
	ToPlayerID string          `json:"to_player_id"`
	Offer      resource.Bundle `json:"offer"`
	Request    resource.Bundle `json:"request"`
}

// ==================== Result Payloads ====================

// BonusPayload reports a bonus changing hands.
type BonusPayload struct {
	Bonus    string `json:"bonus"`
	PlayerID string `json:"player_id"`
	Gained   bool   `json:"gained"`
}

// ActionResultPayload is the outcome of one applied action.
type ActionResultPayload struct {
	ActionID   string                     `json:"action_id"`
	Success    bool                       `json:"success"`
	Error      *ErrorPayload              `json:"error,omitempty"`
	PieceID    string                     `json:"piece_id,omitempty"`
	Production map[string]resource.Bundle `json:"production,omitempty"`
	Trade      *TradeResultPayload        `json:"trade,omitempty"`
	Bonuses    []BonusPayload             `json:"bonuses,omitempty"`
}

// TradeResultPayload mirrors an evaluated trade.
type TradeResultPayload struct {
	Consumed  resource.Bundle `json:"consumed"`
	Received  resource.Bundle `json:"received"`
	Leftovers resource.Bundle `json:"leftovers"`
}

// PlayerInfo is a summary of a player for state messages.
type PlayerInfo struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Resources     resource.Bundle `json:"resources"`
	VictoryPoints int             `json:"victory_points"`
	RoadLength    int             `json:"road_length"`
	LongestRoad   bool            `json:"longest_road"`
	LargestArmy   bool            `json:"largest_army"`
}

// GameStatePayload summarizes the game after an action.
type GameStatePayload struct {
	GameID       string       `json:"game_id"`
	Round        int          `json:"round"`
	Phase        string       `json:"phase"`
	TurnStep     string       `json:"turn_step"`
	ActivePlayer string       `json:"active_player"`
	DiceValue    int          `json:"dice_value,omitempty"`
	Players      []PlayerInfo `json:"players"`
}

// GameEndedPayload announces the winner.
type GameEndedPayload struct {
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
}
