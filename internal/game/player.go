package game

import "hex-settlers/internal/resource"

// PlayerColor represents a player's color.
type PlayerColor string

const (
	ColorRed    PlayerColor = "red"
	ColorBlue   PlayerColor = "blue"
	ColorWhite  PlayerColor = "white"
	ColorOrange PlayerColor = "orange"
)

// AllColors returns all available player colors.
func AllColors() []PlayerColor {
	return []PlayerColor{
		ColorRed,
		ColorBlue,
		ColorWhite,
		ColorOrange,
	}
}

// Piece caps per player.
const (
	MaxRoads       = 15
	MaxSettlements = 5
	MaxCities      = 4
)

// Player represents a player in the game.
type Player struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Color     PlayerColor     `json:"color"`
	TurnOrder int             `json:"turnOrder"`
	DiceRoll  int             `json:"diceRoll"` // Roll used to decide turn order
	Resources resource.Bundle `json:"resources"`

	// Pieces currently on the board.
	RoadsBuilt       int `json:"roadsBuilt"`
	SettlementsBuilt int `json:"settlementsBuilt"`
	CitiesBuilt      int `json:"citiesBuilt"`

	// Settlement piece IDs in the order they were placed during setup.
	SetupSettlements []string `json:"setupSettlements,omitempty"`

	KnightsPlayed int  `json:"knightsPlayed"`
	RoadLength    int  `json:"roadLength"`
	LongestRoad   bool `json:"longestRoad"`
	LargestArmy   bool `json:"largestArmy"`
}

// NewPlayer creates a new player.
func NewPlayer(id, name string, color PlayerColor) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Color: color,
	}
}

// RoadsLeft returns how many roads remain in the player's pool.
func (p *Player) RoadsLeft() int {
	return MaxRoads - p.RoadsBuilt
}

// SettlementsLeft returns how many settlements remain in the player's pool.
func (p *Player) SettlementsLeft() int {
	return MaxSettlements - p.SettlementsBuilt
}

// CitiesLeft returns how many cities remain in the player's pool.
func (p *Player) CitiesLeft() int {
	return MaxCities - p.CitiesBuilt
}

// VictoryPoints is derived from what is on the board and the bonus flags.
func (p *Player) VictoryPoints() int {
	points := p.SettlementsBuilt + 2*p.CitiesBuilt
	if p.LongestRoad {
		points += 2
	}
	if p.LargestArmy {
		points += 2
	}
	return points
}

// playerAt returns players[i] or nil when i is out of range.
func playerAt(players []*Player, i int) *Player {
	if i < 0 || i >= len(players) {
		return nil
	}
	return players[i]
}
