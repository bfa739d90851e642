package game

import "hex-settlers/internal/resource"

// Build costs.
var (
	CostRoad       = resource.Bundle{Lumber: 1, Brick: 1}
	CostSettlement = resource.Bundle{Lumber: 1, Brick: 1, Grain: 1, Wool: 1}
	CostCity       = resource.Bundle{Grain: 2, Ore: 3}
	CostKnight     = resource.Bundle{Ore: 1, Grain: 1, Wool: 1}
)

// CanAffordRoad returns true if the player holds the cost of a road.
func (p *Player) CanAffordRoad() bool {
	return p.Resources.CanAfford(CostRoad)
}

// CanAffordSettlement returns true if the player holds the cost of a settlement.
func (p *Player) CanAffordSettlement() bool {
	return p.Resources.CanAfford(CostSettlement)
}

// CanAffordCity returns true if the player holds the cost of a city.
func (p *Player) CanAffordCity() bool {
	return p.Resources.CanAfford(CostCity)
}
