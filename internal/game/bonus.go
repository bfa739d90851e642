package game

// Bonus thresholds.
const (
	MinLongestRoad = 5
	MinLargestArmy = 3
)

// BonusKind identifies one of the two 2-point bonuses.
type BonusKind int

const (
	BonusLongestRoad BonusKind = iota
	BonusLargestArmy
)

// String returns the bonus name.
func (k BonusKind) String() string {
	if k == BonusLargestArmy {
		return "largest army"
	}
	return "longest road"
}

// BonusEvent reports a player gaining or losing a bonus. Callers use these
// to refresh scores and UI.
type BonusEvent struct {
	Kind     BonusKind `json:"kind"`
	PlayerID string    `json:"playerId"`
	Gained   bool      `json:"gained"`
}

// AwardBonus moves a bonus flag given each player's score (road length or
// knights played), indexed like players.
//
// Nobody qualifies below the threshold. A challenger takes the bonus only by
// strictly exceeding the current holder. When several players share the
// top score the bonus is stripped from everyone.
func AwardBonus(players []*Player, kind BonusKind, scores []int) []BonusEvent {
	if len(scores) != len(players) {
		return nil
	}
	threshold := MinLongestRoad
	if kind == BonusLargestArmy {
		threshold = MinLargestArmy
	}

	holder := -1
	for i, p := range players {
		if hasBonus(p, kind) {
			holder = i
			break
		}
	}

	top, leaders := -1, 0
	leader := -1
	for i, s := range scores {
		switch {
		case s > top:
			top, leaders, leader = s, 1, i
		case s == top:
			leaders++
		}
	}

	next := holder
	switch {
	case top < threshold || leaders > 1:
		next = -1
	case holder < 0:
		next = leader
	case leader != holder && scores[leader] > scores[holder]:
		next = leader
	}

	if next == holder {
		return nil
	}

	var events []BonusEvent
	if holder >= 0 {
		setBonus(players[holder], kind, false)
		events = append(events, BonusEvent{Kind: kind, PlayerID: players[holder].ID, Gained: false})
	}
	if next >= 0 {
		setBonus(players[next], kind, true)
		events = append(events, BonusEvent{Kind: kind, PlayerID: players[next].ID, Gained: true})
	}
	return events
}

func hasBonus(p *Player, kind BonusKind) bool {
	if kind == BonusLargestArmy {
		return p.LargestArmy
	}
	return p.LongestRoad
}

func setBonus(p *Player, kind BonusKind, on bool) {
	if kind == BonusLargestArmy {
		p.LargestArmy = on
	} else {
		p.LongestRoad = on
	}
}

// AwardLongestRoad moves the longest road bonus given each player's road length.
func AwardLongestRoad(players []*Player, lengths []int) []BonusEvent {
	return AwardBonus(players, BonusLongestRoad, lengths)
}

// AwardLargestArmy moves the largest army bonus given knights played.
func AwardLargestArmy(players []*Player) []BonusEvent {
	knights := make([]int, len(players))
	for i, p := range players {
		knights[i] = p.KnightsPlayed
	}
	return AwardBonus(players, BonusLargestArmy, knights)
}
