package engine

import (
	"fmt"
	"math/rand"

	"hex-settlers/internal/board"
	"hex-settlers/internal/game"
	"hex-settlers/internal/hex"
	"hex-settlers/internal/protocol"
	"hex-settlers/internal/resource"
)

// Bot picks legal actions for whichever player is active. It rolls the
// dice itself, so a seeded bot plays the same game every time.
type Bot struct {
	rng    *rand.Rand
	traded map[string]bool
}

// NewBot creates a bot seeded with seed.
func NewBot(seed int64) *Bot {
	return &Bot{
		rng:    rand.New(rand.NewSource(seed)),
		traded: make(map[string]bool),
	}
}

// Next returns the next action for the active player, or nil when the game
// is over.
func (b *Bot) Next(g *game.GameState) (*protocol.Message, error) {
	p := g.Active()
	if p == nil || g.IsGameOver() {
		return nil, nil
	}

	if g.Phase == game.PhaseSetup {
		if g.SetupStep == game.SetupSettlement {
			if loc, ok := b.bestSettlement(g); ok {
				return placement(p.ID, protocol.TypeBuildSettlement, loc)
			}
			return nil, fmt.Errorf("no legal setup settlement for %s", p.ID)
		}
		if loc, ok := b.anyRoad(g); ok {
			return placement(p.ID, protocol.TypeBuildRoad, loc)
		}
		return nil, fmt.Errorf("no legal setup road for %s", p.ID)
	}

	switch g.TurnStep {
	case game.TurnRoll:
		roll := b.rng.Intn(6) + b.rng.Intn(6) + 2
		return protocol.NewAction(p.ID, protocol.TypeRollDice, protocol.RollDicePayload{Value: roll})
	case game.TurnRobber:
		return protocol.NewAction(p.ID, protocol.TypeMoveRobber, protocol.MoveRobberPayload{Cell: b.robberTarget(g)})
	}

	if p.CanAffordCity() {
		if loc, ok := b.anyCity(g); ok {
			return placement(p.ID, protocol.TypeBuildCity, loc)
		}
	}
	if p.CanAffordSettlement() {
		if loc, ok := b.bestSettlement(g); ok {
			return placement(p.ID, protocol.TypeBuildSettlement, loc)
		}
	}
	if p.CanAffordRoad() && p.RoadsLeft() > 0 {
		if loc, ok := b.anyRoad(g); ok {
			return placement(p.ID, protocol.TypeBuildRoad, loc)
		}
	}

	// One bank trade per turn for whatever the hand lacks most
	key := fmt.Sprintf("%d/%s", g.Round, p.ID)
	if !b.traded[key] && p.Resources.Total() >= 8 {
		b.traded[key] = true
		want := scarcest(p.Resources)
		offer := p.Resources
		offer.Set(want, 0)
		return protocol.NewAction(p.ID, protocol.TypeTrade, protocol.TradePayload{
			Request: resource.Of(want, 1),
			Offer:   offer,
		})
	}

	return protocol.NewAction(p.ID, protocol.TypeEndTurn, nil)
}

func placement(playerID string, t protocol.MessageType, loc board.Location) (*protocol.Message, error) {
	return protocol.NewAction(playerID, t, protocol.PlacementPayload{Cell: loc.Cell, Index: loc.Index})
}

// bestSettlement returns the legal corner touching the most productive tiles.
func (b *Bot) bestSettlement(g *game.GameState) (board.Location, bool) {
	var best board.Location
	bestScore := -1
	for _, loc := range b.shuffled(g, board.SlotVertex) {
		if !game.CanPlaceSettlement(g.Board, loc.Cell, loc.Index, g.Players, g.ActivePlayer, g.Phase) {
			continue
		}
		v := g.Board.VertexAt(loc.Cell, loc.Index)
		score := 0
		for _, t := range g.Board.TilesAtVertex(v.ID) {
			score += pips(t.Dice)
		}
		if score > bestScore {
			best, bestScore = loc, score
		}
	}
	return best, bestScore >= 0
}

func (b *Bot) anyRoad(g *game.GameState) (board.Location, bool) {
	for _, loc := range b.shuffled(g, board.SlotEdge) {
		if game.CanPlaceRoad(g.Board, loc.Cell, loc.Index, g.Players, g.ActivePlayer, g.Phase) {
			return loc, true
		}
	}
	return board.Location{}, false
}

func (b *Bot) anyCity(g *game.GameState) (board.Location, bool) {
	for _, piece := range g.Board.PiecesOf(g.ActivePlayerID(), board.PieceSettlement) {
		loc, ok := piece.Location()
		if ok && game.CanPlaceCity(g.Board, loc.Cell, loc.Index, g.Players, g.ActivePlayer, g.Phase) {
			return loc, true
		}
	}
	return board.Location{}, false
}

func (b *Bot) robberTarget(g *game.GameState) hex.Cell {
	var cells []hex.Cell
	for _, t := range g.Board.Tiles() {
		if t.Robber() == nil {
			cells = append(cells, t.Cell)
		}
	}
	return cells[b.rng.Intn(len(cells))]
}

// shuffled lists every corner or side of every tile in random order.
func (b *Bot) shuffled(g *game.GameState, slot board.Slot) []board.Location {
	var locs []board.Location
	for _, t := range g.Board.Tiles() {
		for i := 0; i < 6; i++ {
			locs = append(locs, board.At(t.Cell, slot, i))
		}
	}
	b.rng.Shuffle(len(locs), func(i, j int) { locs[i], locs[j] = locs[j], locs[i] })
	return locs
}

// pips is the number of two-dice combinations that roll n.
func pips(n int) int {
	if n < 2 || n > 12 || n == game.RobberRoll {
		return 0
	}
	if n < 7 {
		return n - 1
	}
	return 13 - n
}

func scarcest(hand resource.Bundle) resource.Kind {
	want := resource.All[0]
	for _, k := range resource.All[1:] {
		if hand.Get(k) < hand.Get(want) {
			want = k
		}
	}
	return want
}
