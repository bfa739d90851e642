package game

import (
	"sort"

	"hex-settlers/internal/board"
	"hex-settlers/internal/resource"
)

// PortDeal is a non-default exchange rate available to a player.
type PortDeal = board.Port

// BankRate is the exchange rate without any port.
var BankRate = PortDeal{Resource: resource.Any, Give: 4, Receive: 1}

// TradeResult is the outcome of matching an offer against a request.
// Leftovers are the offered units the matched ratios did not consume.
type TradeResult struct {
	Valid     bool            `json:"valid"`
	Consumed  resource.Bundle `json:"consumed"`
	Received  resource.Bundle `json:"received"`
	Leftovers resource.Bundle `json:"leftovers"`
}

// EvaluateTrade matches a request against offered resources using the
// bank rate improved by any applicable deals. It does not mutate.
//
// Requested kinds are funded in resource order. Each unit is paid for with
// the offered kind that has the cheapest rate and enough units left, never
// with the kind being requested. When that choice starves a later unit the
// matcher backs up and tries the next cheapest kind, so a trade is only
// invalid when no assignment of offered units funds it. Nothing is consumed
// from an invalid trade.
func EvaluateTrade(request, offer resource.Bundle, deals []PortDeal) TradeResult {
	failed := TradeResult{Leftovers: offer}
	if request.IsZero() || !nonNegative(request) || !nonNegative(offer) {
		return failed
	}

	m := &tradeMatcher{
		request: request,
		deals:   deals,
		dead:    make(map[fundState]bool),
	}
	consumed, received, ok := m.fund(fundState{remaining: offer})
	if !ok {
		return failed
	}

	return TradeResult{
		Valid:     true,
		Consumed:  consumed,
		Received:  received,
		Leftovers: offer.Minus(consumed),
	}
}

// fundState is a point in the search: the requested kind being funded,
// how much of it is already bought, and the offer still unspent.
type fundState struct {
	pos       int
	got       int
	remaining resource.Bundle
}

type tradeMatcher struct {
	request resource.Bundle
	deals   []PortDeal
	dead    map[fundState]bool // States known to be unfundable
}

func (m *tradeMatcher) fund(st fundState) (consumed, received resource.Bundle, ok bool) {
	for st.pos < len(resource.All) && st.got >= m.request.Get(resource.All[st.pos]) {
		st.pos++
		st.got = 0
	}
	if st.pos == len(resource.All) {
		return consumed, received, true
	}
	if m.dead[st] {
		return consumed, received, false
	}

	need := resource.All[st.pos]
	for _, src := range fundingSources(need, st.remaining, m.deals) {
		next := st
		next.remaining.Remove(src.Resource, src.Give)
		next.got += src.Receive
		if c, r, ok := m.fund(next); ok {
			c.Add(src.Resource, src.Give)
			r.Add(need, src.Receive)
			return c, r, true
		}
	}
	m.dead[st] = true
	return consumed, received, false
}

// BankRateFor returns the best rate at which k can be given away.
func BankRateFor(k resource.Kind, deals []PortDeal) PortDeal {
	best := BankRate
	best.Resource = k
	for _, d := range deals {
		if d.Give <= 0 || d.Receive <= 0 {
			continue
		}
		if d.Resource != k && d.Resource != resource.Any {
			continue
		}
		// d.Give/d.Receive < best.Give/best.Receive
		if d.Give*best.Receive < best.Give*d.Receive {
			best = PortDeal{Resource: k, Give: d.Give, Receive: d.Receive}
		}
	}
	return best
}

// fundingSources lists the offered kinds that can pay for one unit of need,
// cheapest rate first and ties in resource order.
func fundingSources(need resource.Kind, remaining resource.Bundle, deals []PortDeal) []PortDeal {
	var sources []PortDeal
	for _, k := range resource.All {
		if k == need {
			continue
		}
		rate := BankRateFor(k, deals)
		if remaining.Get(k) < rate.Give {
			continue
		}
		sources = append(sources, rate)
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Give*sources[j].Receive < sources[j].Give*sources[i].Receive
	})
	return sources
}

func nonNegative(b resource.Bundle) bool {
	for _, k := range resource.All {
		if b.Get(k) < 0 {
			return false
		}
	}
	return true
}

// ApplyTrade moves an evaluated trade into the player's holdings. The
// player is left untouched when the result is invalid or no longer
// affordable.
func ApplyTrade(p *Player, r TradeResult) error {
	if !r.Valid {
		return ErrInvalidTrade
	}
	if !p.Resources.Spend(r.Consumed) {
		return ErrInsufficientResources
	}
	p.Resources = p.Resources.Plus(r.Received)
	return nil
}

// PlayerDeals collects the port deals on every vertex the player has built on.
func PlayerDeals(b *board.Board, playerID string) []PortDeal {
	seen := make(map[board.VertexID]map[PortDeal]bool)
	var deals []PortDeal
	for _, t := range b.Tiles() {
		for i := 0; i < 6; i++ {
			port, ok := t.Ports[i]
			if !ok {
				continue
			}
			v := b.VertexAt(t.Cell, i)
			if v == nil || v.Occupant == nil || v.Occupant.Owner != playerID {
				continue
			}
			if seen[v.ID] == nil {
				seen[v.ID] = make(map[PortDeal]bool)
			}
			if seen[v.ID][port] {
				continue
			}
			seen[v.ID][port] = true
			deals = append(deals, port)
		}
	}
	return deals
}

// PlayerTrade is a direct exchange proposed by the active player.
type PlayerTrade struct {
	FromPlayerID string          `json:"fromPlayerId"`
	ToPlayerID   string          `json:"toPlayerId"`
	Offer        resource.Bundle `json:"offer"`
	Request      resource.Bundle `json:"request"`
}

// ValidatePlayerTrade checks that a trade is allowed now and that both
// sides hold what they would give.
func (g *GameState) ValidatePlayerTrade(offer *PlayerTrade) error {
	if err := g.checkMainStep(offer.FromPlayerID); err != nil {
		return err
	}

	from := g.Player(offer.FromPlayerID)
	to := g.Player(offer.ToPlayerID)
	if from == nil || to == nil || from == to {
		return ErrInvalidTarget
	}
	if !nonNegative(offer.Offer) || !nonNegative(offer.Request) {
		return ErrInvalidTrade
	}
	if offer.Offer.IsZero() && offer.Request.IsZero() {
		return ErrInvalidTrade
	}

	if !from.Resources.CanAfford(offer.Offer) || !to.Resources.CanAfford(offer.Request) {
		return ErrInsufficientResources
	}
	return nil
}

// ExecutePlayerTrade validates and performs a trade between two players.
func (g *GameState) ExecutePlayerTrade(offer *PlayerTrade) error {
	if err := g.ValidatePlayerTrade(offer); err != nil {
		return err
	}
	from := g.Player(offer.FromPlayerID)
	to := g.Player(offer.ToPlayerID)

	from.Resources = from.Resources.Minus(offer.Offer).Plus(offer.Request)
	to.Resources = to.Resources.Minus(offer.Request).Plus(offer.Offer)
	return nil
}
