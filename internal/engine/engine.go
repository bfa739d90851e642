// Package engine serializes actions against one game, persists the result
// and reports it back as protocol payloads.
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"hex-settlers/internal/board"
	"hex-settlers/internal/database"
	"hex-settlers/internal/game"
	"hex-settlers/internal/logging"
	"hex-settlers/internal/protocol"
)

// ErrStopped is returned by Submit once Run has exited.
var ErrStopped = errors.New("engine stopped")

// Store persists games and their action logs.
type Store interface {
	SaveGame(ctx context.Context, g *game.GameState) error
	LogAction(ctx context.Context, gameID string, msg *protocol.Message, result *protocol.ActionResultPayload) error
	AddHistoryEvent(ctx context.Context, gameID string, round int, phase, playerID, eventType, message string) error
}

// Result is everything produced by one applied action.
type Result struct {
	Action *protocol.ActionResultPayload
	State  *protocol.GameStatePayload
	Ended  *protocol.GameEndedPayload
}

type request struct {
	ctx   context.Context
	msg   *protocol.Message
	reply chan *Result
}

// Engine owns a game and applies actions to it one at a time.
type Engine struct {
	game  *game.GameState
	store Store
	log   zerolog.Logger

	requests chan *request
	done     chan struct{}

	mu sync.RWMutex
}

// New creates an engine for g. The store may be nil, in which case nothing
// is persisted.
func New(g *game.GameState, store Store, log zerolog.Logger) *Engine {
	return &Engine{
		game:     g,
		store:    store,
		log:      logging.WithGame(log, g.ID),
		requests: make(chan *request, 64),
		done:     make(chan struct{}),
	}
}

// Run processes submitted actions until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-e.requests:
			req.reply <- e.Apply(req.ctx, req.msg)
		}
	}
}

// Submit queues an action and waits for its result.
func (e *Engine) Submit(ctx context.Context, msg *protocol.Message) (*Result, error) {
	req := &request{ctx: ctx, msg: msg, reply: make(chan *Result, 1)}
	select {
	case e.requests <- req:
	case <-e.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res, nil
	case <-e.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Start saves the freshly created game and records its start.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store == nil {
		return nil
	}
	if err := e.store.SaveGame(ctx, e.game); err != nil {
		return fmt.Errorf("failed to save new game: %w", err)
	}
	e.history(ctx, "", database.EventGameStart, fmt.Sprintf("Game started on map %s with %d players", e.game.Settings.MapID, len(e.game.Players)))
	return nil
}

// State returns the current state summary.
func (e *Engine) State() *protocol.GameStatePayload {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return statePayload(e.game)
}

// View calls fn with the game while holding the read lock. fn must not
// modify the game.
func (e *Engine) View(fn func(g *game.GameState)) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn(e.game)
}

// Apply runs one action synchronously. Run calls it for every submitted
// action; tests and replays may call it directly.
func (e *Engine) Apply(ctx context.Context, msg *protocol.Message) *Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.game
	result := &protocol.ActionResultPayload{ActionID: msg.ID}
	wasOver := g.IsGameOver()
	g.BonusEvents = nil

	err := e.dispatch(ctx, msg, result)
	if err != nil {
		result.Error = &protocol.ErrorPayload{Code: CodeFor(err), Message: err.Error()}
		e.log.Debug().Err(err).Str("player", msg.PlayerID).Str("action", string(msg.Type)).Msg("Action rejected")
	} else {
		result.Success = true
		for _, ev := range g.BonusEvents {
			result.Bonuses = append(result.Bonuses, protocol.BonusPayload{
				Bonus:    ev.Kind.String(),
				PlayerID: ev.PlayerID,
				Gained:   ev.Gained,
			})
			e.bonusHistory(ctx, ev)
		}
		e.log.Debug().Str("player", msg.PlayerID).Str("action", string(msg.Type)).Msg("Action applied")
	}

	res := &Result{Action: result, State: statePayload(g)}
	if winner := g.Winner(); winner != nil && !wasOver {
		res.Ended = &protocol.GameEndedPayload{WinnerID: winner.ID, WinnerName: winner.Name}
		e.history(ctx, winner.ID, database.EventGameEnd, fmt.Sprintf("%s wins with %d points", winner.Name, winner.VictoryPoints()))
		e.log.Info().Str("winner", winner.ID).Int("round", g.Round).Msg("Game over")
	}

	e.persist(ctx, msg, result)
	return res
}

func (e *Engine) dispatch(ctx context.Context, msg *protocol.Message, result *protocol.ActionResultPayload) error {
	g := e.game
	name := e.playerName(msg.PlayerID)

	switch msg.Type {
	case protocol.TypeBuildRoad, protocol.TypeBuildSettlement, protocol.TypeBuildCity:
		var payload protocol.PlacementPayload
		if err := msg.ParsePayload(&payload); err != nil {
			return badPayload(err)
		}
		setup := g.Phase == game.PhaseSetup

		var piece *board.Piece
		var err error
		switch msg.Type {
		case protocol.TypeBuildRoad:
			piece, err = g.BuildRoad(msg.PlayerID, payload.Cell, payload.Index)
		case protocol.TypeBuildSettlement:
			piece, err = g.BuildSettlement(msg.PlayerID, payload.Cell, payload.Index)
		default:
			piece, err = g.BuildCity(msg.PlayerID, payload.Cell, payload.Index)
		}
		if err != nil {
			return err
		}
		result.PieceID = piece.ID

		event := database.EventBuild
		if setup {
			event = database.EventSetupPlaced
		}
		e.history(ctx, msg.PlayerID, event, fmt.Sprintf("%s built a %s at %s", name, piece.Kind, board.At(payload.Cell, piece.Kind.Slot(), payload.Index)))
		return nil

	case protocol.TypeRollDice:
		var payload protocol.RollDicePayload
		if err := msg.ParsePayload(&payload); err != nil {
			return badPayload(err)
		}
		produced, err := g.RollDice(msg.PlayerID, payload.Value)
		if err != nil {
			return err
		}
		result.Production = produced
		e.history(ctx, msg.PlayerID, database.EventDiceRolled, fmt.Sprintf("%s rolled %d", name, payload.Value))
		ids := make([]string, 0, len(produced))
		for id := range produced {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			e.history(ctx, id, database.EventProduction, fmt.Sprintf("%s received %d resources", e.playerName(id), produced[id].Total()))
		}
		return nil

	case protocol.TypeMoveRobber:
		var payload protocol.MoveRobberPayload
		if err := msg.ParsePayload(&payload); err != nil {
			return badPayload(err)
		}
		if err := g.MoveRobber(msg.PlayerID, payload.Cell); err != nil {
			return err
		}
		e.history(ctx, msg.PlayerID, database.EventRobberMoved, fmt.Sprintf("%s moved the robber to %s", name, payload.Cell))
		return nil

	case protocol.TypeTrade:
		var payload protocol.TradePayload
		if err := msg.ParsePayload(&payload); err != nil {
			return badPayload(err)
		}
		trade, err := g.BankTrade(msg.PlayerID, payload.Request, payload.Offer)
		if err != nil {
			return err
		}
		result.Trade = &protocol.TradeResultPayload{
			Consumed:  trade.Consumed,
			Received:  trade.Received,
			Leftovers: trade.Leftovers,
		}
		e.history(ctx, msg.PlayerID, database.EventTrade, fmt.Sprintf("%s traded %d resources for %d", name, trade.Consumed.Total(), trade.Received.Total()))
		return nil

	case protocol.TypePlayerTrade:
		var payload protocol.PlayerTradePayload
		if err := msg.ParsePayload(&payload); err != nil {
			return badPayload(err)
		}
		offer := &game.PlayerTrade{
			FromPlayerID: msg.PlayerID,
			ToPlayerID:   payload.ToPlayerID,
			Offer:        payload.Offer,
			Request:      payload.Request,
		}
		if err := g.ExecutePlayerTrade(offer); err != nil {
			return err
		}
		e.history(ctx, msg.PlayerID, database.EventTrade, fmt.Sprintf("%s traded with %s", name, payload.ToPlayerID))
		return nil

	case protocol.TypePlayKnight:
		if err := g.PlayKnight(msg.PlayerID); err != nil {
			return err
		}
		e.history(ctx, msg.PlayerID, database.EventKnightPlayed, fmt.Sprintf("%s played a knight", name))
		return nil

	case protocol.TypeEndTurn:
		if err := g.EndTurn(msg.PlayerID); err != nil {
			return err
		}
		e.history(ctx, msg.PlayerID, database.EventTurnEnd, fmt.Sprintf("%s ended the turn", name))
		return nil
	}

	return fmt.Errorf("%w: unknown message type %q", game.ErrInvalidAction, msg.Type)
}

// persist saves the game and logs the action. Storage failures are logged;
// the action has already been applied in memory.
func (e *Engine) persist(ctx context.Context, msg *protocol.Message, result *protocol.ActionResultPayload) {
	if e.store == nil {
		return
	}
	if err := e.store.LogAction(ctx, e.game.ID, msg, result); err != nil {
		e.log.Error().Err(err).Str("action", msg.ID).Msg("Failed to log action")
	}
	if !result.Success {
		return
	}
	if err := e.store.SaveGame(ctx, e.game); err != nil {
		e.log.Error().Err(err).Msg("Failed to save game")
	}
}

func (e *Engine) history(ctx context.Context, playerID, eventType, message string) {
	if e.store == nil {
		return
	}
	g := e.game
	if err := e.store.AddHistoryEvent(ctx, g.ID, g.Round, g.Phase.String(), playerID, eventType, message); err != nil {
		e.log.Warn().Err(err).Str("event", eventType).Msg("Failed to add history event")
	}
}

func (e *Engine) bonusHistory(ctx context.Context, ev game.BonusEvent) {
	name := e.playerName(ev.PlayerID)
	if ev.Gained {
		e.history(ctx, ev.PlayerID, database.EventBonusGained, fmt.Sprintf("%s takes the %s", name, ev.Kind))
		return
	}
	e.history(ctx, ev.PlayerID, database.EventBonusLost, fmt.Sprintf("%s loses the %s", name, ev.Kind))
}

func (e *Engine) playerName(id string) string {
	if p := e.game.Player(id); p != nil {
		return p.Name
	}
	return id
}

func statePayload(g *game.GameState) *protocol.GameStatePayload {
	state := &protocol.GameStatePayload{
		GameID:       g.ID,
		Round:        g.Round,
		Phase:        g.Phase.String(),
		TurnStep:     g.TurnStep.String(),
		ActivePlayer: g.ActivePlayerID(),
		DiceValue:    g.DiceValue,
	}
	for _, p := range g.Players {
		state.Players = append(state.Players, protocol.PlayerInfo{
			ID:            p.ID,
			Name:          p.Name,
			Color:         string(p.Color),
			Resources:     p.Resources,
			VictoryPoints: p.VictoryPoints(),
			RoadLength:    p.RoadLength,
			LongestRoad:   p.LongestRoad,
			LargestArmy:   p.LargestArmy,
		})
	}
	return state
}

// Messages wraps the result in envelopes, ready to broadcast: the action
// result (or an error), the new state, and the game end if it happened.
func (r *Result) Messages() ([]*protocol.Message, error) {
	var out []*protocol.Message
	add := func(t protocol.MessageType, payload interface{}) error {
		msg, err := protocol.NewMessage(t, payload)
		if err != nil {
			return err
		}
		out = append(out, msg)
		return nil
	}

	if r.Action.Success {
		if err := add(protocol.TypeActionResult, r.Action); err != nil {
			return nil, err
		}
	} else if err := add(protocol.TypeError, r.Action.Error); err != nil {
		return nil, err
	}
	if err := add(protocol.TypeGameState, r.State); err != nil {
		return nil, err
	}
	if r.Ended != nil {
		if err := add(protocol.TypeGameEnded, r.Ended); err != nil {
			return nil, err
		}
	}
	return out, nil
}
