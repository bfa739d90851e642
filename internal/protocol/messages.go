// Package protocol defines the action envelope submitted to the turn queue.
package protocol

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the type of message.
type MessageType string

// Action message types
const (
	TypeBuildRoad       MessageType = "build_road"
	TypeBuildSettlement MessageType = "build_settlement"
	TypeBuildCity       MessageType = "build_city"
	TypeRollDice        MessageType = "roll_dice"
	TypeMoveRobber      MessageType = "move_robber"
	TypeTrade           MessageType = "trade"
	TypePlayerTrade     MessageType = "player_trade"
	TypeEndTurn         MessageType = "end_turn"
	TypePlayKnight      MessageType = "play_knight"
)

// Result message types
const (
	TypeActionResult MessageType = "action_result"
	TypeGameState    MessageType = "game_state"
	TypeGameEnded    MessageType = "game_ended"
	TypeError        MessageType = "error"
)

// Message is the envelope for all messages.
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id"`
	PlayerID  string          `json:"player_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewMessage creates a new message with the given type and payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// NewAction creates a message for an action taken by playerID.
func NewAction(playerID string, msgType MessageType, payload interface{}) (*Message, error) {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		return nil, err
	}
	msg.PlayerID = playerID
	return msg, nil
}

// ParsePayload unmarshals the payload into the given type.
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// ErrorCode represents an error type.
type ErrorCode string

const (
	ErrCodeInvalidAction         ErrorCode = "invalid_action"
	ErrCodeNotYourTurn           ErrorCode = "not_your_turn"
	ErrCodeInvalidTarget         ErrorCode = "invalid_target"
	ErrCodeInsufficientResources ErrorCode = "insufficient_resources"
	ErrCodeIllegalPlacement      ErrorCode = "illegal_placement"
	ErrCodeNoPiecesLeft          ErrorCode = "no_pieces_left"
	ErrCodeRobberRequired        ErrorCode = "robber_required"
	ErrCodeInvalidTrade          ErrorCode = "invalid_trade"
	ErrCodeGameOver              ErrorCode = "game_over"
	ErrCodeBadPayload            ErrorCode = "bad_payload"
	ErrCodeInternalError         ErrorCode = "internal_error"
)

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
