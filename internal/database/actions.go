package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hex-settlers/internal/protocol"
)

// ActionRecord is one logged action and the result it produced.
type ActionRecord struct {
	ID         int64          `db:"id"`
	GameID     string         `db:"game_id"`
	MessageID  string         `db:"message_id"`
	PlayerID   string         `db:"player_id"`
	ActionType string         `db:"action_type"`
	ActionJSON string         `db:"action_json"`
	ResultJSON sql.NullString `db:"result_json"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Message decodes the logged action.
func (a *ActionRecord) Message() (*protocol.Message, error) {
	var msg protocol.Message
	if err := json.Unmarshal([]byte(a.ActionJSON), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// LogAction records an action for replay and debugging. The result may be nil.
func (db *DB) LogAction(ctx context.Context, gameID string, msg *protocol.Message, result *protocol.ActionResultPayload) error {
	actionJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode action: %w", err)
	}

	var resultJSON sql.NullString
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		resultJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO game_actions (game_id, message_id, player_id, action_type, action_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gameID, msg.ID, msg.PlayerID, string(msg.Type), string(actionJSON), resultJSON, time.Now())
	return err
}

// GetActions returns the logged actions of a game in the order they were applied.
func (db *DB) GetActions(ctx context.Context, gameID string) ([]*ActionRecord, error) {
	var actions []*ActionRecord
	err := db.conn.SelectContext(ctx, &actions, `
		SELECT id, game_id, message_id, COALESCE(player_id, '') AS player_id, action_type,
			action_json, result_json, created_at
		FROM game_actions
		WHERE game_id = ?
		ORDER BY id ASC
	`, gameID)
	return actions, err
}
