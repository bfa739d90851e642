package database

import (
	"context"
	"time"
)

// HistoryEvent represents a single game event in the history log.
type HistoryEvent struct {
	ID        int64     `db:"id"`
	GameID    string    `db:"game_id"`
	Round     int       `db:"round"`
	Phase     string    `db:"phase"`
	PlayerID  string    `db:"player_id"`
	EventType string    `db:"event_type"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// Event types for game history
const (
	EventGameStart    = "game_start"
	EventSetupPlaced  = "setup_placed"
	EventDiceRolled   = "dice_rolled"
	EventProduction   = "production"
	EventRobberMoved  = "robber_moved"
	EventBuild        = "build"
	EventTrade        = "trade"
	EventBonusGained  = "bonus_gained"
	EventBonusLost    = "bonus_lost"
	EventKnightPlayed = "knight_played"
	EventTurnEnd      = "turn_end"
	EventGameEnd      = "game_end"
)

// AddHistoryEvent adds a new event to the game history.
func (db *DB) AddHistoryEvent(ctx context.Context, gameID string, round int, phase, playerID, eventType, message string) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO game_history (game_id, round, phase, player_id, event_type, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gameID, round, phase, playerID, eventType, message, time.Now())
	return err
}

// GetGameHistory retrieves all history events for a game, ordered chronologically.
func (db *DB) GetGameHistory(ctx context.Context, gameID string) ([]*HistoryEvent, error) {
	return db.GetGameHistorySince(ctx, gameID, 0)
}

// GetGameHistorySince retrieves history events after a given ID (for incremental updates).
func (db *DB) GetGameHistorySince(ctx context.Context, gameID string, afterID int64) ([]*HistoryEvent, error) {
	var events []*HistoryEvent
	err := db.conn.SelectContext(ctx, &events, `
		SELECT id, game_id, round, phase, player_id, event_type, message, created_at
		FROM game_history
		WHERE game_id = ? AND id > ?
		ORDER BY id ASC
	`, gameID, afterID)
	return events, err
}
