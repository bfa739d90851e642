package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hex-settlers/internal/game"
)

// ErrGameNotFound is returned when no saved game has the requested ID.
var ErrGameNotFound = errors.New("game not found")

// Game status values
const (
	StatusStarted  = "started"
	StatusFinished = "finished"
)

// GameInfo is a lightweight summary of a saved game for listings.
type GameInfo struct {
	ID          string         `db:"id"`
	MapID       string         `db:"map_id"`
	Status      string         `db:"status"`
	WinnerID    sql.NullString `db:"winner_id"`
	PlayerCount int            `db:"player_count"`
	Round       int            `db:"round"`
	Phase       string         `db:"phase"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// SaveGame writes the game's snapshot, its player seats and its status in
// one transaction. Saving an existing game overwrites the previous snapshot.
func (db *DB) SaveGame(ctx context.Context, g *game.GameState) error {
	data := game.Snapshot(g)
	stateJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode game state: %w", err)
	}

	status := StatusStarted
	if g.IsGameOver() {
		status = StatusFinished
	}
	winner := sql.NullString{String: g.WinnerID, Valid: g.WinnerID != ""}
	now := time.Now()

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, map_id, status, winner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			winner_id = excluded.winner_id,
			updated_at = excluded.updated_at
	`, g.ID, g.Settings.MapID, status, winner, now, now)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_state (game_id, state_json, active_player_id, round, phase, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(game_id) DO UPDATE SET
			state_json = excluded.state_json,
			active_player_id = excluded.active_player_id,
			round = excluded.round,
			phase = excluded.phase,
			updated_at = excluded.updated_at
	`, g.ID, string(stateJSON), g.ActivePlayerID(), g.Round, g.Phase.String(), now)
	if err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	if err := savePlayers(ctx, tx, g); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.log.Debug().Str("game", g.ID).Str("status", status).Int("round", g.Round).Msg("Saved game")
	return nil
}

// LoadGame reads back the latest snapshot of a game.
func (db *DB) LoadGame(ctx context.Context, gameID string) (game.SaveData, error) {
	var data game.SaveData
	var stateJSON string
	err := db.conn.GetContext(ctx, &stateJSON, `SELECT state_json FROM game_state WHERE game_id = ?`, gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return data, ErrGameNotFound
	}
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal([]byte(stateJSON), &data); err != nil {
		return data, fmt.Errorf("failed to decode game state: %w", err)
	}
	return data, nil
}

// GetGame returns the summary of a single game.
func (db *DB) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	info := &GameInfo{}
	err := db.conn.GetContext(ctx, info, gameInfoQuery+` WHERE g.id = ? GROUP BY g.id`, gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ListGames returns all saved games, most recently updated first.
func (db *DB) ListGames(ctx context.Context) ([]*GameInfo, error) {
	var games []*GameInfo
	err := db.conn.SelectContext(ctx, &games, gameInfoQuery+` GROUP BY g.id ORDER BY g.updated_at DESC, g.id`)
	return games, err
}

const gameInfoQuery = `
	SELECT g.id, g.map_id, g.status, g.winner_id, g.created_at, g.updated_at,
		COALESCE(s.round, 0) AS round, COALESCE(s.phase, '') AS phase,
		COUNT(p.player_id) AS player_count
	FROM games g
	LEFT JOIN game_state s ON s.game_id = g.id
	LEFT JOIN game_players p ON p.game_id = g.id`

// DeleteGame removes a game along with its state, seats, actions and history.
func (db *DB) DeleteGame(ctx context.Context, gameID string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, gameID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	return nil
}
