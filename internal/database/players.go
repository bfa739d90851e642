package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hex-settlers/internal/game"
)

// GamePlayer is a player's seat in a saved game.
type GamePlayer struct {
	GameID        string `db:"game_id"`
	PlayerID      string `db:"player_id"`
	Name          string `db:"name"`
	Color         string `db:"color"`
	TurnOrder     int    `db:"turn_order"`
	VictoryPoints int    `db:"victory_points"`
}

func savePlayers(ctx context.Context, tx *sqlx.Tx, g *game.GameState) error {
	for _, p := range g.Players {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO game_players (game_id, player_id, name, color, turn_order, victory_points)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(game_id, player_id) DO UPDATE SET
				name = excluded.name,
				color = excluded.color,
				turn_order = excluded.turn_order,
				victory_points = excluded.victory_points
		`, g.ID, p.ID, p.Name, string(p.Color), p.TurnOrder, p.VictoryPoints())
		if err != nil {
			return err
		}
	}
	return nil
}

// GetGamePlayers returns the seats of a game in turn order.
func (db *DB) GetGamePlayers(ctx context.Context, gameID string) ([]*GamePlayer, error) {
	var players []*GamePlayer
	err := db.conn.SelectContext(ctx, &players, `
		SELECT game_id, player_id, name, color, turn_order, victory_points
		FROM game_players
		WHERE game_id = ?
		ORDER BY turn_order
	`, gameID)
	return players, err
}

// GetPlayerGames returns the games a player has a seat in.
func (db *DB) GetPlayerGames(ctx context.Context, playerID string) ([]*GameInfo, error) {
	var games []*GameInfo
	err := db.conn.SelectContext(ctx, &games, gameInfoQuery+`
		WHERE g.id IN (SELECT game_id FROM game_players WHERE player_id = ?)
		GROUP BY g.id
		ORDER BY g.updated_at DESC, g.id
	`, playerID)
	return games, err
}
