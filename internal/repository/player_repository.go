package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
)

// playerRepository implements PlayerRepository
type playerRepository struct {
	db dbExecutor
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db dbExecutor) PlayerRepository {
	return &playerRepository{db: db}
}

const playerColumns = `id, game_id, name, total_games, total_score, total_wins`

// Create inserts a player of a game
func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		player.ID, player.GameID, player.Name,
		player.TotalGames, player.TotalScore, player.TotalWins,
	)
	if err != nil {
		return fmt.Errorf("failed to create player %s: %w", player.Name, err)
	}

	return nil
}

// ListByGame returns the players of a game ordered by name
func (r *playerRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error) {
	return r.query(ctx, `SELECT `+playerColumns+` FROM players WHERE game_id = $1 ORDER BY name, id`, gameID)
}

// ListByName returns every player record carrying the name
func (r *playerRepository) ListByName(ctx context.Context, name string) ([]models.Player, error) {
	return r.query(ctx, `SELECT `+playerColumns+` FROM players WHERE name = $1 ORDER BY id`, name)
}

// ListAll returns every player record
func (r *playerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	return r.query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY total_score DESC, name, id`)
}

// UpdateTotals writes the lifetime counters of a player record
func (r *playerRepository) UpdateTotals(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET total_games = $2, total_score = $3, total_wins = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		player.ID, player.TotalGames, player.TotalScore, player.TotalWins,
	)
	if err != nil {
		return fmt.Errorf("failed to update player totals: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("player %s: %w", player.ID, ErrNotFound)
	}

	return nil
}

func (r *playerRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.GameID, &p.Name, &p.TotalGames, &p.TotalScore, &p.TotalWins); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}
