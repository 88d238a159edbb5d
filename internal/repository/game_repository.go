package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
)

// gameRepository implements GameRepository
type gameRepository struct {
	db dbExecutor
}

// NewGameRepository creates a new game repository
func NewGameRepository(db dbExecutor) GameRepository {
	return &gameRepository{db: db}
}

// Create inserts a game row. Players and rounds are stored by their own
// repositories.
func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO games (id, winning_score, is_active, created_at, ended_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		game.ID, game.WinningScore, game.IsActive, game.CreatedAt, game.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

// GetByID retrieves a game by ID without its players or rounds
func (r *gameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	query := `
		SELECT id, winning_score, is_active, created_at, ended_at
		FROM games WHERE id = $1
	`

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID, &game.WinningScore, &game.IsActive, &game.CreatedAt, &game.EndedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// List returns games newest first
func (r *gameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Active != nil {
		args = append(args, *filter.Active)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	query := `SELECT id, winning_score, is_active, created_at, ended_at FROM games`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.WinningScore, &g.IsActive, &g.CreatedAt, &g.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

// MarkEnded ends an active game
func (r *gameRepository) MarkEnded(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	query := `UPDATE games SET is_active = $2, ended_at = $3 WHERE id = $1 AND is_active = $4`

	result, err := r.db.ExecContext(ctx, query, id, false, endedAt, true)
	if err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("active game %s: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes a game; players, rounds and scores cascade
func (r *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("game %s: %w", id, ErrNotFound)
	}

	return nil
}
