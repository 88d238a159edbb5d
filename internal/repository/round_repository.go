package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
)

// roundRepository implements RoundRepository
type roundRepository struct {
	db dbExecutor
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db dbExecutor) RoundRepository {
	return &roundRepository{db: db}
}

// Create inserts the round and one score row per entry. Callers wanting
// all-or-nothing semantics run it inside WithTransaction.
func (r *roundRepository) Create(ctx context.Context, round *models.Round) error {
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rounds (id, game_id, number, created_at) VALUES ($1, $2, $3, $4)`,
		round.ID, round.GameID, round.Number, round.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create round %d: %w", round.Number, err)
	}

	for i := range round.Scores {
		s := &round.Scores[i]
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.RoundID = round.ID

		_, err := r.db.ExecContext(ctx,
			`INSERT INTO scores (id, round_id, player_id, value) VALUES ($1, $2, $3, $4)`,
			s.ID, s.RoundID, s.PlayerID, s.Value,
		)
		if err != nil {
			return fmt.Errorf("failed to store score for player %s: %w", s.PlayerID, err)
		}
	}

	return nil
}

// ListByGame returns the rounds of a game in order, each with its scores
func (r *roundRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.Round, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, game_id, number, created_at FROM rounds WHERE game_id = $1 ORDER BY number`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}

	rounds := []models.Round{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var rd models.Round
		if err := rows.Scan(&rd.ID, &rd.GameID, &rd.Number, &rd.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		index[rd.ID] = len(rounds)
		rounds = append(rounds, rd)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	if len(rounds) == 0 {
		return rounds, nil
	}

	scoreRows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.round_id, s.player_id, s.value
		FROM scores s
		JOIN rounds r ON r.id = s.round_id
		WHERE r.game_id = $1
		ORDER BY r.number, s.player_id
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer scoreRows.Close()

	for scoreRows.Next() {
		var s models.Score
		if err := scoreRows.Scan(&s.ID, &s.RoundID, &s.PlayerID, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		if i, ok := index[s.RoundID]; ok {
			rounds[i].Scores = append(rounds[i].Scores, s)
		}
	}
	if err := scoreRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return rounds, nil
}

// CountByGame returns the number of recorded rounds
func (r *roundRepository) CountByGame(ctx context.Context, gameID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rounds WHERE game_id = $1`, gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return count, nil
}
