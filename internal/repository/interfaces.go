package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// GameRepository defines the interface for game data access
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	List(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	// MarkEnded flips an active game to ended. It returns ErrNotFound when
	// no active game has the id.
	MarkEnded(ctx context.Context, id uuid.UUID, endedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error)
	ListByName(ctx context.Context, name string) ([]models.Player, error)
	ListAll(ctx context.Context) ([]models.Player, error)
	UpdateTotals(ctx context.Context, player *models.Player) error
}

// RoundRepository defines the interface for round and score data access
type RoundRepository interface {
	// Create stores the round together with its scores
	Create(ctx context.Context, round *models.Round) error
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.Round, error)
	CountByGame(ctx context.Context, gameID uuid.UUID) (int, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int, error)
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Game   GameRepository
	Player PlayerRepository
	Round  RoundRepository
	User   UserRepository
	Tx     TransactionManager
}
