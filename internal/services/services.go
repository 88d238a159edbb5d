package services

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/metrics"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/pkg/config"
)

// validate is shared by every service; validator caches struct metadata.
var validate = validator.New()

// Services contains all application services
type Services struct {
	Game  GameService
	Stats StatsService
	Auth  AuthService
}

// GameService defines the interface for the game lifecycle
type GameService interface {
	CreateGame(ctx context.Context, req NewGameRequest) (*GameDetail, error)
	GetGame(ctx context.Context, id uuid.UUID) (*GameDetail, error)
	ListGames(ctx context.Context, filter models.GameFilter) ([]GameSummary, error)
	ListRounds(ctx context.Context, gameID uuid.UUID) ([]models.Round, error)
	AddRound(ctx context.Context, gameID uuid.UUID, req RoundRequest) (*models.Round, error)
	EndGame(ctx context.Context, id uuid.UUID) (*GameResult, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
}

// StatsService defines the interface for lifetime player statistics
type StatsService interface {
	PlayerStatistics(ctx context.Context) ([]StatsRow, error)
	PlayerStatistic(ctx context.Context, name string) (*StatsRow, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (*repository.LoginResponse, error)
	Setup(ctx context.Context, req *repository.SetupRequest) (*models.User, error)
	ValidateToken(ctx context.Context, token string) (*models.User, error)
	RefreshToken(ctx context.Context, token string) (*repository.LoginResponse, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, log logger.Logger, m *metrics.Metrics) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Game:  NewGameService(repos, log, m),
		Stats: NewStatsService(repos, log),
		Auth:  NewAuthService(repos, cfg, log),
	}
}
