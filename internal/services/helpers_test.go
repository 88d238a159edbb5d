package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flamtime/SomeNerts/internal/database"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := database.New("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	return repository.NewRepositories(db.DB)
}

func intPtr(v int) *int { return &v }

// MockGameRepository is a testify mock of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*models.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	args := m.Called(ctx, filter)
	if g := args.Get(0); g != nil {
		return g.([]models.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) MarkEnded(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	return m.Called(ctx, id, endedAt).Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPlayerRepository is a testify mock of repository.PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return m.Called(ctx, player).Error(0)
}

func (m *MockPlayerRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *MockPlayerRepository) ListByName(ctx context.Context, name string) ([]models.Player, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *MockPlayerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *MockPlayerRepository) UpdateTotals(ctx context.Context, player *models.Player) error {
	return m.Called(ctx, player).Error(0)
}
