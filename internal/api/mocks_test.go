package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/internal/services"
)

type mockGameService struct {
	mock.Mock
}

func (m *mockGameService) CreateGame(ctx context.Context, req services.NewGameRequest) (*services.GameDetail, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*services.GameDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) GetGame(ctx context.Context, id uuid.UUID) (*services.GameDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*services.GameDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) ListGames(ctx context.Context, filter models.GameFilter) ([]services.GameSummary, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]services.GameSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) ListRounds(ctx context.Context, gameID uuid.UUID) ([]models.Round, error) {
	args := m.Called(ctx, gameID)
	if v := args.Get(0); v != nil {
		return v.([]models.Round), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) AddRound(ctx context.Context, gameID uuid.UUID, req services.RoundRequest) (*models.Round, error) {
	args := m.Called(ctx, gameID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Round), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) EndGame(ctx context.Context, id uuid.UUID) (*services.GameResult, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*services.GameResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) PlayerStatistics(ctx context.Context) ([]services.StatsRow, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]services.StatsRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatsService) PlayerStatistic(ctx context.Context, name string) (*services.StatsRow, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*services.StatsRow), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*repository.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*repository.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Setup(ctx context.Context, req *repository.SetupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, token string) (*repository.LoginResponse, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*repository.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
