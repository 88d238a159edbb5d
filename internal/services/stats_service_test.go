package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
)

func TestPlayerStatistics(t *testing.T) {
	repos := newTestRepos(t)
	games := NewGameService(repos, nil, nil)
	stats := NewStatsService(repos, nil)
	ctx := context.Background()

	// Game one: Ann 30, Bob 10. Ann wins.
	g1, err := games.CreateGame(ctx, NewGameRequest{PlayerNames: []string{"Ann", "Bob"}})
	require.NoError(t, err)
	_, err = games.AddRound(ctx, g1.ID, scoresFor(g1, 30, 10))
	require.NoError(t, err)
	_, err = games.EndGame(ctx, g1.ID)
	require.NoError(t, err)

	// Game two: Ann 5, Cy 25. Cy wins.
	g2, err := games.CreateGame(ctx, NewGameRequest{PlayerNames: []string{"Ann", "Cy"}})
	require.NoError(t, err)
	_, err = games.AddRound(ctx, g2.ID, scoresFor(g2, 5, 25))
	require.NoError(t, err)
	_, err = games.EndGame(ctx, g2.ID)
	require.NoError(t, err)

	// Still running: counts as a game, adds nothing else yet.
	_, err = games.CreateGame(ctx, NewGameRequest{PlayerNames: []string{"Bob", "Cy"}})
	require.NoError(t, err)

	rows, err := stats.PlayerStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Ann", rows[0].Name)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 2, rows[0].TotalGames)
	assert.Equal(t, 35, rows[0].TotalScore)
	assert.Equal(t, 1, rows[0].TotalWins)
	assert.InDelta(t, 17.5, rows[0].AverageScore, 0.001)
	assert.InDelta(t, 50.0, rows[0].WinPercentage, 0.001)

	assert.Equal(t, "Cy", rows[1].Name)
	assert.Equal(t, 25, rows[1].TotalScore)
	assert.Equal(t, 2, rows[1].TotalGames)

	assert.Equal(t, "Bob", rows[2].Name)
	assert.Equal(t, 3, rows[2].Rank)
	assert.Zero(t, rows[2].TotalWins)
	assert.Zero(t, rows[2].WinPercentage)

	cy, err := stats.PlayerStatistic(ctx, " Cy ")
	require.NoError(t, err)
	assert.Equal(t, 2, cy.Rank)
	assert.InDelta(t, 12.5, cy.AverageScore, 0.001)

	_, err = stats.PlayerStatistic(ctx, "Nobody")
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))

	_, err = stats.PlayerStatistic(ctx, "Anne")
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "did you mean Ann?", appErr.Details)

	_, err = stats.PlayerStatistic(ctx, "  ")
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.CodeOf(err))
}

func TestPlayerStatistics_Empty(t *testing.T) {
	stats := NewStatsService(newTestRepos(t), nil)

	rows, err := stats.PlayerStatistics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPlayerStatistics_DatabaseError(t *testing.T) {
	players := new(MockPlayerRepository)
	players.On("ListAll", mock.Anything).Return([]models.Player(nil), stderrors.New("disk I/O error"))
	players.On("ListByName", mock.Anything, "Ann").Return([]models.Player(nil), stderrors.New("disk I/O error"))

	stats := NewStatsService(&repository.Repositories{Player: players}, nil)

	_, err := stats.PlayerStatistics(context.Background())
	assert.Equal(t, errors.ErrCodeDatabaseError, errors.CodeOf(err))

	_, err = stats.PlayerStatistic(context.Background(), "Ann")
	assert.Equal(t, errors.ErrCodeDatabaseError, errors.CodeOf(err))

	players.AssertExpectations(t)
}
