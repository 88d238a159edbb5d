package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/services"
)

func TestStatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockStatsService)
	router := gin.New()
	h := NewStatsHandler(svc)
	router.GET("/stats/players", h.ListPlayers)
	router.GET("/stats/players/:name", h.GetPlayer)

	svc.On("PlayerStatistics", mock.Anything).Return([]services.StatsRow{
		{Rank: 1, Name: "Ann", TotalGames: 2, TotalScore: 35, TotalWins: 1, AverageScore: 17.5, WinPercentage: 50},
		{Rank: 2, Name: "Bob", TotalGames: 1, TotalScore: 10},
	}, nil)
	svc.On("PlayerStatistic", mock.Anything, "Ann").Return(&services.StatsRow{Rank: 1, Name: "Ann", AverageScore: 17.5}, nil)
	svc.On("PlayerStatistic", mock.Anything, "Nobody").Return(nil, errors.NotFound("no games recorded for player", nil))

	w := doJSON(router, "GET", "/stats/players", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["count"])
	first := body["players"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Ann", first["name"])
	assert.EqualValues(t, 17.5, first["average_score"])
	assert.EqualValues(t, 50, first["win_percentage"])

	w = doJSON(router, "GET", "/stats/players/Ann", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/stats/players/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
