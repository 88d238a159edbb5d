package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamtime/SomeNerts/internal/services"
)

// StatsHandler serves lifetime player statistics
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// ListPlayers returns the ranked statistics table
func (h *StatsHandler) ListPlayers(c *gin.Context) {
	rows, err := h.statsService.PlayerStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": rows,
		"count":   len(rows),
	})
}

// GetPlayer returns the statistics of one player name
func (h *StatsHandler) GetPlayer(c *gin.Context) {
	row, err := h.statsService.PlayerStatistic(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": row})
}
