package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/services"
)

// GameHandler serves the game lifecycle endpoints
type GameHandler struct {
	gameService services.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// listGamesQuery is bound from ?active=&limit=&offset=
type listGamesQuery struct {
	Active *bool `form:"active"`
	Limit  int   `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int   `form:"offset" binding:"omitempty,min=0"`
}

// CreateGame starts a new game
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req services.NewGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := h.gameService.CreateGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/v1/games/"+game.ID.String())
	c.JSON(http.StatusCreated, gin.H{"game": game})
}

// ListGames returns games newest first
func (h *GameHandler) ListGames(c *gin.Context) {
	var q listGamesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	games, err := h.gameService.ListGames(c.Request.Context(), models.GameFilter{
		Active: q.Active,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"games": games,
		"count": len(games),
	})
}

// GetGame returns a game with its scoreboard
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}

// DeleteGame discards a game
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := h.gameService.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddRound records the next round
func (h *GameHandler) AddRound(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req services.RoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	round, err := h.gameService.AddRound(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"round": round})
}

// ListRounds returns the rounds of a game in order
func (h *GameHandler) ListRounds(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	rounds, err := h.gameService.ListRounds(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rounds": rounds,
		"count":  len(rounds),
	})
}

// GetStandings returns the ranked totals of a game
func (h *GameHandler) GetStandings(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_id":       game.ID,
		"winning_score": game.WinningScore,
		"current_round": game.CurrentRound,
		"standings":     game.Standings,
		"has_winner":    game.HasWinner,
		"winner":        game.Winner,
	})
}

// EndGame concludes a game
func (h *GameHandler) EndGame(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.gameService.EndGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
