package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/scoring"
)

// NewGameRequest starts a game. PlayerNames are trimmed and blank entries
// dropped before the count is checked. Names hold at most 64 characters. A
// nil WinningScore means the game has no target; a present one must be in
// [1, 32767].
type NewGameRequest struct {
	PlayerNames  []string `json:"player_names" binding:"required" validate:"min=2,max=12,dive,required,max=64"`
	WinningScore *int     `json:"winning_score" validate:"omitempty,gt=0,lte=32767"`
}

// RoundRequest carries one value per player of the game
type RoundRequest struct {
	Scores map[uuid.UUID]int `json:"scores" binding:"required" validate:"required,min=1"`
}

// GameDetail is a game together with its derived scoreboard
type GameDetail struct {
	models.Game
	Standings    []scoring.Standing `json:"standings"`
	HasWinner    bool               `json:"has_winner"`
	Winner       *scoring.Standing  `json:"winner,omitempty"`
	CurrentRound int                `json:"current_round"`
}

// GameSummary is the listing view of a game
type GameSummary struct {
	ID           uuid.UUID  `json:"id"`
	WinningScore int        `json:"winning_score"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	PlayerNames  []string   `json:"player_names"`
	RoundCount   int        `json:"round_count"`
}

// GameResult is returned when a game is concluded
type GameResult struct {
	GameID    uuid.UUID          `json:"game_id"`
	EndedAt   time.Time          `json:"ended_at"`
	MaxTotal  int                `json:"max_total"`
	Standings []scoring.Standing `json:"standings"`
	Winners   []scoring.Standing `json:"winners"`
}

// StatsRow is one line of the statistics table
type StatsRow struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	TotalGames    int     `json:"total_games"`
	TotalWins     int     `json:"total_wins"`
	TotalScore    int     `json:"total_score"`
	AverageScore  float64 `json:"average_score"`
	WinPercentage float64 `json:"win_percentage"`
}

func newStatsRow(s scoring.PlayerStats) StatsRow {
	return StatsRow{
		Rank:          s.Rank,
		Name:          s.Name,
		TotalGames:    s.TotalGames,
		TotalWins:     s.TotalWins,
		TotalScore:    s.TotalScore,
		AverageScore:  s.AverageScore(),
		WinPercentage: s.WinPercentage(),
	}
}
