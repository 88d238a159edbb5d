package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents one scoring session
type Game struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	WinningScore int        `json:"winning_score" db:"winning_score"` // 0 means no target
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	Players      []Player   `json:"players,omitempty"`
	Rounds       []Round    `json:"rounds,omitempty"`
}

// HasTarget returns true if the game was started with a winning score
func (g *Game) HasTarget() bool {
	return g.WinningScore > 0
}

// Player is a participant of a single game. The Total* counters are the
// lifetime aggregates contributed by this record.
type Player struct {
	ID         uuid.UUID `json:"id" db:"id"`
	GameID     uuid.UUID `json:"game_id" db:"game_id"`
	Name       string    `json:"name" db:"name"`
	TotalGames int       `json:"total_games" db:"total_games"`
	TotalScore int       `json:"total_score" db:"total_score"`
	TotalWins  int       `json:"total_wins" db:"total_wins"`
}

// Round is one scoring event within a game
type Round struct {
	ID        uuid.UUID `json:"id" db:"id"`
	GameID    uuid.UUID `json:"game_id" db:"game_id"`
	Number    int       `json:"number" db:"number"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Scores    []Score   `json:"scores"`
}

// Score is one player's points for a round
type Score struct {
	ID       uuid.UUID `json:"id" db:"id"`
	RoundID  uuid.UUID `json:"round_id" db:"round_id"`
	PlayerID uuid.UUID `json:"player_id" db:"player_id"`
	Value    int       `json:"value" db:"value"`
}

// GameFilter narrows game listings
type GameFilter struct {
	Active *bool
	Limit  int
	Offset int
}
