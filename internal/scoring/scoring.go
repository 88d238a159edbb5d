// Package scoring holds the arithmetic of a Nerts score book: running
// totals, standings, the winning-score check, the end-of-game fold into
// lifetime counters and the merged player statistics.
package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/models"
)

const (
	MinPlayers = 2
	MaxPlayers = 12
	// MaxRoundScore is the largest value a single round entry may hold.
	MaxRoundScore = 32767
)

var (
	ErrMissingScore  = errors.New("missing score")
	ErrUnknownPlayer = errors.New("score for unknown player")
	ErrNegativeScore = errors.New("score must not be negative")
	ErrScoreTooLarge = errors.New("score too large")
)

// Standing is a player's position within a game
type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Total    int       `json:"total"`
	Rank     int       `json:"rank"`
	Leader   bool      `json:"leader"`
}

// Totals sums every recorded score per player. Players without scores
// total 0; scores for players not in the list are ignored.
func Totals(players []models.Player, rounds []models.Round) map[uuid.UUID]int {
	totals := make(map[uuid.UUID]int, len(players))
	for _, p := range players {
		totals[p.ID] = 0
	}
	for _, r := range rounds {
		for _, s := range r.Scores {
			if _, ok := totals[s.PlayerID]; ok {
				totals[s.PlayerID] += s.Value
			}
		}
	}
	return totals
}

// Standings orders players by total, highest first. Equal totals are
// ordered by name and then id so the result is stable across calls.
func Standings(players []models.Player, rounds []models.Round) []Standing {
	return standingsFromTotals(players, Totals(players, rounds))
}

func standingsFromTotals(players []models.Player, totals map[uuid.UUID]int) []Standing {
	standings := make([]Standing, 0, len(players))
	for _, p := range players {
		standings = append(standings, Standing{PlayerID: p.ID, Name: p.Name, Total: totals[p.ID]})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PlayerID.String() < b.PlayerID.String()
	})

	for i := range standings {
		standings[i].Rank = i + 1
		standings[i].Leader = i == 0
	}
	return standings
}

// HasWinner reports whether someone reached the winning score. A game
// without a target never has a winner.
func HasWinner(winningScore int, totals map[uuid.UUID]int) bool {
	if winningScore <= 0 {
		return false
	}
	highest := 0
	for _, t := range totals {
		if t > highest {
			highest = t
		}
	}
	return highest >= winningScore
}

// Winner returns the leading standing once the game's target is reached.
func Winner(game *models.Game) (Standing, bool) {
	totals := Totals(game.Players, game.Rounds)
	if !HasWinner(game.WinningScore, totals) {
		return Standing{}, false
	}
	standings := standingsFromTotals(game.Players, totals)
	if len(standings) == 0 {
		return Standing{}, false
	}
	return standings[0], true
}

// NextRoundNumber is the number the next recorded round gets
func NextRoundNumber(rounds []models.Round) int {
	return len(rounds) + 1
}

// ValidateRound checks that scores holds exactly one entry for every
// player and that each value is within [0, MaxRoundScore].
func ValidateRound(players []models.Player, scores map[uuid.UUID]int) error {
	known := make(map[uuid.UUID]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
		value, ok := scores[p.ID]
		if !ok {
			return fmt.Errorf("%w for %s", ErrMissingScore, p.Name)
		}
		if value < 0 {
			return fmt.Errorf("%w: %s has %d", ErrNegativeScore, p.Name, value)
		}
		if value > MaxRoundScore {
			return fmt.Errorf("%w: %s has %d, max is %d", ErrScoreTooLarge, p.Name, value, MaxRoundScore)
		}
	}
	for id := range scores {
		if !known[id] {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}
	return nil
}

// NormalizeNames trims names and drops the blank ones
func NormalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Outcome is the result of concluding a game
type Outcome struct {
	Totals    map[uuid.UUID]int `json:"totals"`
	MaxTotal  int               `json:"max_total"`
	Winners   []uuid.UUID       `json:"winners"`
	Standings []Standing        `json:"standings"`
}

// IsWinner reports whether the player is among the winners
func (o Outcome) IsWinner(id uuid.UUID) bool {
	for _, w := range o.Winners {
		if w == id {
			return true
		}
	}
	return false
}

// Conclude computes the final result of a game. Every player tied on the
// highest total wins, so ending a game without rounds gives everyone a win.
func Conclude(players []models.Player, rounds []models.Round) Outcome {
	totals := Totals(players, rounds)
	out := Outcome{
		Totals:    totals,
		Standings: standingsFromTotals(players, totals),
	}
	if len(out.Standings) == 0 {
		return out
	}

	out.MaxTotal = out.Standings[0].Total
	for _, s := range out.Standings {
		if s.Total != out.MaxTotal {
			break
		}
		out.Winners = append(out.Winners, s.PlayerID)
	}
	return out
}

// Apply folds the outcome into the players' lifetime counters and returns
// the updated copies. The input slice is not modified.
func (o Outcome) Apply(players []models.Player) []models.Player {
	updated := make([]models.Player, len(players))
	for i, p := range players {
		p.TotalScore += o.Totals[p.ID]
		if o.IsWinner(p.ID) {
			p.TotalWins++
		}
		updated[i] = p
	}
	return updated
}
