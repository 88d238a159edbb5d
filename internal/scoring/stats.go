package scoring

import (
	"sort"

	"github.com/flamtime/SomeNerts/internal/models"
)

// PlayerStats is the lifetime record of every player sharing a name
type PlayerStats struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	TotalGames int    `json:"total_games"`
	TotalScore int    `json:"total_score"`
	TotalWins  int    `json:"total_wins"`
}

// AverageScore is points per game, 0 without games
func (s PlayerStats) AverageScore() float64 {
	if s.TotalGames <= 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.TotalGames)
}

// WinPercentage is wins per game as a percentage, 0 without games
func (s PlayerStats) WinPercentage() float64 {
	if s.TotalGames <= 0 {
		return 0
	}
	return float64(s.TotalWins) / float64(s.TotalGames) * 100
}

// MergeStats groups player records by name and sums their counters. The
// result is ordered by total score, highest first, then by name.
func MergeStats(players []models.Player) []PlayerStats {
	byName := make(map[string]*PlayerStats)
	for _, p := range players {
		s, ok := byName[p.Name]
		if !ok {
			s = &PlayerStats{Name: p.Name}
			byName[p.Name] = s
		}
		s.TotalGames += p.TotalGames
		s.TotalScore += p.TotalScore
		s.TotalWins += p.TotalWins
	}

	stats := make([]PlayerStats, 0, len(byName))
	for _, s := range byName {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalScore != stats[j].TotalScore {
			return stats[i].TotalScore > stats[j].TotalScore
		}
		return stats[i].Name < stats[j].Name
	})
	for i := range stats {
		stats[i].Rank = i + 1
	}
	return stats
}
