package scoring

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flamtime/SomeNerts/internal/models"
)

func TestMergeStats(t *testing.T) {
	records := []models.Player{
		{Name: "Ann", TotalGames: 1, TotalScore: 40, TotalWins: 1},
		{Name: "Bob", TotalGames: 1, TotalScore: 55, TotalWins: 0},
		{Name: "Ann", TotalGames: 1, TotalScore: 30, TotalWins: 0},
		{Name: "Cy", TotalGames: 1, TotalScore: 80, TotalWins: 1},
	}

	stats := MergeStats(records)

	if len(stats) != 3 {
		t.Fatalf("Expected 3 merged rows, got %d", len(stats))
	}
	wantOrder := []string{"Cy", "Ann", "Bob"}
	for i, s := range stats {
		if s.Name != wantOrder[i] {
			t.Errorf("Position %d: expected %s, got %s", i+1, wantOrder[i], s.Name)
		}
		if s.Rank != i+1 {
			t.Errorf("Expected rank %d, got %d", i+1, s.Rank)
		}
	}

	ann := stats[1]
	if ann.TotalGames != 2 || ann.TotalScore != 70 || ann.TotalWins != 1 {
		t.Errorf("Unexpected Ann stats %+v", ann)
	}
	if ann.AverageScore() != 35 {
		t.Errorf("Expected average 35, got %v", ann.AverageScore())
	}
	if ann.WinPercentage() != 50 {
		t.Errorf("Expected 50%% wins, got %v", ann.WinPercentage())
	}
}

func TestMergeStats_TieOnScoreSortsByName(t *testing.T) {
	stats := MergeStats([]models.Player{
		{Name: "Bob", TotalGames: 1, TotalScore: 10},
		{Name: "Amy", TotalGames: 1, TotalScore: 10},
	})
	if stats[0].Name != "Amy" {
		t.Errorf("Expected Amy first, got %s", stats[0].Name)
	}
}

func TestPlayerStats_ZeroGames(t *testing.T) {
	s := PlayerStats{Name: "Ghost", TotalScore: 10, TotalWins: 1}
	if s.AverageScore() != 0 || s.WinPercentage() != 0 {
		t.Error("Expected zero ratios without games")
	}
}

func TestPlayerStats_WinPercentage(t *testing.T) {
	s := PlayerStats{TotalGames: 3, TotalWins: 1}
	if math.Abs(s.WinPercentage()-33.333) > 0.01 {
		t.Errorf("Expected ~33.3%%, got %v", s.WinPercentage())
	}
}

func TestMergeStats_Empty(t *testing.T) {
	if stats := MergeStats(nil); len(stats) != 0 {
		t.Errorf("Expected no stats, got %d", len(stats))
	}
}

func TestMergeStats_CountsEveryGameOfAName(t *testing.T) {
	got := MergeStats([]models.Player{
		{Name: "Dee", TotalGames: 1, TotalScore: 12, TotalWins: 1},
		{Name: "Eli", TotalGames: 1, TotalScore: 9},
		{Name: "Dee", TotalGames: 1, TotalScore: 3},
		{Name: "Eli", TotalGames: 1, TotalScore: 6, TotalWins: 1},
		{Name: "Dee", TotalGames: 1},
	})

	want := []PlayerStats{
		{Rank: 1, Name: "Dee", TotalGames: 3, TotalScore: 15, TotalWins: 1},
		{Rank: 2, Name: "Eli", TotalGames: 2, TotalScore: 15, TotalWins: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeStats mismatch (-want +got):\n%s", diff)
	}
}
