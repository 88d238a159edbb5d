package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flamtime/SomeNerts/internal/models"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print lifetime player statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.svcs.Stats.PlayerStatistics(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "no games recorded")
				return nil
			}

			cells := make([][]string, len(rows))
			for i, r := range rows {
				cells[i] = []string{
					strconv.Itoa(r.Rank),
					r.Name,
					strconv.Itoa(r.TotalGames),
					strconv.Itoa(r.TotalWins),
					strconv.Itoa(r.TotalScore),
					fmt.Sprintf("%.1f", r.AverageScore),
					fmt.Sprintf("%.1f%%", r.WinPercentage),
				}
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Player", "Games", "Wins", "Score", "Avg", "Win %"}, cells))
			return nil
		},
	}
}

func newGamesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Inspect recorded games",
	}

	var activeOnly bool
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.GameFilter{Limit: limit}
			if activeOnly {
				filter.Active = &activeOnly
			}
			games, err := a.svcs.Game.ListGames(cmd.Context(), filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(games) == 0 {
				fmt.Fprintln(out, "no games")
				return nil
			}

			cells := make([][]string, len(games))
			for i, g := range games {
				state := "active"
				if !g.IsActive {
					state = "ended"
				}
				target := "-"
				if g.WinningScore > 0 {
					target = strconv.Itoa(g.WinningScore)
				}
				cells[i] = []string{
					g.ID.String(),
					g.CreatedAt.Local().Format("2006-01-02 15:04"),
					state,
					target,
					strconv.Itoa(g.RoundCount),
					strings.Join(g.PlayerNames, ", "),
				}
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Started", "State", "Target", "Rounds", "Players"}, cells))
			return nil
		},
	}
	list.Flags().BoolVar(&activeOnly, "active", false, "Only games still in progress")
	list.Flags().IntVar(&limit, "limit", 20, "Maximum number of games")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a game's standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q: %w", args[0], err)
			}
			game, err := a.svcs.Game.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := fmt.Sprintf("Game %s, round %d", game.ID, game.CurrentRound)
			if game.HasTarget() {
				header += fmt.Sprintf(", playing to %d", game.WinningScore)
			}
			if !game.IsActive {
				header += " (ended)"
			}
			fmt.Fprintln(out, titleStyle.Render(header))

			cells := make([][]string, len(game.Standings))
			for i, s := range game.Standings {
				cells[i] = []string{strconv.Itoa(s.Rank), s.Name, strconv.Itoa(s.Total)}
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Player", "Total"}, cells))

			if game.Winner != nil {
				fmt.Fprintf(out, "Winner: %s with %d\n", game.Winner.Name, game.Winner.Total)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
