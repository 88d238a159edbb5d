package services

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/internal/scoring"
)

const maxSuggestDistance = 2

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// NewStatsService creates a statistics service over the given repositories
func NewStatsService(repos *repository.Repositories, log logger.Logger) StatsService {
	if log == nil {
		log = logger.NewNop()
	}
	return &statsServiceImpl{repos: repos, logger: log}
}

// PlayerStatistics merges every player record by name into the ranked
// statistics table
func (s *statsServiceImpl) PlayerStatistics(ctx context.Context) ([]StatsRow, error) {
	players, err := s.repos.Player.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load player records", err)
		return nil, errors.DatabaseError("failed to load player records", err).WithOperation("PlayerStatistics")
	}

	merged := scoring.MergeStats(players)
	rows := make([]StatsRow, len(merged))
	for i, m := range merged {
		rows[i] = newStatsRow(m)
	}
	return rows, nil
}

// PlayerStatistic returns the merged row for one name, ranked against
// everyone else
func (s *statsServiceImpl) PlayerStatistic(ctx context.Context, name string) (*StatsRow, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidInput("player name is required", nil).WithOperation("PlayerStatistic")
	}

	records, err := s.repos.Player.ListByName(ctx, name)
	if err != nil {
		s.logger.Error("Failed to load player records", err, "name", name)
		return nil, errors.DatabaseError("failed to load player records", err).WithOperation("PlayerStatistic")
	}

	rows, err := s.PlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		appErr := errors.NotFound("no games recorded for player", nil).WithOperation("PlayerStatistic")
		if suggestion, ok := closestName(name, rows); ok {
			appErr.WithDetails("did you mean " + suggestion + "?")
		}
		return nil, appErr
	}
	for i := range rows {
		if rows[i].Name == name {
			return &rows[i], nil
		}
	}

	// Only reachable if records changed between the two reads.
	row := newStatsRow(scoring.MergeStats(records)[0])
	return &row, nil
}

// closestName suggests the known name nearest to name, if any lies within
// maxSuggestDistance edits
func closestName(name string, rows []StatsRow) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	target := strings.ToLower(name)
	for _, r := range rows {
		d := levenshtein.ComputeDistance(target, strings.ToLower(r.Name))
		if d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	return best, best != ""
}
