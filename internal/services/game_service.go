package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"

	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/metrics"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/internal/scoring"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// gameServiceImpl implements GameService
type gameServiceImpl struct {
	repos   *repository.Repositories
	logger  logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// NewGameService creates a game service over the given repositories
func NewGameService(repos *repository.Repositories, log logger.Logger, m *metrics.Metrics) GameService {
	if log == nil {
		log = logger.NewNop()
	}
	return &gameServiceImpl{
		repos:   repos,
		logger:  log,
		metrics: m,
		tracer:  otel.Tracer("somenerts/services"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateGame stores a new active game with one player record per name
func (s *gameServiceImpl) CreateGame(ctx context.Context, req NewGameRequest) (_ *GameDetail, err error) {
	ctx, span := s.tracer.Start(ctx, "GameService.CreateGame",
		trace.WithAttributes(attribute.Int("game.players_requested", len(req.PlayerNames))),
	)
	defer func() { finishSpan(span, err) }()

	req.PlayerNames = scoring.NormalizeNames(req.PlayerNames)
	if err := validate.Struct(req); err != nil {
		return nil, errors.ValidationError(
			fmt.Sprintf("a game needs %d to %d named players and a positive winning score when one is set", scoring.MinPlayers, scoring.MaxPlayers), err,
		).WithDetails(err.Error()).WithOperation("CreateGame")
	}
	if dup, ok := duplicateName(req.PlayerNames); ok {
		return nil, errors.ValidationError("player names must be unique within a game", nil).
			WithDetails(dup).WithOperation("CreateGame")
	}

	game := &models.Game{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if req.WinningScore != nil {
		game.WinningScore = *req.WinningScore
	}

	err = s.repos.Tx.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Game.Create(ctx, game); err != nil {
			return s.dbError("CreateGame", "failed to create game", err)
		}
		for _, name := range req.PlayerNames {
			player := models.Player{
				ID:         uuid.New(),
				GameID:     game.ID,
				Name:       name,
				TotalGames: 1,
			}
			if err := tx.Player.Create(ctx, &player); err != nil {
				return s.dbError("CreateGame", "failed to create player", err, "name", name)
			}
			game.Players = append(game.Players, player)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.GameCreated(len(game.Players))
	s.logger.Info("Game created", "game_id", game.ID, "players", len(game.Players), "winning_score", game.WinningScore)

	// Players come back from storage ordered by name.
	return s.GetGame(ctx, game.ID)
}

// GetGame loads a game with its players, rounds and derived standings
func (s *gameServiceImpl) GetGame(ctx context.Context, id uuid.UUID) (*GameDetail, error) {
	game, err := s.loadGame(ctx, s.repos, id, "GetGame")
	if err != nil {
		return nil, err
	}
	return buildDetail(game), nil
}

// ListGames returns games newest first
func (s *gameServiceImpl) ListGames(ctx context.Context, filter models.GameFilter) ([]GameSummary, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	games, err := s.repos.Game.List(ctx, filter)
	if err != nil {
		return nil, s.dbError("ListGames", "failed to list games", err)
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, g := range games {
		players, err := s.repos.Player.ListByGame(ctx, g.ID)
		if err != nil {
			return nil, s.dbError("ListGames", "failed to load players", err, "game_id", g.ID)
		}
		rounds, err := s.repos.Round.CountByGame(ctx, g.ID)
		if err != nil {
			return nil, s.dbError("ListGames", "failed to count rounds", err, "game_id", g.ID)
		}

		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Name
		}
		summaries = append(summaries, GameSummary{
			ID:           g.ID,
			WinningScore: g.WinningScore,
			IsActive:     g.IsActive,
			CreatedAt:    g.CreatedAt,
			EndedAt:      g.EndedAt,
			PlayerNames:  names,
			RoundCount:   rounds,
		})
	}
	return summaries, nil
}

// ListRounds returns a game's rounds in order
func (s *gameServiceImpl) ListRounds(ctx context.Context, gameID uuid.UUID) ([]models.Round, error) {
	if _, err := s.repos.Game.GetByID(ctx, gameID); err != nil {
		return nil, s.lookupError("ListRounds", gameID, err)
	}
	rounds, err := s.repos.Round.ListByGame(ctx, gameID)
	if err != nil {
		return nil, s.dbError("ListRounds", "failed to load rounds", err, "game_id", gameID)
	}
	return rounds, nil
}

// AddRound records the next round of an active game
func (s *gameServiceImpl) AddRound(ctx context.Context, gameID uuid.UUID, req RoundRequest) (_ *models.Round, err error) {
	ctx, span := s.tracer.Start(ctx, "GameService.AddRound",
		trace.WithAttributes(attribute.String("game.id", gameID.String())),
	)
	defer func() { finishSpan(span, err) }()

	if err := validate.Struct(req); err != nil {
		return nil, errors.ValidationError("a round needs a score for every player", err).
			WithDetails(err.Error()).WithOperation("AddRound")
	}

	var round *models.Round
	err = s.repos.Tx.WithTransaction(ctx, func(tx *repository.Repositories) error {
		game, err := tx.Game.GetByID(ctx, gameID)
		if err != nil {
			return s.lookupError("AddRound", gameID, err)
		}
		if !game.IsActive {
			return errors.Conflict("game has already ended", nil).WithOperation("AddRound")
		}

		players, err := tx.Player.ListByGame(ctx, gameID)
		if err != nil {
			return s.dbError("AddRound", "failed to load players", err, "game_id", gameID)
		}
		if err := scoring.ValidateRound(players, req.Scores); err != nil {
			return errors.ValidationError("invalid round", err).WithDetails(err.Error()).WithOperation("AddRound")
		}

		count, err := tx.Round.CountByGame(ctx, gameID)
		if err != nil {
			return s.dbError("AddRound", "failed to count rounds", err, "game_id", gameID)
		}

		round = &models.Round{
			ID:        uuid.New(),
			GameID:    gameID,
			Number:    count + 1,
			CreatedAt: s.now(),
		}
		for _, p := range players {
			round.Scores = append(round.Scores, models.Score{
				ID:       uuid.New(),
				RoundID:  round.ID,
				PlayerID: p.ID,
				Value:    req.Scores[p.ID],
			})
		}
		if err := tx.Round.Create(ctx, round); err != nil {
			return s.dbError("AddRound", "failed to save round", err, "game_id", gameID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RoundRecorded()
	s.logger.Info("Round recorded", "game_id", gameID, "round", round.Number)
	return round, nil
}

// EndGame concludes an active game and folds its totals into the players'
// lifetime counters. Concluding happens at most once per game.
func (s *gameServiceImpl) EndGame(ctx context.Context, id uuid.UUID) (_ *GameResult, err error) {
	ctx, span := s.tracer.Start(ctx, "GameService.EndGame",
		trace.WithAttributes(attribute.String("game.id", id.String())),
	)
	defer func() { finishSpan(span, err) }()

	var result *GameResult
	err = s.repos.Tx.WithTransaction(ctx, func(tx *repository.Repositories) error {
		game, err := s.loadGame(ctx, tx, id, "EndGame")
		if err != nil {
			return err
		}
		if !game.IsActive {
			return errors.Conflict("game has already ended", nil).WithOperation("EndGame")
		}

		outcome := scoring.Conclude(game.Players, game.Rounds)
		for _, p := range outcome.Apply(game.Players) {
			if err := tx.Player.UpdateTotals(ctx, &p); err != nil {
				return s.dbError("EndGame", "failed to update player totals", err, "player_id", p.ID)
			}
		}

		endedAt := s.now()
		if err := tx.Game.MarkEnded(ctx, id, endedAt); err != nil {
			if stderrors.Is(err, repository.ErrNotFound) {
				return errors.Conflict("game has already ended", err).WithOperation("EndGame")
			}
			return s.dbError("EndGame", "failed to end game", err, "game_id", id)
		}

		result = &GameResult{
			GameID:    id,
			EndedAt:   endedAt,
			MaxTotal:  outcome.MaxTotal,
			Standings: outcome.Standings,
		}
		for _, st := range outcome.Standings {
			if outcome.IsWinner(st.PlayerID) {
				result.Winners = append(result.Winners, st)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.GameEnded()
	s.logger.Info("Game ended", "game_id", id, "winners", len(result.Winners), "max_total", result.MaxTotal)
	return result, nil
}

// DeleteGame removes a game with its players, rounds and scores
func (s *gameServiceImpl) DeleteGame(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := s.tracer.Start(ctx, "GameService.DeleteGame",
		trace.WithAttributes(attribute.String("game.id", id.String())),
	)
	defer func() { finishSpan(span, err) }()

	if err := s.repos.Game.Delete(ctx, id); err != nil {
		return s.lookupError("DeleteGame", id, err)
	}
	s.metrics.GameDeleted()
	s.logger.Info("Game deleted", "game_id", id)
	return nil
}

func (s *gameServiceImpl) loadGame(ctx context.Context, repos *repository.Repositories, id uuid.UUID, op string) (*models.Game, error) {
	game, err := repos.Game.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(op, id, err)
	}
	if game.Players, err = repos.Player.ListByGame(ctx, id); err != nil {
		return nil, s.dbError(op, "failed to load players", err, "game_id", id)
	}
	if game.Rounds, err = repos.Round.ListByGame(ctx, id); err != nil {
		return nil, s.dbError(op, "failed to load rounds", err, "game_id", id)
	}
	return game, nil
}

// lookupError maps a missing game to NOT_FOUND and anything else to a
// logged DATABASE_ERROR.
func (s *gameServiceImpl) lookupError(op string, id uuid.UUID, err error) error {
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("game not found", err).WithDetails(id.String()).WithOperation(op)
	}
	return s.dbError(op, "failed to load game", err, "game_id", id)
}

func (s *gameServiceImpl) dbError(op, msg string, err error, fields ...interface{}) error {
	s.logger.Error(msg, err, append(fields, "operation", op)...)
	return errors.DatabaseError(msg, err).WithOperation(op)
}

func buildDetail(game *models.Game) *GameDetail {
	totals := scoring.Totals(game.Players, game.Rounds)
	detail := &GameDetail{
		Game:         *game,
		Standings:    scoring.Standings(game.Players, game.Rounds),
		HasWinner:    scoring.HasWinner(game.WinningScore, totals),
		CurrentRound: scoring.NextRoundNumber(game.Rounds),
	}
	if w, ok := scoring.Winner(game); ok {
		detail.Winner = &w
	}
	return detail
}

// finishSpan records err on the span and ends it
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// duplicateName returns the first name that repeats under Unicode case
// folding, so "Zoë" and "ZOË" collide.
func duplicateName(names []string) (string, bool) {
	fold := cases.Fold()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := fold.String(n)
		if seen[key] {
			return n, true
		}
		seen[key] = true
	}
	return "", false
}
