package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type BotService interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

type moveRepo interface {
	Get(ctx context.Context, key string) (entity.ScoredMove, error)
	Set(ctx context.Context, key string, move entity.ScoredMove) error
}

type botService struct {
	logger   *slog.Logger
	moveRepo moveRepo
}

// NewBotService - moveRepo may be nil, then every decision is searched.
func NewBotService(logger *slog.Logger, moveRepo moveRepo) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		moveRepo: moveRepo,
	}
}

func (that *botService) ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	if !mark.IsPlayer() {
		return entity.NoMove, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if board.IsTerminal() {
		return entity.NoMove, apperror.ErrBoardTerminal
	}

	key := board.Key() + ":" + mark.String()

	if move, ok := that.cached(ctx, &board, key); ok {
		that.logger.Debug("bot move from cache", "cell", move.Index, "score", move.Score)
		return move.Index, nil
	}

	move, stats, err := tictactoe.BestMove(&board, mark)
	if err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to search: %w", err)
	}

	that.logger.Debug("bot move searched", "cell", move.Index, "score", move.Score, "nodes", stats.Nodes)

	if that.moveRepo != nil {
		if err = that.moveRepo.Set(ctx, key, move); err != nil {
			that.logger.Warn("could not cache bot move", "key", key, "error", err)
		}
	}

	return move.Index, nil
}

// cached - returns a stored decision only if it is still a legal move on board.
func (that *botService) cached(ctx context.Context, board *entity.Board, key string) (entity.ScoredMove, bool) {
	if that.moveRepo == nil {
		return entity.ScoredMove{}, false
	}

	move, err := that.moveRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrMoveNotFound) {
			that.logger.Warn("could not read bot move cache", "key", key, "error", err)
		}
		return entity.ScoredMove{}, false
	}

	probe := *board
	if !probe.ApplyMove(move.Index, entity.X) {
		that.logger.Warn("discarding illegal cached move", "key", key, "cell", move.Index)
		return entity.ScoredMove{}, false
	}

	return move, true
}
