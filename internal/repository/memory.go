package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type memoryMove struct {
	mu    sync.RWMutex
	moves map[string]entity.ScoredMove
}

func NewMemoryMoveRepository() MoveRepository {
	return &memoryMove{
		moves: make(map[string]entity.ScoredMove),
	}
}

func (that *memoryMove) Set(_ context.Context, key string, move entity.ScoredMove) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[key] = move

	return nil
}

func (that *memoryMove) Get(_ context.Context, key string) (entity.ScoredMove, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.moves[key]
	if !ok {
		return entity.ScoredMove{Index: entity.NoMove}, ErrMoveNotFound
	}

	return move, nil
}
