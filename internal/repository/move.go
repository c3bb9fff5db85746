package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository keeps computer decisions keyed by position, never games.
type MoveRepository interface {
	Get(ctx context.Context, key string) (entity.ScoredMove, error)
	Set(ctx context.Context, key string, move entity.ScoredMove) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository - redis backed move cache, ttl 0 keeps entries forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Set(ctx context.Context, key string, move entity.ScoredMove) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(key), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, key string) (entity.ScoredMove, error) {
	response, err := that.client.Get(ctx, moveKey(key)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.ScoredMove{Index: entity.NoMove}, ErrMoveNotFound
	}

	if err != nil {
		return entity.ScoredMove{Index: entity.NoMove}, fmt.Errorf("failed to get move: %w", err)
	}

	var move entity.ScoredMove
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.ScoredMove{Index: entity.NoMove}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func moveKey(key string) string {
	return "move:" + key
}
