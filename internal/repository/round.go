package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Round, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type dbRound struct {
	client *redis.Client
}

func NewRoundRepository(client *redis.Client) RoundRepository {
	return &dbRound{
		client: client,
	}
}

func roundKey(playerID string) string {
	return "round:" + playerID
}

func (that *dbRound) CreateOrUpdate(ctx context.Context, round *entity.Round) error {
	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	if err = that.client.Set(ctx, roundKey(round.PlayerID), roundJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set round: %w", err)
	}

	return nil
}

func (that *dbRound) GetByPlayerID(ctx context.Context, playerID string) (*entity.Round, error) {
	response, err := that.client.Get(ctx, roundKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRoundNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get round by player id: %w", err)
	}

	var round entity.Round
	if err = json.Unmarshal([]byte(response), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

func (that *dbRound) DeleteByPlayerID(ctx context.Context, playerID string) error {
	deleted, err := that.client.Del(ctx, roundKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete round by player id: %w", err)
	}

	if deleted == 0 {
		return ErrRoundNotFound
	}

	return nil
}
