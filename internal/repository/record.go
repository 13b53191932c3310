package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrRecordNotFound = errors.New("record not found")

type RecordRepository interface {
	CreateOrUpdate(ctx context.Context, record *entity.Record) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Record, error)
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func recordKey(playerID string) string {
	return "record:" + playerID
}

func (that *dbRecord) CreateOrUpdate(ctx context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err = that.client.Set(ctx, recordKey(record.PlayerID), recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record: %w", err)
	}

	return nil
}

func (that *dbRecord) GetByPlayerID(ctx context.Context, playerID string) (*entity.Record, error) {
	response, err := that.client.Get(ctx, recordKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get record by player id: %w", err)
	}

	var record entity.Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}
