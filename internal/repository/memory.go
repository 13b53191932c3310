package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// memoryRound keeps rounds in process. Values are copied in and out so callers
// never share a Round with the store.
type memoryRound struct {
	mu     sync.RWMutex
	rounds map[string]entity.Round
}

func NewMemoryRoundRepository() RoundRepository {
	return &memoryRound{
		rounds: make(map[string]entity.Round),
	}
}

func (that *memoryRound) CreateOrUpdate(_ context.Context, round *entity.Round) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rounds[round.PlayerID] = *round

	return nil
}

func (that *memoryRound) GetByPlayerID(_ context.Context, playerID string) (*entity.Round, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	round, ok := that.rounds[playerID]
	if !ok {
		return nil, ErrRoundNotFound
	}

	return &round, nil
}

func (that *memoryRound) DeleteByPlayerID(_ context.Context, playerID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rounds[playerID]; !ok {
		return ErrRoundNotFound
	}

	delete(that.rounds, playerID)

	return nil
}

type memoryRecord struct {
	mu      sync.RWMutex
	records map[string]entity.Record
}

func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecord{
		records: make(map[string]entity.Record),
	}
}

func (that *memoryRecord) CreateOrUpdate(_ context.Context, record *entity.Record) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[record.PlayerID] = *record

	return nil
}

func (that *memoryRecord) GetByPlayerID(_ context.Context, playerID string) (*entity.Record, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.records[playerID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	return &record, nil
}
