package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
)

// NoCell marks a TurnResult where a side did not move.
const NoCell = -1

type roundRepo interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Round, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type recordRepo interface {
	CreateOrUpdate(ctx context.Context, record *entity.Record) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Record, error)
}

type moveSelector interface {
	SelectMove(board entity.Board, acting, opposing entity.Side) int
}

// TurnResult is the round after a coordinator step, with the state evaluated after the last move.
type TurnResult struct {
	Round         *entity.Round
	State         entity.GameState
	AutomatedCell int
}

// GameManager alternates the human and the automated side over a player's round
// and keeps the player's record when a round ends.
type GameManager struct {
	logger *slog.Logger

	roundRepo  roundRepo
	recordRepo recordRepo
	selector   moveSelector

	newID func() string
}

func NewGameManager(logger *slog.Logger, roundRepo roundRepo, recordRepo recordRepo, selector moveSelector) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		roundRepo:  roundRepo,
		recordRepo: recordRepo,
		selector:   selector,

		newID: uuid.NewString,
	}
}

// StartRound opens a fresh round for the player, discarding any open one.
// When the human does not go first the automated side has already moved.
func (that *GameManager) StartRound(ctx context.Context, playerID string, humanFirst bool) (*TurnResult, error) {
	log := that.logger.With("method", "StartRound", "player", playerID)

	if err := that.roundRepo.DeleteByPlayerID(ctx, playerID); err == nil {
		log.Info("open round abandoned")
	} else if !errors.Is(err, repository.ErrRoundNotFound) {
		return nil, fmt.Errorf("failed to discard open round: %w", err)
	}

	starter := entity.Automated
	if humanFirst {
		starter = entity.Human
	}

	round := entity.NewRound(that.newID(), playerID, starter)
	result := &TurnResult{Round: round, AutomatedCell: NoCell}

	if starter == entity.Automated {
		cell, err := that.automatedTurn(round)
		if err != nil {
			return nil, err
		}

		result.AutomatedCell = cell
	}

	result.State = round.State()

	if err := that.updateRound(ctx, round); err != nil {
		return nil, err
	}

	log.Info("round started", "round", round.ID, "starter", starter.String())

	return result, nil
}

// MakeTurn plays the human move and, if the round goes on, the automated reply.
// An illegal human move returns the error and changes nothing.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "player", playerID)

	round, err := that.GetRound(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = round.MakeTurn(entity.Human, cell); err != nil {
		log.Debug("human move rejected", "cell", cell, "error", err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	result := &TurnResult{Round: round, AutomatedCell: NoCell}

	if !round.IsFinished() {
		if result.AutomatedCell, err = that.automatedTurn(round); err != nil {
			return nil, err
		}
	}

	result.State = round.State()

	log.Debug("turn played", "round", round.ID, "cell", cell, "reply", result.AutomatedCell, "state", result.State.String())

	if result.State.IsFinished() {
		if err = that.finishRound(ctx, round, result.State); err != nil {
			return nil, err
		}

		return result, nil
	}

	if err = that.updateRound(ctx, round); err != nil {
		return nil, err
	}

	return result, nil
}

// GetRound returns the player's open round or apperror.ErrNoActiveRound.
func (that *GameManager) GetRound(ctx context.Context, playerID string) (*entity.Round, error) {
	round, err := that.roundRepo.GetByPlayerID(ctx, playerID)
	if errors.Is(err, repository.ErrRoundNotFound) {
		return nil, apperror.ErrNoActiveRound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	return round, nil
}

// AbandonRound drops the open round without counting it in the record.
func (that *GameManager) AbandonRound(ctx context.Context, playerID string) error {
	err := that.roundRepo.DeleteByPlayerID(ctx, playerID)
	if errors.Is(err, repository.ErrRoundNotFound) {
		return apperror.ErrNoActiveRound
	}

	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}

	that.logger.Info("round abandoned", "method", "AbandonRound", "player", playerID)

	return nil
}

// GetRecord returns the player's record; a player who never finished a round has an empty one.
func (that *GameManager) GetRecord(ctx context.Context, playerID string) (*entity.Record, error) {
	record, err := that.recordRepo.GetByPlayerID(ctx, playerID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return &entity.Record{PlayerID: playerID}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

func (that *GameManager) automatedTurn(round *entity.Round) (int, error) {
	cell := that.selector.SelectMove(round.Board, entity.Automated, entity.Human)

	if err := round.MakeTurn(entity.Automated, cell); err != nil {
		return NoCell, fmt.Errorf("automated side failed to make turn: %w", err)
	}

	return cell, nil
}

func (that *GameManager) finishRound(ctx context.Context, round *entity.Round, state entity.GameState) error {
	log := that.logger.With("method", "finishRound", "player", round.PlayerID, "round", round.ID)

	record, err := that.GetRecord(ctx, round.PlayerID)
	if err != nil {
		return err
	}

	record.Register(state)

	if err = that.recordRepo.CreateOrUpdate(ctx, record); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	if err = that.roundRepo.DeleteByPlayerID(ctx, round.PlayerID); err != nil && !errors.Is(err, repository.ErrRoundNotFound) {
		log.Error("failed to delete round", "error", err)
	}

	log.Info("round finished", "state", state.String(), "wins", record.Wins, "losses", record.Losses, "draws", record.Draws)

	return nil
}

func (that *GameManager) updateRound(ctx context.Context, round *entity.Round) error {
	if err := that.roundRepo.CreateOrUpdate(ctx, round); err != nil {
		return fmt.Errorf("failed to update round: %w", err)
	}

	return nil
}
