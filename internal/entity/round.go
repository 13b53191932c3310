package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Round is a single game from an empty board to a Win or Draw.
type Round struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Board    Board  `json:"board"`
	Turn     Side   `json:"turn,omitempty"`
	Starter  Side   `json:"starter"`
	Moves    int    `json:"moves"`
}

func NewRound(id, playerID string, starter Side) *Round {
	return &Round{
		ID:       id,
		PlayerID: playerID,
		Board:    NewBoard(),
		Turn:     starter,
		Starter:  starter,
	}
}

// MakeTurn plays cell for side. On error the round is left as it was.
func (that *Round) MakeTurn(side Side, cell int) error {
	if that.IsFinished() {
		return apperror.ErrRoundFinished
	}

	if that.Turn != side {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	if err := that.Board.ApplyMove(cell, side); err != nil {
		return err
	}

	that.Moves++

	if that.State().IsFinished() {
		that.Turn = 0
		return nil
	}

	that.Turn = side.Opponent()

	return nil
}

func (that *Round) State() GameState {
	return that.Board.Evaluate()
}

func (that *Round) IsFinished() bool {
	return that.State().IsFinished()
}
