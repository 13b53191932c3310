package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrRoundFinished = errors.New("round is already finished")
	ErrNoActiveRound = errors.New("no active round")
	ErrNoEmptyCell   = errors.New("board has no empty cell")
)
