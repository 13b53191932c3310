package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const Center = 4

var (
	Corners = [4]int{0, 2, 6, 8}
	Edges   = [4]int{1, 3, 5, 7}
)

// MoveSelector picks the automated side's cell with a fixed one-ply heuristic:
// win now, block the opponent, center, corner, edge.
type MoveSelector struct{}

func NewMoveSelector() *MoveSelector {
	return &MoveSelector{}
}

// SelectMove returns the cell acting should occupy. Ties go to the lowest index.
// It panics if the board has no empty cell.
func (that *MoveSelector) SelectMove(board entity.Board, acting, opposing entity.Side) int {
	if cell, ok := findWinningMove(board, acting); ok {
		return cell
	}

	// block the opponent's winning move
	if cell, ok := findWinningMove(board, opposing); ok {
		return cell
	}

	if board.IsEmpty(Center) {
		return Center
	}

	if cell, ok := firstEmpty(board, Corners); ok {
		return cell
	}

	if cell, ok := firstEmpty(board, Edges); ok {
		return cell
	}

	panic(fmt.Errorf("select move: %w", apperror.ErrNoEmptyCell))
}

// findWinningMove returns the lowest empty cell that wins the board for side.
// board is a copy, so every candidate is tried on a private board.
func findWinningMove(board entity.Board, side entity.Side) (int, bool) {
	for _, cell := range board.EmptyCells() {
		hypothetical := board
		if err := hypothetical.ApplyMove(cell, side); err != nil {
			continue
		}

		if hypothetical.Evaluate().WonBy(side) {
			return cell, true
		}
	}

	return 0, false
}

func firstEmpty(board entity.Board, cells [4]int) (int, bool) {
	for _, cell := range cells {
		if board.IsEmpty(cell) {
			return cell, true
		}
	}

	return 0, false
}
