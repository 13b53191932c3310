package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Side is one of the two participants of a round. The zero value is not a valid side.
type Side uint8

const (
	Human Side = iota + 1
	Automated
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case Human:
		return Automated
	case Automated:
		return Human
	default:
		return s
	}
}

func (s Side) Valid() bool {
	return s == Human || s == Automated
}

func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case Automated:
		return "automated"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Cell is either Empty or occupied by a Side.
type Cell uint8

const Empty Cell = 0

// Occupied returns the cell value holding the given side.
func Occupied(side Side) Cell {
	return Cell(side)
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Side returns the side occupying the cell, false for an empty cell.
func (c Cell) Side() (Side, bool) {
	if c == Empty {
		return 0, false
	}

	return Side(c), true
}

// Line is a triplet of board indices that wins when held by one side.
type Line [3]int

// WinLines are checked in this order: rows, columns, diagonals.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major, index = row*3 + col.
// It is a value type: assigning a Board copies every cell.
type Board [BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

// ApplyMove occupies cell index with side. A failed move leaves the board untouched.
func (b *Board) ApplyMove(index int, side Side) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if !side.Valid() {
		return fmt.Errorf("%w: unknown %s", apperror.ErrInvalidMove, side)
	}

	if !b[index].IsEmpty() {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	b[index] = Occupied(side)

	return nil
}

// Evaluate classifies the board. The first winning line in WinLines order decides the winner.
func (b Board) Evaluate() GameState {
	for _, line := range WinLines {
		first, second, third := b[line[0]], b[line[1]], b[line[2]]
		if side, ok := first.Side(); ok && first == second && second == third {
			return WinFor(side)
		}
	}

	// the round continues until all the cells are occupied
	for _, cell := range b {
		if cell.IsEmpty() {
			return GameState{Outcome: Ongoing}
		}
	}

	return GameState{Outcome: Draw}
}

func (b Board) At(index int) Cell {
	return b[index]
}

// IsEmpty reports whether index is on the board and empty.
func (b Board) IsEmpty(index int) bool {
	return index >= 0 && index < BoardSize && b[index].IsEmpty()
}

// EmptyCells returns the empty indices in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell.IsEmpty() {
			cells = append(cells, i)
		}
	}

	return cells
}

func (b Board) Full() bool {
	for _, cell := range b {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}
