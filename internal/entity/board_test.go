package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	h = Cell(Human)
	a = Cell(Automated)
	e = Empty
)

func TestSide(t *testing.T) {
	t.Run("Opponent swaps the two sides", func(t *testing.T) {
		assert.Equal(t, Automated, Human.Opponent())
		assert.Equal(t, Human, Automated.Opponent())
	})

	t.Run("Zero side is not valid", func(t *testing.T) {
		assert.False(t, Side(0).Valid())
		assert.False(t, Side(3).Valid())
		assert.True(t, Human.Valid())
		assert.True(t, Automated.Valid())
	})
}

func TestCell(t *testing.T) {
	t.Run("Empty cell has no side", func(t *testing.T) {
		_, ok := Empty.Side()

		assert.False(t, ok)
		assert.True(t, Empty.IsEmpty())
	})

	t.Run("Occupied cell reports its side", func(t *testing.T) {
		side, ok := Occupied(Automated).Side()

		require.True(t, ok)
		assert.Equal(t, Automated, side)
		assert.False(t, Occupied(Automated).IsEmpty())
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: the human plays the center
		err := board.ApplyMove(4, Human)

		// Then: only the center is occupied by the human
		require.NoError(t, err)
		assert.Equal(t, Board{e, e, e, e, h, e, e, e, e}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is held by the human
		board := Board{h, e, e, e, e, e, e, e, e}
		before := board

		// When: the automated side tries the same cell
		err := board.ApplyMove(0, Automated)

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, board)
	})

	t.Run("Error on out of range index", func(t *testing.T) {
		for _, index := range []int{-1, 9, 20} {
			// Given: an empty board
			board := NewBoard()

			// When: an index outside the board is played
			err := board.ApplyMove(index, Human)

			// Then: ErrInvalidMove is returned and the board is still empty
			require.ErrorIs(t, err, apperror.ErrInvalidMove, "index %d", index)
			assert.Equal(t, NewBoard(), board)
		}
	})

	t.Run("Error on unknown side", func(t *testing.T) {
		board := NewBoard()

		err := board.ApplyMove(0, Side(0))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, NewBoard(), board)
	})

	t.Run("Failure is idempotent", func(t *testing.T) {
		// Given: a board with one occupied cell
		board := Board{e, e, a, e, e, e, e, e, e}
		before := board

		// When: the same illegal move is repeated
		for range 3 {
			require.ErrorIs(t, board.ApplyMove(2, Human), apperror.ErrInvalidMove)
		}

		// Then: the board never changed
		assert.Equal(t, before, board)
	})
}

func TestBoard_Evaluate(t *testing.T) {
	for i, line := range WinLines {
		// Given: a board where only the cells of one line are held by a side
		human, automated := NewBoard(), NewBoard()
		for _, index := range line {
			human[index] = h
			automated[index] = a
		}

		// Then: that side wins
		assert.Equal(t, WinFor(Human), human.Evaluate(), "line %d", i)
		assert.Equal(t, WinFor(Automated), automated.Evaluate(), "line %d", i)
	}

	t.Run("Empty board is ongoing", func(t *testing.T) {
		assert.Equal(t, GameState{Outcome: Ongoing}, NewBoard().Evaluate())
	})

	t.Run("Win on a full board", func(t *testing.T) {
		// Given: the last move completed the anti-diagonal
		board := Board{
			h, a, a,
			a, a, h,
			a, h, h,
		}

		// Then: the automated side wins even though the board is full
		assert.Equal(t, WinFor(Automated), board.Evaluate())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: [X,O,X,O,X,O,O,X,O] with no three in a row
		board := Board{
			h, a, h,
			a, h, a,
			a, h, a,
		}

		// Then: the board is a draw
		assert.Equal(t, GameState{Outcome: Draw}, board.Evaluate())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		board := Board{
			h, a, e,
			e, h, e,
			e, e, a,
		}

		assert.True(t, board.Evaluate().IsOngoing())
	})

	t.Run("Rows are checked before rows further down", func(t *testing.T) {
		// Given: a constructed board where both sides hold a row
		board := Board{
			a, a, a,
			e, e, e,
			h, h, h,
		}

		// Then: the first row in table order decides
		assert.Equal(t, WinFor(Automated), board.Evaluate())
	})

	t.Run("Columns are checked left to right", func(t *testing.T) {
		board := Board{
			h, e, a,
			h, e, a,
			h, e, a,
		}

		assert.Equal(t, WinFor(Human), board.Evaluate())
	})

	t.Run("Evaluate does not mutate the board", func(t *testing.T) {
		board := Board{h, h, h, e, a, a, e, e, e}
		before := board

		_ = board.Evaluate()

		assert.Equal(t, before, board)
	})
}

// Every one of the 3^9 cell assignments is classified consistently with the line table.
func TestBoard_EvaluateAllBoards(t *testing.T) {
	cells := [3]Cell{e, h, a}

	total := 1
	for range BoardSize {
		total *= len(cells)
	}

	for n := range total {
		var board Board
		for i, rest := 0, n; i < BoardSize; i, rest = i+1, rest/3 {
			board[i] = cells[rest%3]
		}

		state := board.Evaluate()

		var first *Side
		for _, line := range WinLines {
			if side, ok := board[line[0]].Side(); ok && board[line[0]] == board[line[1]] && board[line[1]] == board[line[2]] {
				first = &side
				break
			}
		}

		switch {
		case first != nil:
			require.Equal(t, WinFor(*first), state, "board %v", board)
		case board.Full():
			require.Equal(t, GameState{Outcome: Draw}, state, "board %v", board)
		default:
			require.Equal(t, GameState{Outcome: Ongoing}, state, "board %v", board)
		}
	}
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{
		h, e, a,
		e, h, e,
		a, e, h,
	}

	assert.Equal(t, []int{1, 3, 5, 7}, board.EmptyCells())
	assert.True(t, board.IsEmpty(1))
	assert.False(t, board.IsEmpty(0))
	assert.False(t, board.IsEmpty(-1))
	assert.False(t, board.IsEmpty(9))
	assert.False(t, board.Full())
	assert.Equal(t, a, board.At(2))
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	// Given: a board and a copy of it
	board := NewBoard()
	hypothetical := board

	// When: only the copy is played on
	require.NoError(t, hypothetical.ApplyMove(0, Automated))

	// Then: the copied-from board stays empty
	assert.Equal(t, NewBoard(), board)
	assert.NotEqual(t, board, hypothetical)
}
