package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIcons = Icons{Human: "X", Automated: "O"}

func newTestConsole(in io.Reader, out io.Writer) (*Console, *usecase.GameManager) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	game := usecase.NewGameManager(logger, repository.NewMemoryRoundRepository(), repository.NewMemoryRecordRepository(), tictactoe.NewMoveSelector())

	return New(logger, game, "local", testIcons, in, out), game
}

func TestConsole_Run(t *testing.T) {
	t.Run("Automated side wins after the human misses a block", func(t *testing.T) {
		// Given: the human goes first and plays boxes 1, 2 and 9
		var out bytes.Buffer
		c, game := newTestConsole(strings.NewReader("y\ny\n1\n2\n9\nn\n"), &out)

		// When: the session runs
		err := c.Run(context.Background())

		// Then: the automated replies are announced and the loss is recorded
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "The computer chose box number 5")
		assert.Contains(t, output, "The computer chose box number 3")
		assert.Contains(t, output, "The computer chose box number 7")
		assert.Contains(t, output, "O wins! The computer wins :P")
		assert.Contains(t, output, "Your current record is: 0 wins, 1 losses, 0 draws")
		assert.True(t, strings.HasSuffix(output, "Goodbye!\n"))

		record, err := game.GetRecord(context.Background(), "local")
		require.NoError(t, err)
		assert.Equal(t, 1, record.Losses)
	})

	t.Run("Automated side opens in the center", func(t *testing.T) {
		var out bytes.Buffer
		c, _ := newTestConsole(strings.NewReader("y\nn\n"), &out)

		err := c.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "The computer chose box number 5")
	})

	t.Run("Bad input is asked again", func(t *testing.T) {
		// Given: unknown answers, out of range digits and a taken box
		var out bytes.Buffer
		c, _ := newTestConsole(strings.NewReader("maybe\ny\ny\nabc\n10\n5\n5\n"), &out)

		// When: input ends in the middle of the round
		err := c.Run(context.Background())

		// Then: every bad answer is reported and the session ends cleanly
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "Unrecognised input!")
		assert.Equal(t, 2, strings.Count(output, "Invalid digit! Enter a number from 1 to 9."))
		assert.Contains(t, output, "The computer chose box number 1")
		assert.Contains(t, output, "Box 5 is already taken, please choose another one.")
		assert.True(t, strings.HasSuffix(output, "\nGoodbye!\n"))
	})

	t.Run("Declining the first round ends the session", func(t *testing.T) {
		var out bytes.Buffer
		c, _ := newTestConsole(strings.NewReader("n\n"), &out)

		err := c.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Your current record is: 0 wins, 0 losses, 0 draws")
		assert.NotContains(t, out.String(), "Would you like to go first?")
	})

	t.Run("Context cancellation stops waiting for input", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		c, _ := newTestConsole(reader, io.Discard)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// When: the context expires
		err := c.Run(ctx)

		// Then: Run returns the context error
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("Empty cells are numbered", func(t *testing.T) {
		expected := " 1 | 2 | 3 \n---+---+---\n 4 | 5 | 6 \n---+---+---\n 7 | 8 | 9 "

		assert.Equal(t, expected, RenderBoard(entity.NewBoard(), testIcons))
	})

	t.Run("Occupied cells use the side icons", func(t *testing.T) {
		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(0, entity.Human))
		require.NoError(t, board.ApplyMove(4, entity.Automated))

		expected := " # | 2 | 3 \n---+---+---\n 4 | @ | 6 \n---+---+---\n 7 | 8 | 9 "

		assert.Equal(t, expected, RenderBoard(board, Icons{Human: "#", Automated: "@"}))
	})
}
