package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

type gameUseCase interface {
	StartRound(ctx context.Context, playerID string, humanFirst bool) (*usecase.TurnResult, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*usecase.TurnResult, error)
	GetRecord(ctx context.Context, playerID string) (*entity.Record, error)
}

// Icons are the marks drawn for each side.
type Icons struct {
	Human     string
	Automated string
}

// Console runs rounds for one player over a line based text terminal.
type Console struct {
	logger *slog.Logger
	game   gameUseCase

	playerID string
	icons    Icons

	in  io.Reader
	out io.Writer

	lines <-chan string
}

func New(logger *slog.Logger, game gameUseCase, playerID string, icons Icons, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		game:     game,
		playerID: playerID,
		icons:    icons,
		in:       in,
		out:      out,
	}
}

// Run plays rounds until the player declines a new one or input ends.
func (that *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	that.lines = readLines(that.in, done)

	err := that.session(ctx)
	if errors.Is(err, io.EOF) {
		that.printf("\nGoodbye!\n")
		return nil
	}

	return err
}

func (that *Console) session(ctx context.Context) error {
	for {
		record, err := that.game.GetRecord(ctx, that.playerID)
		if err != nil {
			return fmt.Errorf("failed to get record: %w", err)
		}

		that.printf("Your current record is: %d wins, %d losses, %d draws\n", record.Wins, record.Losses, record.Draws)

		again, err := that.askYesNo(ctx, "Would you like to start a new game? (y/n)")
		if err != nil {
			return err
		}

		if !again {
			that.printf("Goodbye!\n")
			return nil
		}

		humanFirst, err := that.askYesNo(ctx, "Would you like to go first? (y/n)")
		if err != nil {
			return err
		}

		result, err := that.game.StartRound(ctx, that.playerID, humanFirst)
		if err != nil {
			return fmt.Errorf("failed to start round: %w", err)
		}

		if err = that.playRound(ctx, result); err != nil {
			return err
		}
	}
}

func (that *Console) playRound(ctx context.Context, result *usecase.TurnResult) error {
	log := that.logger.With("method", "playRound", "round", result.Round.ID)

	that.announceReply(result.AutomatedCell)

	for !result.State.IsFinished() {
		that.printf("\n%s\n", RenderBoard(result.Round.Board, that.icons))

		cell, err := that.askCell(ctx)
		if err != nil {
			return err
		}

		next, err := that.game.MakeTurn(ctx, that.playerID, cell)
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.printf("Box %d is already taken, please choose another one.\n", cell+1)
			continue
		}

		if err != nil {
			log.Error("failed to make turn", "cell", cell, "error", err)
			return fmt.Errorf("failed to make turn: %w", err)
		}

		result = next
		that.announceReply(result.AutomatedCell)
	}

	that.printf("\n%s\n", RenderBoard(result.Round.Board, that.icons))

	switch {
	case result.State.WonBy(entity.Human):
		that.printf("%s wins! You WIN :>\n", that.icons.Human)
	case result.State.WonBy(entity.Automated):
		that.printf("%s wins! The computer wins :P\n", that.icons.Automated)
	default:
		that.printf("The game ends in a draw!\n")
	}

	return nil
}

func (that *Console) announceReply(cell int) {
	if cell != usecase.NoCell {
		that.printf("The computer chose box number %d\n", cell+1)
	}
}

// askCell returns the zero based cell for a 1..9 answer.
func (that *Console) askCell(ctx context.Context) (int, error) {
	for {
		answer, err := that.ask(ctx, "Please choose an unselected box and enter its digit (1-9)")
		if err != nil {
			return 0, err
		}

		digit, err := strconv.Atoi(answer)
		if err != nil || digit < 1 || digit > entity.BoardSize {
			that.printf("Invalid digit! Enter a number from 1 to 9.\n")
			continue
		}

		return digit - 1, nil
	}
}

func (that *Console) askYesNo(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := that.ask(ctx, question)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.printf("Unrecognised input!\n")
		}
	}
}

// ask prints question and waits for the next line. It returns io.EOF once input is exhausted.
func (that *Console) ask(ctx context.Context, question string) (string, error) {
	that.printf("%s\n> ", question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// readLines feeds lines from r until EOF, a read error or done, then closes the channel.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	return lines
}

// RenderBoard draws the board with icons, numbering empty cells 1..9.
func RenderBoard(board entity.Board, icons Icons) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}

		for col := range 3 {
			if col > 0 {
				sb.WriteString("|")
			}

			index := row*3 + col
			sb.WriteString(" " + cellMark(board[index], index, icons) + " ")
		}
	}

	return sb.String()
}

func cellMark(cell entity.Cell, index int, icons Icons) string {
	side, ok := cell.Side()
	if !ok {
		return strconv.Itoa(index + 1)
	}

	if side == entity.Human {
		return icons.Human
	}

	return icons.Automated
}
