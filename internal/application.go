package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
)

// RunApp - runs a console session for the configured player, with the HTTP server next to it when a port is set.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	if conf.HTTPPort != "" {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			httpErrCh <- rest.New(logger, gameManager).Start(ctx, conf.HTTPPort)
		}()
	}

	// run console session
	consoleErrCh := make(chan error, 1)
	go func() {
		icons := console.Icons{Human: conf.Icons.Human, Automated: conf.Icons.Automated}
		consoleErrCh <- console.New(logger, gameManager, conf.PlayerID, icons, in, out).Run(ctx)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	case err = <-consoleErrCh:
		cancel()

		if conf.HTTPPort != "" {
			if httpErr := <-httpErrCh; httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}

		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("console session error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// PrintRecord writes the configured player's record to out.
func PrintRecord(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	ctx := context.Background()

	gameManager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	record, err := gameManager.GetRecord(ctx, conf.PlayerID)
	if err != nil {
		return fmt.Errorf("could not get record: %w", err)
	}

	_, err = fmt.Fprintf(out, "%s: %d wins, %d losses, %d draws (%d played)\n",
		record.PlayerID, record.Wins, record.Losses, record.Draws, record.Played())

	return err
}

func newGameManager(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.GameManager, func(), error) {
	log := logger.With("component", "app", "storage", conf.Storage.Driver)

	selector := tictactoe.NewMoveSelector()

	if conf.Storage.Driver != config.StorageRedis {
		gameManager := usecase.NewGameManager(logger,
			repository.NewMemoryRoundRepository(), repository.NewMemoryRecordRepository(), selector)

		return gameManager, func() {}, nil
	}

	redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	gameManager := usecase.NewGameManager(logger,
		repository.NewRoundRepository(redisStorage), repository.NewRecordRepository(redisStorage), selector)

	return gameManager, closeStorage, nil
}
