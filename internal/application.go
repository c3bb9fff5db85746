package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs one console game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the move cache, the bot and the console, then plays a game.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	moveRepo, closeRepo := newMoveRepository(ctx, log, conf)
	defer closeRepo()

	bot := service.NewBotService(logger, moveRepo)
	server := console.New(logger, bot, in, out)

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

// newMoveRepository - picks the configured cache. An unreachable redis downgrades to the
// in-memory cache, the game itself never needs it.
func newMoveRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveRepository, func()) {
	switch conf.Cache.Driver {
	case config.CacheNone:
		return nil, func() {}
	case config.CacheRedis:
		client, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			log.Warn("could not connect to redis storage, using memory cache", "error", err)
			return repository.NewMemoryMoveRepository(), func() {}
		}

		return repository.NewMoveRepository(client, conf.Cache.TTL), func() {
			if err = client.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}
	default:
		return repository.NewMemoryMoveRepository(), func() {}
	}
}
