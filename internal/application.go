package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/droptoken-backend/internal/config"
	"github.com/rocketscienceinc/droptoken-backend/internal/droptoken"
	"github.com/rocketscienceinc/droptoken-backend/internal/repository"
	"github.com/rocketscienceinc/droptoken-backend/internal/repository/storage"
	"github.com/rocketscienceinc/droptoken-backend/internal/service"
	"github.com/rocketscienceinc/droptoken-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := droptoken.NewRegistry(droptoken.Rules{
		AllowedPlayers: conf.Game.AllowedPlayers,
		Rows:           conf.Game.Rows,
		Columns:        conf.Game.Columns,
		WinningLength:  conf.Game.WinningLength,
	})

	var games service.GameService
	if conf.Redis.Enabled {
		redisStorage, err := connectRedis(ctx, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		events := repository.NewEventRepository(redisStorage.Connection, conf.Redis.ChannelPrefix)
		games = service.NewGameService(logger, registry, events)
		log.Info("Publishing move events to redis", "addr", conf.Redis.GetRedisAddr())
	} else {
		games = service.NewGameService(logger, registry, nil)
	}

	router := rest.NewRouter(logger, rest.NewDropTokenHandler(logger, games))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "rules", registry.Rules())
	if err := rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func connectRedis(ctx context.Context, conf *config.Config) (*storage.RedisStorage, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}
