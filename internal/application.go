package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gladiatur-starter/internal/config"
	"github.com/rocketscienceinc/gladiatur-starter/internal/repository"
	"github.com/rocketscienceinc/gladiatur-starter/internal/repository/storage"
	"github.com/rocketscienceinc/gladiatur-starter/internal/service"
	"github.com/rocketscienceinc/gladiatur-starter/internal/usecase"
	"github.com/rocketscienceinc/gladiatur-starter/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	gameRepo, closeStorage, err := initGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	webhook := usecase.NewWebhookUseCase(logger, service.NewBotService(), gameRepo)
	server := rest.New(logger, conf, webhook)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		httpErrCh <- server.Start()
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-httpErrCh
}

// initGameRepository - picks the redis ledger when enabled, otherwise a ledger that remembers nothing.
func initGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, game ledger is off")
		return repository.NewNopGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Game ledger stored in redis", "addr", redisAddrString)

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeStorage, nil
}
