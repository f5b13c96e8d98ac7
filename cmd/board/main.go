// Package main содержит точку входа сервиса досок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gumboard/internal/board/adapters/cache"
	httpServer "gumboard/internal/board/adapters/http"
	"gumboard/internal/board/adapters/postgres"
	"gumboard/internal/board/adapters/services"
	"gumboard/internal/board/app"
	"gumboard/internal/board/config"
	"gumboard/internal/board/db"
	"gumboard/internal/notify"
	"gumboard/internal/notify/discord"
	"gumboard/internal/notify/slack"
	"gumboard/pkg/logger"
	"gumboard/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BOARD_LOGGER_MODE"
	EnvLoggerLevel = "BOARD_LOGGER_LEVEL"
)

// Путь к директории с миграциями.
const migrationsDir = "migrations/board"

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "board service started"
	LogServiceShutdownDone = "board service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing board cache"
	LogInitNotifiers       = "initializing webhook notifiers"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database connection"
	LogClosingCache        = "closing board cache"
	LogDrainingNotifiers   = "waiting for in-flight notifications"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres, migrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		boardCache, err := cache.NewRedisBoardCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}

		repos := postgres.NewRepositoryFactory(database.Pool())

		log.Info(ctx, LogInitNotifiers)
		sender := notify.NewSender(cfg.Webhook.SendTimeout)
		dispatcher := notify.NewDispatcher(repos.NoteRepository(), cfg.Webhook.SendTimeout,
			slack.New(sender),
			discord.New(sender),
		)

		log.Info(ctx, LogInitServices)
		tokenService := services.NewJWT(cfg.JWT.SecretKey)
		noteService := app.NewNoteUseCase(
			repos.NoteRepository(),
			repos.BoardRepository(),
			repos.UserRepository(),
			repos.OrganizationRepository(),
			boardCache,
			dispatcher,
		)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, tokenService, noteService)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Дожидаемся незавершенных уведомлений.
			func(ctx context.Context) error {
				log.Info(ctx, LogDrainingNotifiers)
				dispatcher.Wait()
				return nil
			},
			// Закрытие кэша досок.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return boardCache.Close()
			},
			// Закрытие соединения с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
