// Package cache содержит реализацию кэширования досок с использованием Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gumboard/internal/board/config"
	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/cache"
	redisdb "gumboard/pkg/db/redis"
	"gumboard/pkg/logger"
)

// Константы для логирования.
const (
	ErrorFailedToGet   = "failed to get board from redis"
	ErrorFailedToSet   = "failed to set board in redis"
	ErrorFailedToClose = "failed to close redis connection"
)

// boardKeyPrefix - префикс ключей кэша досок.
const boardKeyPrefix = "board:"

// RedisBoardCache реализует интерфейс cache.BoardCache с использованием Redis.
// Доски читаются в горячем пути листинга и почти не меняются, поэтому
// кэшируются целиком как JSON с коротким TTL.
type RedisBoardCache struct {
	client *redisdb.Client
	ttl    time.Duration
}

// NewRedisBoardCache создает новый экземпляр RedisBoardCache.
func NewRedisBoardCache(ctx context.Context, cfg *config.RedisConfig) (cache.BoardCache, error) {
	client, err := redisdb.NewClient(ctx, &redisdb.Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Password:       cfg.Password,
		DB:             cfg.DB,
		PoolSize:       cfg.PoolSize,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisBoardCache{
		client: client,
		ttl:    cfg.BoardTTL,
	}, nil
}

// GetBoard получает доску из кэша. Промах возвращает (nil, nil).
func (c *RedisBoardCache) GetBoard(ctx context.Context, boardID string) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("boardID", boardID))

	value, err := c.client.Get(ctx, boardKeyPrefix+boardID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var board entities.Board
	if err := json.Unmarshal([]byte(value), &board); err != nil {
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return &board, nil
}

// SetBoard сохраняет доску в кэше с настроенным TTL.
func (c *RedisBoardCache) SetBoard(ctx context.Context, board *entities.Board) error {
	log := logger.Log(ctx).With(zap.String("boardID", board.ID))

	value, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	if err := c.client.Set(ctx, boardKeyPrefix+board.ID, value, c.ttl); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisBoardCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
