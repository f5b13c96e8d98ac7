// Package cache defines caching interfaces for the board service.
package cache

import (
	"context"

	"gumboard/internal/board/domain/entities"
)

// BoardCache кэширует метаданные досок для горячего пути листинга.
// Промах кэша возвращает (nil, nil) и не является ошибкой.
type BoardCache interface {
	GetBoard(ctx context.Context, boardID string) (*entities.Board, error)
	SetBoard(ctx context.Context, board *entities.Board) error
	Close() error
}
