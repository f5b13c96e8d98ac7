// Package repositories defines repository interfaces for the board service.
package repositories

import (
	"context"

	"gumboard/internal/board/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
type NoteRepository interface {
	// Create сохраняет заметку вместе с пунктами списка в одной транзакции
	// и возвращает идентификатор созданной заметки.
	Create(ctx context.Context, note *entities.Note) (string, error)
	// GetByID возвращает заметку с автором и упорядоченными пунктами списка.
	// Возвращает (nil, nil), если заметка не найдена.
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	// ListByBoard возвращает страницу активных заметок доски (новые первыми)
	// и общее количество активных заметок.
	ListByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entities.Note, int, error)
	// RecordDelivery сохраняет идентификатор доставленного сообщения провайдера
	// на заметке. Провайдер задается именем ("slack", "discord").
	RecordDelivery(ctx context.Context, noteID, provider, messageID string) error
}
