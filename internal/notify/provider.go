// Package notify реализует исходящие уведомления о событиях досок:
// политику отправки, форматирование по провайдерам и best-effort доставку.
package notify

import (
	"context"

	"gumboard/internal/board/domain/entities"
)

// Action задает действие над пунктом списка, о котором идет уведомление.
type Action string

// Поддерживаемые действия.
const (
	ActionAdded     Action = "added"
	ActionCompleted Action = "completed"
)

// Provider объединяет форматирование и доставку сообщений одного провайдера
// (Slack, Discord). Конкретные провайдеры выбираются конфигурацией организации.
type Provider interface {
	// Name возвращает имя провайдера, используемое при записи идентификатора доставки.
	Name() string
	// WebhookURL возвращает webhook-адрес организации для провайдера
	// или пустую строку, если адрес не настроен.
	WebhookURL(org *entities.Organization) string
	// Enabled возвращает флаг включения уведомлений провайдера на доске.
	Enabled(board *entities.Board) bool
	// FormatNote строит сообщение о созданной заметке. Всегда форма "added".
	FormatNote(note *entities.Note, boardName, userName string) any
	// FormatTodo строит сообщение о действии над пунктом списка.
	FormatTodo(content, boardName, userName string, action Action) any
	// Send доставляет сообщение и возвращает корреляционный идентификатор.
	Send(ctx context.Context, webhookURL string, message any) (string, error)
	// Update повторно публикует сообщение с новым состоянием пункта.
	// Редактирование ранее отправленных сообщений не выполняется.
	Update(ctx context.Context, webhookURL, content string, completed bool, boardName, userName string) error
}
