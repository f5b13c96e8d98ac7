// Package slack реализует провайдера уведомлений для Slack incoming webhook.
package slack

import (
	"context"
	"fmt"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/notify"
)

// Константы оформления сообщений.
const (
	providerName = "slack"

	botUsername = "Gumboard"
	botIcon     = ":clipboard:"

	emojiAdded     = ":heavy_plus_sign:"
	emojiCompleted = ":white_check_mark:"
)

// Message - полезная нагрузка Slack incoming webhook: единый текстовый блок.
type Message struct {
	Text      string `json:"text"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// Provider реализует notify.Provider для Slack.
type Provider struct {
	sender *notify.Sender
}

// New создает провайдера Slack с указанным отправителем.
func New(sender *notify.Sender) *Provider {
	return &Provider{sender: sender}
}

// Name возвращает имя провайдера.
func (p *Provider) Name() string {
	return providerName
}

// WebhookURL возвращает Slack webhook организации.
func (p *Provider) WebhookURL(org *entities.Organization) string {
	return org.SlackWebhookURL
}

// Enabled возвращает флаг Slack-уведомлений доски.
func (p *Provider) Enabled(board *entities.Board) bool {
	return board.SendSlackUpdates
}

// FormatTodo строит текстовое сообщение о действии над пунктом списка.
func (p *Provider) FormatTodo(content, boardName, userName string, action notify.Action) any {
	emoji, actionText := emojiAdded, string(notify.ActionAdded)
	if action == notify.ActionCompleted {
		emoji, actionText = emojiCompleted, string(notify.ActionCompleted)
	}

	return Message{
		Text:      fmt.Sprintf("%s *%s*\n_%s by %s in %s_", emoji, content, actionText, userName, boardName),
		Username:  botUsername,
		IconEmoji: botIcon,
	}
}

// FormatNote строит сообщение о созданной заметке: всегда форма "added".
func (p *Provider) FormatNote(note *entities.Note, boardName, userName string) any {
	return p.FormatTodo(notify.NoteText(note), boardName, userName, notify.ActionAdded)
}

// Send доставляет сообщение и возвращает корреляционный идентификатор доставки.
func (p *Provider) Send(ctx context.Context, webhookURL string, message any) (string, error) {
	if err := p.sender.Post(ctx, webhookURL, message); err != nil {
		return "", fmt.Errorf("slack: %w", err)
	}
	return notify.DeliveryToken(), nil
}

// Update повторно публикует сообщение с новым состоянием пункта.
func (p *Provider) Update(ctx context.Context, webhookURL, content string, completed bool, boardName, userName string) error {
	action := notify.ActionAdded
	if completed {
		action = notify.ActionCompleted
	}

	message := p.FormatTodo(content, boardName, userName, action)
	if _, err := p.Send(ctx, webhookURL, message); err != nil {
		return err
	}
	return nil
}
