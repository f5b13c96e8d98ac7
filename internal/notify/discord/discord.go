// Package discord реализует провайдера уведомлений для Discord webhook.
package discord

import (
	"context"
	"fmt"
	"time"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/notify"
)

// Константы оформления сообщений.
const (
	providerName = "discord"

	botUsername  = "Gumboard"
	botAvatarURL = "https://gumboard.com/logo/gumboard.svg"

	emojiAdded     = "➕"
	emojiCompleted = "✅"
	colorAdded     = 0x0099ff
	colorCompleted = 0x00ff00
)

// EmbedFooter - подпись embed-блока.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// Embed - один embed-блок сообщения Discord.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

// Message - полезная нагрузка Discord webhook.
type Message struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

// Provider реализует notify.Provider для Discord.
type Provider struct {
	sender *notify.Sender
}

// New создает провайдера Discord с указанным отправителем.
func New(sender *notify.Sender) *Provider {
	return &Provider{sender: sender}
}

// Name возвращает имя провайдера.
func (p *Provider) Name() string {
	return providerName
}

// WebhookURL возвращает Discord webhook организации.
func (p *Provider) WebhookURL(org *entities.Organization) string {
	return org.DiscordWebhookURL
}

// Enabled возвращает флаг Discord-уведомлений доски.
func (p *Provider) Enabled(board *entities.Board) bool {
	return board.SendDiscordUpdates
}

// FormatTodo строит embed-сообщение о действии над пунктом списка.
// Добавление отмечается плюсом на синем, завершение - галочкой на зеленом.
func (p *Provider) FormatTodo(content, boardName, userName string, action notify.Action) any {
	emoji, color, actionText := emojiAdded, colorAdded, string(notify.ActionAdded)
	if action == notify.ActionCompleted {
		emoji, color, actionText = emojiCompleted, colorCompleted, string(notify.ActionCompleted)
	}

	return Message{
		Username:  botUsername,
		AvatarURL: botAvatarURL,
		Embeds: []Embed{{
			Color:       color,
			Description: fmt.Sprintf("%s **%s**", emoji, content),
			Footer: &EmbedFooter{
				Text: fmt.Sprintf("%s by %s in %s", actionText, userName, boardName),
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
}

// FormatNote строит сообщение о созданной заметке: всегда форма "added"
// независимо от состояния пунктов списка.
func (p *Provider) FormatNote(note *entities.Note, boardName, userName string) any {
	return p.FormatTodo(notify.NoteText(note), boardName, userName, notify.ActionAdded)
}

// Send доставляет сообщение и возвращает корреляционный идентификатор доставки.
func (p *Provider) Send(ctx context.Context, webhookURL string, message any) (string, error) {
	if err := p.sender.Post(ctx, webhookURL, message); err != nil {
		return "", fmt.Errorf("discord: %w", err)
	}
	return notify.DeliveryToken(), nil
}

// Update повторно публикует сообщение с новым состоянием пункта.
// Discord webhook рассматривается как post-only: правка старых сообщений
// не выполняется.
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
