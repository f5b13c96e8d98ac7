package entities

// Organization представляет собой организацию с настроенными webhook-адресами.
// Пустой адрес означает, что уведомления для провайдера не отправляются.
type Organization struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	SlackWebhookURL   string `json:"-"`
	DiscordWebhookURL string `json:"-"`
}
