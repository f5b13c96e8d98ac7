package config

import (
	"time"
)

// WebhookConfig содержит настройки отправки webhook-уведомлений.
type WebhookConfig struct {
	SendTimeout time.Duration `yaml:"send_timeout" env:"BOARD_WEBHOOK_SEND_TIMEOUT" env-default:"10s"`
}
