package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Константы для сообщений об ошибках отправки.
const (
	ErrMarshalMessage = "failed to marshal webhook message"
	ErrBuildRequest   = "failed to build webhook request"
	ErrPostMessage    = "failed to post webhook message"
)

// DefaultSendTimeout - тайм-аут отправки webhook по умолчанию.
const DefaultSendTimeout = 10 * time.Second

// Sender выполняет единичную доставку сообщения на webhook-адрес.
// Повторы и очереди отсутствуют: доставка строго best-effort.
type Sender struct {
	httpClient *http.Client
}

// NewSender создает отправителя с указанным тайм-аутом транспорта.
func NewSender(timeout time.Duration) *Sender {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Sender{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Post сериализует сообщение и отправляет его одним POST-запросом.
// Любой не-2xx статус считается ошибкой доставки.
func (s *Sender) Post(ctx context.Context, webhookURL string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMarshalMessage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPostMessage, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: webhook responded with status %d", ErrPostMessage, resp.StatusCode)
	}

	return nil
}

// DeliveryToken возвращает локальный корреляционный идентификатор доставки.
// Webhook-и Slack и Discord не возвращают пригодного идентификатора сообщения,
// поэтому используется метка времени в миллисекундах.
func DeliveryToken() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
