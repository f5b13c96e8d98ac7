package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/repositories"
	"gumboard/pkg/logger"
)

// Константы для сообщений логирования.
const (
	LogDispatchingNote   = "dispatching note notification"
	LogDeliveryFailed    = "webhook delivery failed"
	LogRecordingFailed   = "failed to record delivery id"
	LogDeliverySucceeded = "webhook delivered"
)

// Dispatcher рассылает уведомления после фиксации заметки в хранилище.
// Каждый провайдер обрабатывается независимо в отдельной горутине: сбой
// доставки никогда не влияет ни на другой провайдер, ни на результат создания.
type Dispatcher struct {
	notes     repositories.NoteRepository
	providers []Provider
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewDispatcher создает диспетчер уведомлений для набора провайдеров.
func NewDispatcher(notes repositories.NoteRepository, timeout time.Duration, providers ...Provider) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Dispatcher{
		notes:     notes,
		providers: providers,
		timeout:   timeout,
	}
}

// NoteCreated запускает рассылку уведомлений о созданной заметке.
// Для каждого провайдера должны выполняться все три условия: настроен
// webhook-адрес организации, в заметке есть содержательный пункт и
// политика разрешает отправку для доски.
func (d *Dispatcher) NoteCreated(ctx context.Context, org *entities.Organization, board *entities.Board, note *entities.Note, author *entities.User) {
	if org == nil || board == nil || note == nil || author == nil {
		return
	}
	if !NoteHasContent(note) {
		return
	}

	userName := author.DisplayName()

	for _, provider := range d.providers {
		webhookURL := provider.WebhookURL(org)
		if webhookURL == "" {
			continue
		}
		if !ShouldSendNotification(note.CreatedBy, board.ID, board.Name, provider.Enabled(board)) {
			continue
		}

		d.wg.Add(1)
		// Доставка переживает завершение исходного запроса.
		go d.deliverNote(context.WithoutCancel(ctx), provider, webhookURL, note, board.Name, userName)
	}
}

// TodoUpdated повторно публикует сообщение об измененном пункте списка.
// Результат доставки не отслеживается и идентификатор не сохраняется.
func (d *Dispatcher) TodoUpdated(ctx context.Context, org *entities.Organization, board *entities.Board, author *entities.User, content string, completed bool) {
	if org == nil || board == nil || author == nil {
		return
	}
	if !HasValidContent(content) {
		return
	}

	userName := author.DisplayName()

	for _, provider := range d.providers {
		webhookURL := provider.WebhookURL(org)
		if webhookURL == "" {
			continue
		}
		if !ShouldSendNotification("", board.ID, board.Name, provider.Enabled(board)) {
			continue
		}

		d.wg.Add(1)
		go func(p Provider, url string) {
			defer d.wg.Done()

			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
			defer cancel()

			if err := p.Update(sendCtx, url, content, completed, board.Name, userName); err != nil {
				logger.Log(sendCtx).Warn(sendCtx, LogDeliveryFailed,
					zap.String("provider", p.Name()), zap.Error(err))
			}
		}(provider, webhookURL)
	}
}

// deliverNote форматирует, отправляет и записывает идентификатор доставки.
func (d *Dispatcher) deliverNote(ctx context.Context, provider Provider, webhookURL string, note *entities.Note, boardName, userName string) {
	defer d.wg.Done()

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	log := logger.Log(sendCtx).With(
		zap.String("provider", provider.Name()),
		zap.String("noteID", note.ID))
	log.Debug(sendCtx, LogDispatchingNote)

	message := provider.FormatNote(note, boardName, userName)

	messageID, err := provider.Send(sendCtx, webhookURL, message)
	if err != nil {
		log.Warn(sendCtx, LogDeliveryFailed, zap.Error(err))
		return
	}

	log.Debug(sendCtx, LogDeliverySucceeded, zap.String("messageID", messageID))

	if messageID == "" {
		return
	}

	// Запись идентификатора best-effort: заметка уже создана, и сбой здесь
	// оставляет ее без записанного идентификатора доставки.
	if err := d.notes.RecordDelivery(sendCtx, note.ID, provider.Name(), messageID); err != nil {
		log.Warn(sendCtx, LogRecordingFailed, zap.Error(err))
	}
}

// Wait дожидается завершения всех запущенных доставок. Используется при
// остановке сервиса.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
