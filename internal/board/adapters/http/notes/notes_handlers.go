// Package notes содержит HTTP-обработчики для заметок досок.
package notes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gumboard/internal/board/adapters/http/middleware"
	"gumboard/internal/board/app"
	"gumboard/internal/board/app/dto"
	"gumboard/internal/board/ports/api"
	"gumboard/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerCreateNote = "handling create note request"

	ErrMsgInvalidRequestBody = "invalid request body"
)

// Тексты ошибок, возвращаемые клиенту.
const (
	errBodyBoardNotFound = "Board not found"
	errBodyUnauthorized  = "Unauthorized"
	errBodyNoOrg         = "No organization found"
	errBodyForbidden     = "Access denied"
	errBodyInternal      = "Internal server error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// ListNotes обрабатывает запрос страницы заметок доски.
// Некорректные параметры пагинации не отклоняются, а заменяются значениями
// по умолчанию; потолок limit применяется в бизнес-логике.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	limit, err := strconv.Atoi(ctx.Query("limit", strconv.Itoa(app.DefaultPageLimit)))
	if err != nil {
		limit = app.DefaultPageLimit
	}
	offset, err := strconv.Atoi(ctx.Query("offset", "0"))
	if err != nil {
		offset = 0
	}

	page, err := h.noteService.ListNotes(userCtx, ctx.Params("board_id"), middleware.CallerID(ctx), limit, offset)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(page); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание заметки на доске.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	note, err := h.noteService.CreateNote(userCtx, ctx.Params("board_id"), middleware.CallerID(ctx), &req)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteResponse{Note: note}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError сопоставляет доменные ошибки с HTTP-статусами.
// Все неизвестные ошибки схлопываются в 500 без утечки внутренних деталей.
func handleError(ctx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := errBodyInternal

	switch {
	case errors.Is(err, app.ErrBoardNotFound):
		status, body = fiber.StatusNotFound, errBodyBoardNotFound
	case errors.Is(err, app.ErrUnauthorized):
		status, body = fiber.StatusUnauthorized, errBodyUnauthorized
	case errors.Is(err, app.ErrNoOrganization):
		status, body = fiber.StatusForbidden, errBodyNoOrg
	case errors.Is(err, app.ErrForbidden):
		status, body = fiber.StatusForbidden, errBodyForbidden
	}

	if err := ctx.Status(status).JSON(fiber.Map{"error": body}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
