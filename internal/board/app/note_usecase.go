// Package app implements application business logic for the board service.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"gumboard/internal/board/app/dto"
	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/cache"
	"gumboard/internal/board/ports/repositories"
	"gumboard/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrNoOrganization = errors.New("no organization found")
	ErrForbidden      = errors.New("access denied")
)

// Параметры пагинации: значение по умолчанию и жесткий потолок.
// Запрошенный limit сверх потолка молча обрезается.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50
)

// noteColors - фиксированная палитра цветов заметок. При создании без
// указанного цвета выбирается равномерно случайный.
var noteColors = []string{
	"#fef3c7",
	"#fce7f3",
	"#dbeafe",
	"#dcfce7",
	"#f3e8ff",
	"#fee2e2",
}

// Константы для сообщений логирования.
const (
	logBoardCacheMiss  = "board cache lookup failed"
	logBoardCacheWrite = "board cache write failed"
	msgCreatedNoteGone = "created note missing on re-read"
	errCtxResolveBoard = "failed to resolve board"
	errCtxResolveUser  = "failed to resolve user"
	errCtxResolveOrg   = "failed to resolve organization"
	errCtxListNotes    = "failed to list notes"
	errCtxCreateNote   = "failed to create note"
	errCtxReadBackNote = "failed to read back created note"
)

// Notifier запускает рассылку уведомлений после фиксации заметки.
type Notifier interface {
	NoteCreated(ctx context.Context, org *entities.Organization, board *entities.Board, note *entities.Note, author *entities.User)
}

// NoteUseCase представляет собой бизнес-логику работы с заметками досок.
type NoteUseCase struct {
	notes      repositories.NoteRepository
	boards     repositories.BoardRepository
	users      repositories.UserRepository
	orgs       repositories.OrganizationRepository
	boardCache cache.BoardCache
	notifier   Notifier
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// boardCache и notifier могут быть nil: кэш и уведомления тогда отключены.
func NewNoteUseCase(
	notes repositories.NoteRepository,
	boards repositories.BoardRepository,
	users repositories.UserRepository,
	orgs repositories.OrganizationRepository,
	boardCache cache.BoardCache,
	notifier Notifier,
) *NoteUseCase {
	return &NoteUseCase{
		notes:      notes,
		boards:     boards,
		users:      users,
		orgs:       orgs,
		boardCache: boardCache,
		notifier:   notifier,
	}
}

// ListNotes возвращает страницу активных заметок доски с курсором пагинации.
// Приватные доски доступны только участникам организации доски.
func (uc *NoteUseCase) ListNotes(ctx context.Context, boardID, callerID string, limit, offset int) (*entities.NotePage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	board, err := uc.resolveBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	if !board.IsPublic {
		if callerID == "" {
			return nil, ErrUnauthorized
		}

		user, err := uc.users.GetByID(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxResolveUser, err)
		}
		if user == nil || user.OrganizationID == "" {
			return nil, ErrNoOrganization
		}
		if user.OrganizationID != board.OrganizationID {
			return nil, ErrForbidden
		}
	}

	notes, total, err := uc.notes.ListByBoard(ctx, boardID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListNotes, err)
	}

	return entities.NewNotePage(notes, total, limit, offset), nil
}

// CreateNote создает заметку на доске и запускает рассылку уведомлений.
// Сбой доставки уведомления никогда не приводит к ошибке создания.
func (uc *NoteUseCase) CreateNote(ctx context.Context, boardID, callerID string, req *dto.CreateNoteRequest) (*entities.Note, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	user, err := uc.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolveUser, err)
	}
	if user == nil || user.OrganizationID == "" {
		return nil, ErrNoOrganization
	}

	org, err := uc.orgs.GetByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolveOrg, err)
	}
	if org == nil {
		return nil, ErrNoOrganization
	}

	board, err := uc.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolveBoard, err)
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	if board.OrganizationID != user.OrganizationID {
		return nil, ErrForbidden
	}

	color := req.Color
	if color == "" {
		color = noteColors[rand.IntN(len(noteColors))]
	}

	items := make([]*entities.ChecklistItem, 0, len(req.ChecklistItems))
	for i, item := range req.ChecklistItems {
		order := i
		if item.Order != nil {
			order = *item.Order
		}
		items = append(items, &entities.ChecklistItem{
			Content: item.Content,
			Checked: item.Checked,
			Order:   order,
		})
	}

	note := entities.NewNote(boardID, callerID, color, items)

	noteID, err := uc.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreateNote, err)
	}

	created, err := uc.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxReadBackNote, err)
	}
	if created == nil {
		return nil, fmt.Errorf("%s: %s", errCtxReadBackNote, msgCreatedNoteGone)
	}

	if uc.notifier != nil {
		uc.notifier.NoteCreated(ctx, org, board, created, user)
	}

	return created, nil
}

// resolveBoard читает доску через кэш с запасным чтением из хранилища.
// Ошибки кэша не фатальны для запроса.
func (uc *NoteUseCase) resolveBoard(ctx context.Context, boardID string) (*entities.Board, error) {
	log := logger.Log(ctx)

	if uc.boardCache != nil {
		board, err := uc.boardCache.GetBoard(ctx, boardID)
		if err != nil {
			log.Warn(ctx, logBoardCacheMiss, zap.Error(err))
		} else if board != nil {
			return board, nil
		}
	}

	board, err := uc.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolveBoard, err)
	}

	if board != nil && uc.boardCache != nil {
		if err := uc.boardCache.SetBoard(ctx, board); err != nil {
			log.Warn(ctx, logBoardCacheWrite, zap.Error(err))
		}
	}

	return board, nil
}
