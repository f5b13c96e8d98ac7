package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/repositories"
	"gumboard/pkg/logger"
)

// ErrUnknownProvider is returned when a delivery id is recorded for a provider
// the schema has no column for.
var ErrUnknownProvider = errors.New("unknown notification provider")

// noteColumns - колонки заметки вместе с публичными полями автора.
const noteColumns = `n.id, n.color, n.board_id, n.created_by, n.created_at, n.updated_at, n.archived_at,
         u.id, COALESCE(u.name, ''), COALESCE(u.email, '')`

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	db DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(db DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

// Create сохраняет заметку и ее пункты списка в одной транзакции.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("boardID", note.BoardID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Error(ctx, "failed to begin transaction", zap.Error(err))
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var noteID string
	err = tx.QueryRow(ctx,
		`INSERT INTO notes (color, board_id, created_by) VALUES ($1, $2, $3) RETURNING id`,
		note.Color, note.BoardID, note.CreatedBy,
	).Scan(&noteID)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	for _, item := range note.ChecklistItems {
		_, err := tx.Exec(ctx,
			`INSERT INTO checklist_items (note_id, content, checked, "order") VALUES ($1, $2, $3, $4)`,
			noteID, item.Content, item.Checked, item.Order,
		)
		if err != nil {
			log.Error(ctx, "failed to create checklist item", zap.Error(err))
			return "", fmt.Errorf("failed to create checklist item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "failed to commit transaction", zap.Error(err))
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", noteID))
	return noteID, nil
}

// GetByID получает заметку с автором и упорядоченными пунктами списка.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	note := entities.Note{Author: &entities.User{}}
	err := r.db.QueryRow(ctx,
		`SELECT `+noteColumns+`
         FROM notes n
         JOIN users u ON u.id = n.created_by
         WHERE n.id = $1`,
		noteID,
	).Scan(&note.ID, &note.Color, &note.BoardID, &note.CreatedBy, &note.CreatedAt, &note.UpdatedAt,
		&note.ArchivedAt, &note.Author.ID, &note.Author.Name, &note.Author.Email)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	items, err := r.checklistItems(ctx, []string{note.ID})
	if err != nil {
		return nil, err
	}
	note.ChecklistItems = items[note.ID]
	if note.ChecklistItems == nil {
		note.ChecklistItems = make([]*entities.ChecklistItem, 0)
	}

	return &note, nil
}

// ListByBoard получает страницу активных заметок доски и их общее количество.
// Запрос страницы и подсчет выполняются параллельно: данные независимы.
func (r *NoteRepository) ListByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entities.Note, int, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByBoard"))
	log.Debug(ctx, "listing notes", zap.String("boardID", boardID), zap.Int("limit", limit), zap.Int("offset", offset))

	var (
		notes      []*entities.Note
		totalCount int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := r.db.QueryRow(groupCtx,
			`SELECT COUNT(*) FROM notes WHERE board_id = $1 AND deleted_at IS NULL AND archived_at IS NULL`,
			boardID,
		).Scan(&totalCount)
		if err != nil {
			return fmt.Errorf("failed to count notes: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		rows, err := r.db.Query(groupCtx,
			`SELECT `+noteColumns+`
             FROM notes n
             JOIN users u ON u.id = n.created_by
             WHERE n.board_id = $1 AND n.deleted_at IS NULL AND n.archived_at IS NULL
             ORDER BY n.created_at DESC
             LIMIT $2 OFFSET $3`,
			boardID, limit, offset,
		)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		defer rows.Close()

		notes = make([]*entities.Note, 0)
		for rows.Next() {
			note := entities.Note{Author: &entities.User{}}
			err := rows.Scan(&note.ID, &note.Color, &note.BoardID, &note.CreatedBy, &note.CreatedAt,
				&note.UpdatedAt, &note.ArchivedAt, &note.Author.ID, &note.Author.Name, &note.Author.Email)
			if err != nil {
				return fmt.Errorf("failed to scan note: %w", err)
			}
			notes = append(notes, &note)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating rows: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, 0, err
	}

	if len(notes) > 0 {
		noteIDs := make([]string, 0, len(notes))
		for _, note := range notes {
			noteIDs = append(noteIDs, note.ID)
		}

		items, err := r.checklistItems(ctx, noteIDs)
		if err != nil {
			log.Error(ctx, "failed to load checklist items", zap.Error(err))
			return nil, 0, err
		}

		for _, note := range notes {
			note.ChecklistItems = items[note.ID]
			if note.ChecklistItems == nil {
				note.ChecklistItems = make([]*entities.ChecklistItem, 0)
			}
		}
	}

	return notes, totalCount, nil
}

// RecordDelivery сохраняет идентификатор доставленного сообщения провайдера.
func (r *NoteRepository) RecordDelivery(ctx context.Context, noteID, provider, messageID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.RecordDelivery"))
	log.Debug(ctx, "recording delivery", zap.String("noteID", noteID), zap.String("provider", provider))

	var column string
	switch provider {
	case "slack":
		column = "slack_message_id"
	case "discord":
		column = "discord_message_id"
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	_, err := r.db.Exec(ctx,
		`UPDATE notes SET `+column+` = $1 WHERE id = $2`,
		messageID, noteID,
	)
	if err != nil {
		log.Error(ctx, "failed to record delivery", zap.Error(err))
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	return nil
}

// checklistItems читает пункты списков для набора заметок, упорядоченные по order.
func (r *NoteRepository) checklistItems(ctx context.Context, noteIDs []string) (map[string][]*entities.ChecklistItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, note_id, content, checked, "order"
         FROM checklist_items
         WHERE note_id = ANY($1)
         ORDER BY "order" ASC, id ASC`,
		noteIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]*entities.ChecklistItem)
	for rows.Next() {
		var item entities.ChecklistItem
		if err := rows.Scan(&item.ID, &item.NoteID, &item.Content, &item.Checked, &item.Order); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items[item.NoteID] = append(items[item.NoteID], &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
