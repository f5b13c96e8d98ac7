package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/repositories"
	"gumboard/pkg/logger"
)

// BoardRepository реализует интерфейс repositories.BoardRepository.
type BoardRepository struct {
	db DB
}

// NewBoardRepository создает новый репозиторий досок.
func NewBoardRepository(db DB) repositories.BoardRepository {
	return &BoardRepository{db: db}
}

// GetByID получает доску по идентификатору.
func (r *BoardRepository) GetByID(ctx context.Context, boardID string) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("method", "BoardRepository.GetByID"))
	log.Debug(ctx, "getting board", zap.String("boardID", boardID))

	var board entities.Board
	err := r.db.QueryRow(ctx,
		`SELECT id, name, is_public, organization_id, send_slack_updates, send_discord_updates
         FROM boards
         WHERE id = $1`,
		boardID,
	).Scan(&board.ID, &board.Name, &board.IsPublic, &board.OrganizationID,
		&board.SendSlackUpdates, &board.SendDiscordUpdates)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "board not found", zap.String("boardID", boardID))
			return nil, nil
		}
		log.Error(ctx, "failed to get board", zap.Error(err))
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &board, nil
}
