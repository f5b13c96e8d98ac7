package repositories

import (
	"context"

	"gumboard/internal/board/domain/entities"
)

// BoardRepository определяет интерфейс для чтения досок.
type BoardRepository interface {
	// GetByID возвращает доску или (nil, nil), если доска не найдена.
	GetByID(ctx context.Context, boardID string) (*entities.Board, error)
}

// UserRepository определяет интерфейс для чтения пользователей.
type UserRepository interface {
	// GetByID возвращает пользователя или (nil, nil), если пользователь не найден.
	GetByID(ctx context.Context, userID string) (*entities.User, error)
}

// OrganizationRepository определяет интерфейс для чтения организаций.
type OrganizationRepository interface {
	// GetByID возвращает организацию или (nil, nil), если организация не найдена.
	GetByID(ctx context.Context, orgID string) (*entities.Organization, error)
}
