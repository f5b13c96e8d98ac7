// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gumboard/internal/board/ports/repositories"
)

// DB - подмножество pgxpool.Pool, используемое репозиториями.
// Выделено в интерфейс, чтобы тесты могли подставлять pgxmock.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	db DB
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(db DB) *RepositoryFactory {
	return &RepositoryFactory{db: db}
}

// NoteRepository возвращает репозиторий для работы с заметками.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.db)
}

// BoardRepository возвращает репозиторий для работы с досками.
func (f *RepositoryFactory) BoardRepository() repositories.BoardRepository {
	return NewBoardRepository(f.db)
}

// UserRepository возвращает репозиторий для работы с пользователями.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.db)
}

// OrganizationRepository возвращает репозиторий для работы с организациями.
func (f *RepositoryFactory) OrganizationRepository() repositories.OrganizationRepository {
	return NewOrganizationRepository(f.db)
}
