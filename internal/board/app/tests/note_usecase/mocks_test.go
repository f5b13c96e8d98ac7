package noteusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gumboard/internal/board/domain/entities"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entities.Note, int, error) {
	args := m.Called(ctx, boardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Note), args.Int(1), args.Error(2)
}

func (m *mockNoteRepository) RecordDelivery(ctx context.Context, noteID, provider, messageID string) error {
	args := m.Called(ctx, noteID, provider, messageID)
	return args.Error(0)
}

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) GetByID(ctx context.Context, boardID string) (*entities.Board, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockOrganizationRepository struct {
	mock.Mock
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, orgID string) (*entities.Organization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Organization), args.Error(1)
}

type mockBoardCache struct {
	mock.Mock
}

func (m *mockBoardCache) GetBoard(ctx context.Context, boardID string) (*entities.Board, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardCache) SetBoard(ctx context.Context, board *entities.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *mockBoardCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NoteCreated(ctx context.Context, org *entities.Organization, board *entities.Board, note *entities.Note, author *entities.User) {
	m.Called(ctx, org, board, note, author)
}
