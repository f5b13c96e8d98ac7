// Package api defines use case interfaces exposed to transport adapters.
package api

import (
	"context"

	"gumboard/internal/board/app/dto"
	"gumboard/internal/board/domain/entities"
)

// NoteService описывает операции сервиса заметок, доступные HTTP-слою.
// callerID пустой для анонимных запросов.
type NoteService interface {
	ListNotes(ctx context.Context, boardID, callerID string, limit, offset int) (*entities.NotePage, error)
	CreateNote(ctx context.Context, boardID, callerID string, req *dto.CreateNoteRequest) (*entities.Note, error)
}
