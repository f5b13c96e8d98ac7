// Package dto содержит структуры запросов и ответов HTTP API заметок.
package dto

import "gumboard/internal/board/domain/entities"

// ChecklistItemInput содержит данные одного пункта списка при создании заметки.
// Отсутствующий order означает позицию пункта во входной последовательности.
type ChecklistItemInput struct {
	Content string `json:"content"`
	Checked bool   `json:"checked"`
	Order   *int   `json:"order"`
}

// CreateNoteRequest содержит данные для создания заметки.
// Все поля необязательны: цвет выбирается случайно, список может быть пустым.
type CreateNoteRequest struct {
	Color          string               `json:"color"`
	ChecklistItems []ChecklistItemInput `json:"checklistItems"`
}

// NoteResponse содержит созданную заметку для ответа.
type NoteResponse struct {
	Note *entities.Note `json:"note"`
}
