// Package entities defines the domain entities for the board service.
package entities

import "time"

// Note представляет собой карточку на доске со списком дел.
type Note struct {
	ID               string           `json:"id"`
	Color            string           `json:"color"`
	BoardID          string           `json:"boardId"`
	CreatedBy        string           `json:"createdBy"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeletedAt        *time.Time       `json:"-"`
	ArchivedAt       *time.Time       `json:"archivedAt"`
	SlackMessageID   string           `json:"-"`
	DiscordMessageID string           `json:"-"`
	Author           *User            `json:"user,omitempty"`
	ChecklistItems   []*ChecklistItem `json:"checklistItems"`
}

// ChecklistItem представляет один пункт списка дел внутри заметки.
type ChecklistItem struct {
	ID      string `json:"id"`
	NoteID  string `json:"noteId"`
	Content string `json:"content"`
	Checked bool   `json:"checked"`
	Order   int    `json:"order"`
}

// NewNote создает новую заметку для доски с нормализованными пунктами списка.
func NewNote(boardID, createdBy, color string, items []*ChecklistItem) *Note {
	now := time.Now()
	return &Note{
		Color:          color,
		BoardID:        boardID,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
		ChecklistItems: items,
	}
}

// Listed сообщает, должна ли заметка присутствовать в выдаче доски.
// Удаленные и архивированные заметки исключаются независимо друг от друга.
func (n *Note) Listed() bool {
	return n.DeletedAt == nil && n.ArchivedAt == nil
}
