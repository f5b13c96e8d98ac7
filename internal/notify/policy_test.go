package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/notify"
)

func TestHasValidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "empty string", content: "", want: false},
		{name: "spaces only", content: "   ", want: false},
		{name: "tabs and newlines", content: "\t\n ", want: false},
		{name: "punctuation only", content: "!!!???...", want: false},
		{name: "punctuation and spaces", content: " !@# $%^ ", want: false},
		{name: "plain word", content: "buy milk", want: true},
		{name: "single letter", content: "a", want: true},
		{name: "single digit", content: "7", want: true},
		{name: "leading whitespace", content: "   hello", want: true},
		{name: "trailing whitespace", content: "hello   ", want: true},
		{name: "letter among punctuation", content: "!!!x!!!", want: true},
		{name: "unicode letters", content: "привет", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.HasValidContent(tt.content))
		})
	}
}

func TestShouldSendNotification(t *testing.T) {
	assert.True(t, notify.ShouldSendNotification("user-1", "board-1", "Roadmap", true))
	assert.False(t, notify.ShouldSendNotification("user-1", "board-1", "Roadmap", false))

	// Решение не зависит от имени доски.
	assert.True(t, notify.ShouldSendNotification("user-1", "board-1", "Test Board", true))
	assert.False(t, notify.ShouldSendNotification("user-1", "board-1", "Test Board", false))
}

func TestNoteHasContent(t *testing.T) {
	tests := []struct {
		name  string
		items []*entities.ChecklistItem
		want  bool
	}{
		{name: "no items", items: nil, want: false},
		{name: "single empty item", items: []*entities.ChecklistItem{{Content: ""}}, want: false},
		{name: "whitespace items", items: []*entities.ChecklistItem{{Content: " "}, {Content: "\t"}}, want: false},
		{name: "one valid item", items: []*entities.ChecklistItem{{Content: "task"}}, want: true},
		{name: "valid among empty", items: []*entities.ChecklistItem{{Content: ""}, {Content: "task"}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &entities.Note{ChecklistItems: tt.items}
			assert.Equal(t, tt.want, notify.NoteHasContent(note))
		})
	}
}

func TestNoteText(t *testing.T) {
	t.Run("first item content", func(t *testing.T) {
		note := &entities.Note{ChecklistItems: []*entities.ChecklistItem{
			{Content: "first task"},
			{Content: "second task"},
		}}
		assert.Equal(t, "first task", notify.NoteText(note))
	})

	t.Run("placeholder when no items", func(t *testing.T) {
		note := &entities.Note{}
		assert.Equal(t, "New note", notify.NoteText(note))
	})

	t.Run("placeholder when no valid content", func(t *testing.T) {
		note := &entities.Note{ChecklistItems: []*entities.ChecklistItem{{Content: "   "}}}
		assert.Equal(t, "New note", notify.NoteText(note))
	})
}
