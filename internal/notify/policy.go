package notify

import (
	"strings"
	"unicode"

	"gumboard/internal/board/domain/entities"
)

// specialChars - фиксированный набор символов, не несущих содержательного текста.
const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// placeholderText используется, когда в заметке нет пунктов с содержательным текстом.
const placeholderText = "New note"

// HasValidContent сообщает, несет ли текст содержание, достойное уведомления.
// Пустые строки, пробелы и строки из одних спецсимволов считаются пустыми.
func HasValidContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		if !strings.ContainsRune(specialChars, r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// ShouldSendNotification решает, отправлять ли уведомление для доски.
// Сейчас решение полностью определяется флагом провайдера на доске;
// сигнатура оставлена на будущее для правил подавления по пользователю и доске.
func ShouldSendNotification(userID, boardID, boardName string, enabled bool) bool {
	return enabled
}

// NoteHasContent сообщает, есть ли в заметке хотя бы один содержательный пункт.
func NoteHasContent(note *entities.Note) bool {
	for _, item := range note.ChecklistItems {
		if HasValidContent(item.Content) {
			return true
		}
	}
	return false
}

// NoteText возвращает текст заметки для уведомления: содержимое первого пункта
// списка либо заглушку, когда пунктов нет или ни один не содержателен.
func NoteText(note *entities.Note) string {
	if len(note.ChecklistItems) == 0 || !NoteHasContent(note) {
		return placeholderText
	}
	return note.ChecklistItems[0].Content
}
