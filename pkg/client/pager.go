package client

import (
	"context"
	"sync"
)

// PageLister запрашивает одну страницу заметок доски.
type PageLister interface {
	ListNotes(ctx context.Context, boardID string, limit, offset int) (*NotesPage, error)
}

// Pager хранит накопленный список заметок доски и подгружает следующие
// страницы по требованию. Одновременно допускается не более одного
// запроса списка: вызовы LoadMore во время загрузки отбрасываются.
type Pager struct {
	lister   PageLister
	boardID  string
	pageSize int

	mu         sync.Mutex
	notes      []Note
	loading    bool
	hasMore    bool
	offset     int
	generation uint64
}

// NewPager создает контроллер подгрузки заметок для указанной доски.
func NewPager(lister PageLister, boardID string, pageSize int) *Pager {
	return &Pager{
		lister:   lister,
		boardID:  boardID,
		pageSize: pageSize,
		hasMore:  true,
	}
}

// Notes возвращает копию накопленного списка заметок.
func (p *Pager) Notes() []Note {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Note, len(p.notes))
	copy(out, p.notes)
	return out
}

// Loading сообщает, выполняется ли сейчас запрос страницы.
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// HasMore сообщает, остались ли незагруженные страницы.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// LoadMore подгружает следующую страницу и дописывает ее в конец списка.
// Вызов ничего не делает, если загрузка уже идет или страниц больше нет.
// Ошибка запроса оставляет накопленное состояние нетронутым: повторный
// вызов LoadMore запросит ту же страницу снова.
func (p *Pager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	offset := p.offset
	generation := p.generation
	p.mu.Unlock()

	page, err := p.lister.ListNotes(ctx, p.boardID, p.pageSize, offset)

	p.mu.Lock()
	defer p.mu.Unlock()

	// Ответ устаревшего поколения: состояние уже сброшено через Refresh.
	if generation != p.generation {
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}

	p.notes = append(p.notes, page.Notes...)
	p.hasMore = page.Pagination.HasMore
	if page.Pagination.NextOffset != nil {
		p.offset = *page.Pagination.NextOffset
	}
	return nil
}

// Refresh сбрасывает накопленное состояние и загружает первую страницу
// заново. Ответы запросов, начатых до сброса, отбрасываются.
func (p *Pager) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.generation++
	p.notes = nil
	p.offset = 0
	p.hasMore = true
	p.loading = true
	generation := p.generation
	p.mu.Unlock()

	page, err := p.lister.ListNotes(ctx, p.boardID, p.pageSize, 0)

	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}

	p.notes = append([]Note(nil), page.Notes...)
	p.hasMore = page.Pagination.HasMore
	if page.Pagination.NextOffset != nil {
		p.offset = *page.Pagination.NextOffset
	}
	return nil
}

// AddNote локально добавляет заметку в начало списка без запроса к серверу.
func (p *Pager) AddNote(note Note) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notes = append([]Note{note}, p.notes...)
}

// UpdateNote локально изменяет заметку с указанным идентификатором.
func (p *Pager) UpdateNote(id string, apply func(*Note)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.notes {
		if p.notes[i].ID == id {
			apply(&p.notes[i])
			return
		}
	}
}

// RemoveNote локально удаляет заметку с указанным идентификатором.
func (p *Pager) RemoveNote(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	filtered := p.notes[:0]
	for _, note := range p.notes {
		if note.ID != id {
			filtered = append(filtered, note)
		}
	}
	p.notes = filtered
}
