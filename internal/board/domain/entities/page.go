package entities

// Pagination описывает окно выдачи заметок. Курсор не сохраняется,
// а вычисляется заново для каждого запроса.
type Pagination struct {
	Total      int  `json:"total"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"hasMore"`
	NextOffset *int `json:"nextOffset"`
}

// NewPagination вычисляет курсор для окна (limit, offset) при общем количестве total.
// NextOffset равен nil тогда и только тогда, когда страниц больше нет.
func NewPagination(total, limit, offset int) Pagination {
	p := Pagination{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	if offset+limit < total {
		p.HasMore = true
		next := offset + limit
		p.NextOffset = &next
	}
	return p
}

// NotePage представляет одну страницу выдачи заметок доски.
type NotePage struct {
	Notes      []*Note    `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// NewNotePage собирает страницу выдачи из заметок и параметров окна.
func NewNotePage(notes []*Note, total, limit, offset int) *NotePage {
	if notes == nil {
		notes = make([]*Note, 0)
	}
	return &NotePage{
		Notes:      notes,
		Pagination: NewPagination(total, limit, offset),
	}
}
