// Package client предоставляет HTTP-клиент сервиса досок и контроллер
// постраничной подгрузки заметок для встраивания в приложения.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Ошибки клиента, отражающие статусы ответа сервиса.
var (
	ErrBoardNotFound = errors.New("board not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Константы для сообщений об ошибках.
const (
	ErrBuildRequest    = "failed to build request"
	ErrExecuteRequest  = "failed to execute request"
	ErrDecodeResponse  = "failed to decode response"
	ErrEncodeRequest   = "failed to encode request body"
	ErrUnexpectedState = "unexpected response status"
)

// DefaultTimeout - тайм-аут HTTP-запросов клиента по умолчанию.
const DefaultTimeout = 15 * time.Second

// ChecklistItem представляет пункт списка дел заметки.
type ChecklistItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Checked bool   `json:"checked"`
	Order   int    `json:"order"`
}

// Author представляет автора заметки.
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Note представляет заметку доски в ответах сервиса.
type Note struct {
	ID             string          `json:"id"`
	Color          string          `json:"color"`
	BoardID        string          `json:"boardId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	User           *Author         `json:"user,omitempty"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
}

// Pagination представляет курсор постраничной выборки.
type Pagination struct {
	Total      int  `json:"total"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"hasMore"`
	NextOffset *int `json:"nextOffset"`
}

// NotesPage представляет одну страницу заметок с курсором.
type NotesPage struct {
	Notes      []Note     `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// ChecklistItemInput описывает пункт списка дел при создании заметки.
type ChecklistItemInput struct {
	Content string `json:"content,omitempty"`
	Checked bool   `json:"checked,omitempty"`
	Order   *int   `json:"order,omitempty"`
}

// CreateNoteRequest описывает тело запроса создания заметки.
type CreateNoteRequest struct {
	Color          string               `json:"color,omitempty"`
	ChecklistItems []ChecklistItemInput `json:"checklistItems,omitempty"`
}

type noteEnvelope struct {
	Note Note `json:"note"`
}

// Option настраивает клиента при создании.
type Option func(*Client)

// WithToken задает bearer-токен, добавляемый к каждому запросу.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient заменяет транспортный HTTP-клиент.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client выполняет запросы к API сервиса досок.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создает клиента для сервиса по указанному базовому адресу.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListNotes запрашивает страницу заметок доски.
func (c *Client) ListNotes(ctx context.Context, boardID string, limit, offset int) (*NotesPage, error) {
	endpoint := fmt.Sprintf("%s/api/v1/boards/%s/notes?limit=%s&offset=%s",
		c.baseURL, boardID, strconv.Itoa(limit), strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}

	var page NotesPage
	if err := c.do(req, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateNote создает заметку на доске.
func (c *Client) CreateNote(ctx context.Context, boardID string, createReq *CreateNoteRequest) (*Note, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrEncodeRequest, err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/boards/%s/notes", c.baseURL, boardID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var envelope noteEnvelope
	if err := c.do(req, http.StatusCreated, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Note, nil
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrExecuteRequest, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case wantStatus:
	case http.StatusNotFound:
		return ErrBoardNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return fmt.Errorf("%s: %d", ErrUnexpectedState, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDecodeResponse, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w", ErrDecodeResponse, err)
	}
	return nil
}
