package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gumboard/pkg/client"
)

func pageResponse(noteIDs []string, total, limit, offset int) client.NotesPage {
	notes := make([]client.Note, 0, len(noteIDs))
	for _, id := range noteIDs {
		notes = append(notes, client.Note{ID: id, ChecklistItems: []client.ChecklistItem{}})
	}

	page := client.NotesPage{
		Notes: notes,
		Pagination: client.Pagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}
	if offset+limit < total {
		next := offset + limit
		page.Pagination.HasMore = true
		page.Pagination.NextOffset = &next
	}
	return page
}

func TestClientListNotes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotQuery, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(pageResponse([]string{"note-1", "note-2"}, 45, 20, 0))
		}))
		defer server.Close()

		c := client.NewClient(server.URL, client.WithToken("secret-token"))

		page, err := c.ListNotes(context.Background(), "board-1", 20, 0)

		require.NoError(t, err)
		assert.Equal(t, "/api/v1/boards/board-1/notes", gotPath)
		assert.Equal(t, "limit=20&offset=0", gotQuery)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		require.Len(t, page.Notes, 2)
		assert.True(t, page.Pagination.HasMore)
		require.NotNil(t, page.Pagination.NextOffset)
		assert.Equal(t, 20, *page.Pagination.NextOffset)
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			name    string
			status  int
			wantErr error
		}{
			{name: "not found", status: http.StatusNotFound, wantErr: client.ErrBoardNotFound},
			{name: "unauthorized", status: http.StatusUnauthorized, wantErr: client.ErrUnauthorized},
			{name: "forbidden", status: http.StatusForbidden, wantErr: client.ErrForbidden},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
				}))
				defer server.Close()

				c := client.NewClient(server.URL)

				page, err := c.ListNotes(context.Background(), "board-1", 20, 0)

				assert.Nil(t, page)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := client.NewClient(server.URL)

		_, err := c.ListNotes(context.Background(), "board-1", 20, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClientCreateNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody = make([]byte, r.ContentLength)
			_, _ = r.Body.Read(gotBody)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]client.Note{
				"note": {ID: "note-1", Color: "#dbeafe"},
			})
		}))
		defer server.Close()

		c := client.NewClient(server.URL)

		note, err := c.CreateNote(context.Background(), "board-1", &client.CreateNoteRequest{
			ChecklistItems: []client.ChecklistItemInput{{Content: "task"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "note-1", note.ID)
		assert.Contains(t, string(gotBody), `"content":"task"`)
	})

	t.Run("anonymous client has no auth header", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]client.Note{"note": {ID: "note-1"}})
		}))
		defer server.Close()

		c := client.NewClient(server.URL)

		_, err := c.CreateNote(context.Background(), "board-1", &client.CreateNoteRequest{})

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		c := client.NewClient(server.URL)

		_, err := c.CreateNote(context.Background(), "board-1", &client.CreateNoteRequest{})

		require.Error(t, err)
	})
}
